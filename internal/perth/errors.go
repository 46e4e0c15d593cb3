package perth

import "fmt"

// SizeMismatchError reports a batch call whose lon/lat/time slices don't
// share a common length.
type SizeMismatchError struct {
	LonLen, LatLen, TimeLen int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("perth: batch inputs have mismatched lengths: lon=%d lat=%d time=%d",
		e.LonLen, e.LatLen, e.TimeLen)
}
