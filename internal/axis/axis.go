// Package axis implements the regular 1-D coordinate axis used by the
// gridded tidal model: an arithmetic progression start + i*step, with
// optional periodic (longitude) wraparound.
package axis

import (
	"fmt"
	"math"
	"sort"
)

// defaultEpsilon is the default spacing tolerance used when checking that
// explicit points form a uniform progression.
const defaultEpsilon = 1e-6

// Error reports an axis construction failure (non-uniform spacing,
// insufficient size, or inconsistent periodicity).
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid axis: %s", e.Reason)
}

// Axis is a monotonic arithmetic progression {start + i*step : 0 <= i < size}.
type Axis struct {
	start       float64
	step        float64
	size        int
	isAscending bool
	isPeriodic  bool
}

// NewLinSpaced constructs an Axis from (start, end, step). end is inclusive
// to within the spacing epsilon; size is derived as round((end-start)/step)+1.
func NewLinSpaced(start, end, step float64, periodic bool) (*Axis, error) {
	if step == 0 {
		return nil, &Error{Reason: "step must be non-zero"}
	}
	size := int(math.Round((end-start)/step)) + 1
	if size < 2 {
		return nil, &Error{Reason: "size must be >= 2"}
	}
	a := &Axis{
		start:       start,
		step:        step,
		size:        size,
		isAscending: step > 0,
		isPeriodic:  periodic,
	}
	if err := a.validatePeriodicity(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewFromPoints constructs an Axis from explicit, strictly monotonic points,
// verifying the spacing is uniform to within epsilon. If periodic is true
// and the points cross the +-180 degree seam, a single 360-degree wrap is
// removed before the uniformity check (longitude canonicalization).
func NewFromPoints(points []float64, periodic bool, epsilon float64) (*Axis, error) {
	if len(points) < 2 {
		return nil, &Error{Reason: "size must be >= 2"}
	}
	if epsilon <= 0 {
		epsilon = defaultEpsilon
	}

	pts := make([]float64, len(points))
	copy(pts, points)

	if periodic {
		pts = unwrapSingleSeam(pts)
	}

	ascending := pts[1] > pts[0]
	step := pts[1] - pts[0]
	for i := 1; i < len(pts); i++ {
		d := pts[i] - pts[i-1]
		if ascending && d <= 0 || !ascending && d >= 0 {
			return nil, &Error{Reason: "points must be strictly monotonic"}
		}
		if math.Abs(d-step) > epsilon {
			return nil, &Error{Reason: fmt.Sprintf("non-uniform spacing at index %d: got %.12f, expected %.12f", i, d, step)}
		}
	}

	a := &Axis{
		start:       pts[0],
		step:        step,
		size:        len(pts),
		isAscending: ascending,
		isPeriodic:  periodic,
	}
	if err := a.validatePeriodicity(); err != nil {
		return nil, err
	}
	return a, nil
}

// unwrapSingleSeam detects a single crossing of the +-180 seam in an
// otherwise monotonic sequence of longitudes and removes it by adding/
// subtracting 360 to the points past the crossing, so the sequence becomes
// a plain arithmetic progression again.
func unwrapSingleSeam(pts []float64) []float64 {
	out := make([]float64, len(pts))
	copy(out, pts)
	if len(out) < 2 {
		return out
	}
	ascendingGuess := out[1] >= out[0]
	for i := 1; i < len(out); i++ {
		d := out[i] - out[i-1]
		if ascendingGuess && d < -180 {
			for j := i; j < len(out); j++ {
				out[j] += 360
			}
		} else if !ascendingGuess && d > 180 {
			for j := i; j < len(out); j++ {
				out[j] -= 360
			}
		}
	}
	return out
}

func (a *Axis) validatePeriodicity() error {
	if !a.isPeriodic {
		return nil
	}
	span := a.step * float64(a.size)
	if math.Abs(math.Abs(span)-360.0) > defaultEpsilon {
		return &Error{Reason: fmt.Sprintf("periodic axis span must be 360 degrees, got %.9f", span)}
	}
	return nil
}

// Size returns the number of nodes on the axis.
func (a *Axis) Size() int { return a.size }

// Step returns the constant spacing between nodes.
func (a *Axis) Step() float64 { return a.step }

// Start returns the first node's value.
func (a *Axis) Start() float64 { return a.start }

// IsPeriodic reports whether the axis wraps (e.g. longitude).
func (a *Axis) IsPeriodic() bool { return a.isPeriodic }

// IsAscending reports whether step > 0.
func (a *Axis) IsAscending() bool { return a.isAscending }

// MinValue returns the smallest node value (start, for an ascending axis).
func (a *Axis) MinValue() float64 {
	if a.isAscending {
		return a.start
	}
	return a.start + a.step*float64(a.size-1)
}

// Value returns start + i*step. Returns an error if i is out of [0, size).
func (a *Axis) Value(i int) (float64, error) {
	if i < 0 || i >= a.size {
		return 0, fmt.Errorf("axis index %d out of range [0, %d)", i, a.size)
	}
	return a.start + float64(i)*a.step, nil
}

// Normalize maps x into [MinValue(), MinValue()+360) if the axis is
// periodic; otherwise it returns x unchanged.
func (a *Axis) Normalize(x float64) float64 {
	if !a.isPeriodic {
		return x
	}
	min := a.MinValue()
	y := math.Mod(x-min, 360.0)
	if y < 0 {
		y += 360.0
	}
	return min + y
}

// FindIndex returns the nearest node index to x. If bounded is true, the
// result is clamped into [0, size). If bounded is false and x lies outside
// the axis range (non-periodic), -1 is returned.
func (a *Axis) FindIndex(x float64, bounded bool) int {
	nx := a.Normalize(x)
	idx := int(math.Round((nx - a.start) / a.step))
	if idx < 0 || idx >= a.size {
		if bounded {
			if idx < 0 {
				return 0
			}
			return a.size - 1
		}
		return -1
	}
	return idx
}

// FindIndices returns the pair (i0, i1) of node indices framing x such that
// value(i0) < x <= value(i1), after normalization. Edge rules:
//   - x exactly on a node pairs with the previous node (not the next), so
//     the result is the same whether x approaches the node from below or
//     lands on it exactly.
//   - x on the first node of a non-periodic axis has no previous node and
//     returns ok=false; on a periodic axis it resolves to (0, 1).
//   - x past the last node on a periodic axis wraps to (size-1, 0).
//   - x outside the range of a non-periodic axis returns ok=false.
func (a *Axis) FindIndices(x float64) (i0, i1 int, ok bool) {
	nx := a.Normalize(x)
	rel := (nx - a.start) / a.step

	// ceil(rel)-1 rather than floor(rel): an exact grid hit (rel an
	// integer) resolves to the interval below it, matching the reference
	// axis lookup convention.
	lo := int(math.Ceil(rel)) - 1

	if !a.isPeriodic {
		if lo < 0 || lo > a.size-2 {
			return 0, 0, false
		}
		return lo, lo + 1, true
	}

	// Periodic: wrap indices modulo size.
	if lo < 0 {
		lo = 0
	}
	if lo >= a.size-1 {
		return a.size - 1, 0, true
	}
	return lo, lo + 1, true
}

// LinSpacedPoints returns the explicit node values of the axis, useful when
// handing the axis off to code (e.g. NetCDF writers) that expects a slice.
func (a *Axis) LinSpacedPoints() []float64 {
	out := make([]float64, a.size)
	for i := range out {
		out[i] = a.start + float64(i)*a.step
	}
	if !a.isAscending {
		sort.Float64s(out)
	}
	return out
}
