package ndarray

import "fmt"

// Slice selects a run of positions along one dimension, with the same
// start/stop/step semantics as a Python slice. Unset bounds default to
// the start and end of the dimension (reversed for negative steps).
//
// Example:
//
//	a.Slice(ndarray.All())             // every row
//	a.Slice(ndarray.Range(1, 3))       // rows 1 and 2
//	a.Slice(ndarray.RangeStep(0, 6, 2)) // rows 0, 2, 4
type Slice struct {
	start, stop       int
	step              int
	hasStart, hasStop bool
}

// All selects the whole dimension.
func All() Slice {
	return Slice{step: 1}
}

// Range selects [start, stop) with step 1.
func Range(start, stop int) Slice {
	return RangeStep(start, stop, 1)
}

// RangeStep selects [start, stop) every step positions.
func RangeStep(start, stop, step int) Slice {
	return Slice{start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// From selects from start to the end of the dimension.
func From(start int) Slice {
	return Slice{start: start, step: 1, hasStart: true}
}

// To selects from the beginning of the dimension up to stop.
func To(stop int) Slice {
	return Slice{stop: stop, step: 1, hasStop: true}
}

// WithStep returns a copy of s with a different step.
func (s Slice) WithStep(step int) Slice {
	s.step = step
	return s
}

// String renders the slice in start:stop:step notation.
func (s Slice) String() string {
	var start, stop string
	if s.hasStart {
		start = fmt.Sprint(s.start)
	}
	if s.hasStop {
		stop = fmt.Sprint(s.stop)
	}
	return fmt.Sprintf("%s:%s:%d", start, stop, s.step)
}

// Indices resolves the slice against a dimension of the given length and
// returns the selected positions in selection order.
func (s Slice) Indices(length int) ([]int, error) {
	step := s.step
	if step == 0 {
		return nil, unsupported("slice step cannot be zero")
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	start := upper
	if step > 0 {
		start = lower
	}
	if s.hasStart {
		start = clampBound(s.start, length, lower, upper)
	}

	stop := lower
	if step > 0 {
		stop = upper
	}
	if s.hasStop {
		stop = clampBound(s.stop, length, lower, upper)
	}

	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}

func clampBound(v, length, lower, upper int) int {
	if v < 0 {
		v += length
		if v < lower {
			v = lower
		}
		return v
	}
	if v > upper {
		v = upper
	}
	return v
}
