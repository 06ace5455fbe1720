package ndarray

import (
	"fmt"
	"math"
)

// MaxRank is the highest rank an Array supports.
const MaxRank = 2

// Shape represents the dimensions of an array.
// Shape{n} is a vector of length n, Shape{rows, cols} a matrix.
type Shape []int

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that the shape has rank 1 or 2, positive dimensions, and
// an element count that fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 || len(s) > MaxRank {
		return unsupported("rank %d (shape %v), only ranks 1 and 2 are supported", len(s), s)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: %v has too many elements", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal dimension by dimension.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset maps a fully-resolved index to its position in the flat buffer:
// i for rank 1, row*cols + col for rank 2.
// Negative indices count from the end of their dimension.
func (s Shape) Offset(indices ...int) (int, error) {
	if len(indices) != len(s) {
		return 0, unsupported("expected %d indices for shape %v, got %d", len(s), s, len(indices))
	}

	offset := 0
	strides := s.ComputeStrides()
	for dim, idx := range indices {
		resolved, err := resolveIndex(idx, dim, s[dim])
		if err != nil {
			return 0, err
		}
		offset += resolved * strides[dim]
	}
	return offset, nil
}

// resolveIndex wraps a negative index once and bounds-checks the result.
func resolveIndex(idx, dim, size int) (int, error) {
	resolved := idx
	if resolved < 0 {
		resolved += size
	}
	if resolved < 0 || resolved >= size {
		return 0, &IndexError{Index: idx, Dim: dim, Size: size}
	}
	return resolved, nil
}
