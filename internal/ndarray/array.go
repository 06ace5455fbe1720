package ndarray

import "iter"

// Array is a dense rank-1 or rank-2 array of T stored in one contiguous
// row-major buffer.
//
// Every operation that produces an Array (indexing, slicing, transpose,
// arithmetic) returns a new Array with its own buffer; no two arrays share
// storage.
//
// Example:
//
//	a, _ := ndarray.New[int32](ndarray.Shape{3, 4}, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
//	row, _ := a.Row(1)   // [4 5 6 7]
//	v, _ := a.At(2, 3)   // 11
type Array[T DType] struct {
	shape Shape
	data  []T
	dtype DataType
}

// New creates an array of the given shape.
//
// With no fill values the array is zero-filled, a single value is broadcast
// to every element, and exactly shape.NumElements() values are copied in
// row-major order. Any other number of values fails with ErrShapeMismatch.
func New[T DType](shape Shape, fill ...T) (*Array[T], error) {
	a, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}

	switch len(fill) {
	case 0:
	case 1:
		for i := range a.data {
			a.data[i] = fill[0]
		}
	case len(a.data):
		copy(a.data, fill)
	default:
		return nil, &ShapeError{Op: "fill", Left: shape.Clone(), Right: Shape{len(fill)}}
	}
	return a, nil
}

// alloc validates shape and returns a zero-filled array.
func alloc[T DType](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	var dummy T
	return &Array[T]{
		shape: shape.Clone(),
		data:  make([]T, shape.NumElements()),
		dtype: inferDataType(dummy),
	}, nil
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// NDim returns the rank of the array (1 or 2).
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array[T]) Size() int {
	return len(a.data)
}

// DType returns the array's element type.
func (a *Array[T]) DType() DataType {
	return a.dtype
}

// Data returns a copy of the flat row-major buffer.
func (a *Array[T]) Data() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// At returns the element at a fully-resolved index: one index for a
// vector, (row, col) for a matrix.
func (a *Array[T]) At(indices ...int) (T, error) {
	offset, err := a.shape.Offset(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[offset], nil
}

// Set writes value at a fully-resolved index.
func (a *Array[T]) Set(value T, indices ...int) error {
	offset, err := a.shape.Offset(indices...)
	if err != nil {
		return err
	}
	a.data[offset] = value
	return nil
}

// Values iterates over the flat buffer in row-major order.
func (a *Array[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Rows iterates over a matrix's rows as independent vectors, in order.
// A vector yields itself once, as its single display row.
// Each call starts a fresh iteration at row 0.
func (a *Array[T]) Rows() iter.Seq2[int, *Array[T]] {
	return func(yield func(int, *Array[T]) bool) {
		if a.NDim() == 1 {
			yield(0, a.Clone())
			return
		}
		for r := 0; r < a.shape[0]; r++ {
			if !yield(r, a.row(r)) {
				return
			}
		}
	}
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape: a.shape.Clone(),
		data:  a.Data(),
		dtype: a.dtype,
	}
}

// Equal reports whether b has the same shape and elements as a.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// fromData wraps an already-owned buffer. The caller guarantees
// len(data) == shape.NumElements() and a valid shape.
func fromData[T DType](shape Shape, data []T) *Array[T] {
	var dummy T
	return &Array[T]{shape: shape, data: data, dtype: inferDataType(dummy)}
}
