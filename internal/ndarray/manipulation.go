package ndarray

// Transpose returns a new matrix with rows and columns swapped.
//
// A single-row matrix is returned as an unchanged copy rather than turned
// into a column. Vectors have no transpose and fail with
// ErrUnsupportedOperation.
//
// Example:
//
//	m, _ := ndarray.New[int32](ndarray.Shape{2, 3}, 0, 1, 2, 3, 4, 5)
//	t, _ := m.Transpose() // shape [3 2]: [[0 3] [1 4] [2 5]]
func (a *Array[T]) Transpose() (*Array[T], error) {
	if a.NDim() != 2 {
		return nil, unsupported("transpose of a rank-%d array", a.NDim())
	}
	if a.shape[0] == 1 {
		return a.Clone(), nil
	}

	rows, cols := a.shape[0], a.shape[1]
	out := make([]T, 0, rows*cols)
	for c := 0; c < cols; c++ {
		col, err := a.Column(All(), c)
		if err != nil {
			return nil, err
		}
		out = append(out, col.data...)
	}
	return fromData(Shape{cols, rows}, out), nil
}

// Flatten returns a copy of the array as a vector of length Size().
func (a *Array[T]) Flatten() *Array[T] {
	return fromData(Shape{len(a.data)}, a.Data())
}

// Reshape returns a copy of the array with a new shape holding the same
// number of elements.
func (a *Array[T]) Reshape(shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(a.data) {
		return nil, &ShapeError{Op: "reshape", Left: a.shape.Clone(), Right: shape.Clone()}
	}
	return fromData(shape.Clone(), a.Data()), nil
}
