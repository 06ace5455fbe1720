package ndarray

import "fmt"

// Slice selects along the first dimension.
//
// For a vector the result is a new vector holding the selected elements.
// For a matrix the result stacks copies of the selected rows, in selection
// order, into a (count, cols) matrix. Selecting nothing fails with
// ErrInvalidShape.
func (a *Array[T]) Slice(s Slice) (*Array[T], error) {
	idx, err := s.Indices(a.shape[0])
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, emptySelection(s, a.shape)
	}

	if a.NDim() == 1 {
		out := make([]T, len(idx))
		for i, j := range idx {
			out[i] = a.data[j]
		}
		return fromData(Shape{len(idx)}, out), nil
	}

	cols := a.shape[1]
	out := make([]T, 0, len(idx)*cols)
	for _, r := range idx {
		out = append(out, a.data[r*cols:(r+1)*cols]...)
	}
	return fromData(Shape{len(idx), cols}, out), nil
}

// Row returns a copy of row i of a matrix as a vector.
func (a *Array[T]) Row(i int) (*Array[T], error) {
	if a.NDim() != 2 {
		return nil, unsupported("row of a rank-%d array", a.NDim())
	}
	r, err := resolveIndex(i, 0, a.shape[0])
	if err != nil {
		return nil, err
	}
	return a.row(r), nil
}

// Column returns, for each row selected by rows, that row's value at col.
func (a *Array[T]) Column(rows Slice, col int) (*Array[T], error) {
	if a.NDim() != 2 {
		return nil, unsupported("column of a rank-%d array", a.NDim())
	}
	c, err := resolveIndex(col, 1, a.shape[1])
	if err != nil {
		return nil, err
	}
	idx, err := rows.Indices(a.shape[0])
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, emptySelection(rows, a.shape)
	}

	cols := a.shape[1]
	out := make([]T, len(idx))
	for i, r := range idx {
		out[i] = a.data[r*cols+c]
	}
	return fromData(Shape{len(idx)}, out), nil
}

// RowSlice returns the columns selected by cols from row row.
func (a *Array[T]) RowSlice(row int, cols Slice) (*Array[T], error) {
	if a.NDim() != 2 {
		return nil, unsupported("row slice of a rank-%d array", a.NDim())
	}
	r, err := resolveIndex(row, 0, a.shape[0])
	if err != nil {
		return nil, err
	}
	idx, err := cols.Indices(a.shape[1])
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, emptySelection(cols, a.shape)
	}

	base := r * a.shape[1]
	out := make([]T, len(idx))
	for i, c := range idx {
		out[i] = a.data[base+c]
	}
	return fromData(Shape{len(idx)}, out), nil
}

// row copies row r without bounds checks.
func (a *Array[T]) row(r int) *Array[T] {
	cols := a.shape[1]
	out := make([]T, cols)
	copy(out, a.data[r*cols:(r+1)*cols])
	return fromData(Shape{cols}, out)
}

func emptySelection(s Slice, shape Shape) error {
	return fmt.Errorf("%w: slice %v selects nothing from shape %v", ErrInvalidShape, s, shape)
}
