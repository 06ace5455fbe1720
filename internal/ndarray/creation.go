package ndarray

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a, _ := ndarray.Zeros[float32](ndarray.Shape{3, 4})
func Zeros[T DType](shape Shape) (*Array[T], error) {
	return alloc[T](shape)
}

// Ones creates an array filled with ones.
//
// Example:
//
//	a, _ := ndarray.Ones[int32](ndarray.Shape{2, 3})
func Ones[T DType](shape Shape) (*Array[T], error) {
	return New(shape, T(1))
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a, _ := ndarray.Full[float64](ndarray.Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	return New(shape, value)
}

// FromSlice creates an array from a Go slice.
// The slice is copied; its length must equal shape.NumElements().
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	a, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, &ShapeError{Op: "from slice", Left: shape.Clone(), Right: Shape{len(data)}}
	}
	copy(a.data, data)
	return a, nil
}

// Arange creates a vector holding 0, 1, ..., n-1.
//
// Example:
//
//	v, _ := ndarray.Arange[int32](5) // [0 1 2 3 4]
func Arange[T DType](n int) (*Array[T], error) {
	a, err := alloc[T](Shape{n})
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = T(i)
	}
	return a, nil
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	id, _ := ndarray.Eye[float32](3)
func Eye[T DType](n int) (*Array[T], error) {
	a, err := alloc[T](Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		a.data[i*n+i] = 1
	}
	return a, nil
}
