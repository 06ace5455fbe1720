// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: float32, float64, int32, int64, uint8.
type DType = ndarray.DType

// DataType represents the element type of an array at runtime.
type DataType = ndarray.DataType

// Data type constants.
const (
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
	Int32   DataType = ndarray.Int32
	Int64   DataType = ndarray.Int64
	Uint8   DataType = ndarray.Uint8
)

// Shape represents the dimensions of an array.
// Shape{n} is a vector, Shape{rows, cols} a matrix.
type Shape = ndarray.Shape

// Array is a dense rank-1 or rank-2 array of T.
//
// Example:
//
//	m, _ := ndarray.New[int32](ndarray.Shape{2, 2}, 1, 2, 3, 4)
//	t, _ := m.Transpose()
//	fmt.Println(t) // "1 3\n2 4"
type Array[T DType] = ndarray.Array[T]

// Raw is the untyped, little-endian encoded form of an array.
type Raw = ndarray.Raw

// Slice selects a run of rows, columns, or vector elements.
type Slice = ndarray.Slice

// ProductKind identifies the algorithm chosen by Array.Mul.
type ProductKind = ndarray.ProductKind

// Product kinds.
const (
	DotProduct    ProductKind = ndarray.DotProduct
	MatrixProduct ProductKind = ndarray.MatrixProduct
)

// Product is the result of Array.Mul.
type Product[T DType] = ndarray.Product[T]

// ParallelConfig controls how MatMulWith spreads work across goroutines.
type ParallelConfig = parallel.Config

// ShapeError reports the shapes involved in a failed operation.
type ShapeError = ndarray.ShapeError

// IndexError reports an index outside its dimension.
type IndexError = ndarray.IndexError

// Errors, matched with errors.Is.
var (
	ErrShapeMismatch        = ndarray.ErrShapeMismatch
	ErrIndexOutOfBounds     = ndarray.ErrIndexOutOfBounds
	ErrUnsupportedOperation = ndarray.ErrUnsupportedOperation
	ErrInvalidShape         = ndarray.ErrInvalidShape
)

// Creation functions

// New creates an array of the given shape. No fill values zero-fills it,
// one value is broadcast, and shape.NumElements() values are copied in
// row-major order.
//
// Example:
//
//	a, err := ndarray.New[int32](ndarray.Shape{3, 4}, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
func New[T DType](shape Shape, fill ...T) (*Array[T], error) {
	return ndarray.New(shape, fill...)
}

// Ones creates an array filled with ones.
func Ones[T DType](shape Shape) (*Array[T], error) {
	return ndarray.Ones[T](shape)
}

// Zeros creates an array filled with zeros.
func Zeros[T DType](shape Shape) (*Array[T], error) {
	return ndarray.Zeros[T](shape)
}

// Full creates an array filled with value.
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	return ndarray.Full(shape, value)
}

// FromSlice creates an array from a copy of data.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}

// Arange creates the vector 0, 1, ..., n-1.
func Arange[T DType](n int) (*Array[T], error) {
	return ndarray.Arange[T](n)
}

// Eye creates an n×n identity matrix.
func Eye[T DType](n int) (*Array[T], error) {
	return ndarray.Eye[T](n)
}

// FromRaw decodes an untyped array into an Array[T].
func FromRaw[T DType](r *Raw) (*Array[T], error) {
	return ndarray.FromRaw[T](r)
}

// DataTypeOf returns the runtime DataType for T.
func DataTypeOf[T DType]() DataType {
	return ndarray.DataTypeOf[T]()
}

// Slice constructors

// All selects the whole dimension.
func All() Slice { return ndarray.All() }

// Range selects [start, stop).
func Range(start, stop int) Slice { return ndarray.Range(start, stop) }

// RangeStep selects [start, stop) every step positions.
func RangeStep(start, stop, step int) Slice { return ndarray.RangeStep(start, stop, step) }

// From selects from start to the end of the dimension.
func From(start int) Slice { return ndarray.From(start) }

// To selects up to stop.
func To(stop int) Slice { return ndarray.To(stop) }

// ResolveProduct reports which product Array.Mul would compute for two shapes.
func ResolveProduct(a, b Shape) (ProductKind, error) {
	return ndarray.ResolveProduct(a, b)
}

// DefaultParallelConfig returns the config MatMul uses.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a config that runs MatMulWith on the calling goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
