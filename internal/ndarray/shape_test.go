package ndarray

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	for _, dt := range []DataType{Float32, Float64, Int32, Int64, Uint8} {
		parsed, ok := ParseDataType(dt.String())
		require.True(t, ok, dt.String())
		assert.Equal(t, dt, parsed)
	}

	_, ok := ParseDataType("complex64")
	assert.False(t, ok)
	assert.Equal(t, "unknown", DataType(42).String())
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, Int32, DataTypeOf[int32]())
	assert.Equal(t, Int64, DataTypeOf[int64]())
	assert.Equal(t, Uint8, DataTypeOf[uint8]())
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 0},
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		err   error
	}{
		{"vector", Shape{3}, nil},
		{"matrix", Shape{3, 4}, nil},
		{"scalar", Shape{}, ErrUnsupportedOperation},
		{"rank 3", Shape{2, 3, 4}, ErrUnsupportedOperation},
		{"zero dim", Shape{0}, ErrInvalidShape},
		{"negative cols", Shape{3, -4}, ErrInvalidShape},
		{"element count overflows", Shape{1 << 32, 1 << 32}, ErrInvalidShape},
		{"largest vector", Shape{math.MaxInt}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{6}.Equal(Shape{6, 1}))
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, Shape{2, 3}, s)
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
	assert.Equal(t, []int{4, 1}, Shape{3, 4}.ComputeStrides())
}

func TestShapeOffset(t *testing.T) {
	tests := []struct {
		shape   Shape
		indices []int
		want    int
	}{
		{Shape{5}, []int{0}, 0},
		{Shape{5}, []int{4}, 4},
		{Shape{5}, []int{-1}, 4},
		{Shape{3, 4}, []int{0, 0}, 0},
		{Shape{3, 4}, []int{1, 2}, 6},
		{Shape{3, 4}, []int{2, 3}, 11},
		{Shape{3, 4}, []int{-1, -1}, 11},
	}

	for _, tt := range tests {
		got, err := tt.shape.Offset(tt.indices...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Shape%v.Offset(%v)", tt.shape, tt.indices)
	}
}

func TestShapeOffsetErrors(t *testing.T) {
	_, err := Shape{3}.Offset(5)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, 5, idxErr.Index)
	assert.Equal(t, 3, idxErr.Size)

	_, err = Shape{3}.Offset(-4)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = Shape{3, 4}.Offset(1, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = Shape{3, 4}.Offset(1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}
