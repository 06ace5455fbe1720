package ndarray

import (
	"errors"
	"fmt"
)

// Common errors. Callers match them with errors.Is.
var (
	// ErrShapeMismatch is returned when operand shapes are incompatible:
	// element-wise ops on unequal shapes, matmul with disagreeing inner
	// dimensions, or a fill sequence whose length differs from the size.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrIndexOutOfBounds is returned when an index resolves outside its dimension.
	ErrIndexOutOfBounds = errors.New("ndarray: index out of bounds")

	// ErrUnsupportedOperation is returned for operations on an unsupported
	// rank (anything but 1 or 2) or an indexing pattern the rank does not define.
	ErrUnsupportedOperation = errors.New("ndarray: unsupported operation")

	// ErrInvalidShape is returned for non-positive dimensions, including
	// slices that select nothing.
	ErrInvalidShape = errors.New("ndarray: invalid shape")
)

// ShapeError reports the shapes involved in a failed operation.
type ShapeError struct {
	Op    string // Operation name (e.g., "add", "matmul")
	Left  Shape
	Right Shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %v != %v", ErrShapeMismatch, e.Op, e.Left, e.Right)
}

// Unwrap makes ShapeError match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// IndexError reports an index that fell outside its dimension.
type IndexError struct {
	Index int // Index as supplied by the caller
	Dim   int // Dimension being indexed
	Size  int // Length of that dimension
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d for dimension %d (size %d)", ErrIndexOutOfBounds, e.Index, e.Dim, e.Size)
}

// Unwrap makes IndexError match ErrIndexOutOfBounds.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

func unsupported(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}
