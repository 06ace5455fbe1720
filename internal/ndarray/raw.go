package ndarray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Raw is the untyped form of an array: shape, element type and the
// little-endian encoding of its buffer. It is what gets persisted.
type Raw struct {
	Shape Shape
	DType DataType
	Data  []byte
}

// NumElements returns the number of elements described by the shape.
func (r *Raw) NumElements() int {
	return r.Shape.NumElements()
}

// ByteSize returns the encoded size in bytes.
func (r *Raw) ByteSize() int {
	return r.NumElements() * r.DType.Size()
}

// Validate checks that the shape is supported and the payload length
// matches shape and dtype.
func (r *Raw) Validate() error {
	if err := r.Shape.Validate(); err != nil {
		return err
	}
	if r.NumElements() > math.MaxInt/r.DType.Size() {
		return fmt.Errorf("%w: %s%v is too large to encode", ErrInvalidShape, r.DType, r.Shape)
	}
	if len(r.Data) != r.ByteSize() {
		return fmt.Errorf("%w: %s%v needs %d bytes, got %d",
			ErrShapeMismatch, r.DType, r.Shape, r.ByteSize(), len(r.Data))
	}
	return nil
}

// Raw encodes the array into its untyped form.
func (a *Array[T]) Raw() *Raw {
	data, err := binary.Append(make([]byte, 0, len(a.data)*a.dtype.Size()), binary.LittleEndian, a.data)
	if err != nil {
		// Every DType is a fixed-size type.
		panic(fmt.Sprintf("encode %s array: %v", a.dtype, err))
	}
	return &Raw{Shape: a.shape.Clone(), DType: a.dtype, Data: data}
}

// FromRaw decodes an untyped array into an Array[T].
// The raw dtype must match T.
func FromRaw[T DType](r *Raw) (*Array[T], error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if want := DataTypeOf[T](); r.DType != want {
		return nil, unsupported("decode %s data as %s", r.DType, want)
	}

	a, err := alloc[T](r.Shape)
	if err != nil {
		return nil, err
	}
	if err := binary.Read(bytes.NewReader(r.Data), binary.LittleEndian, a.data); err != nil {
		return nil, fmt.Errorf("decode %s%v: %w", r.DType, r.Shape, err)
	}
	return a, nil
}
