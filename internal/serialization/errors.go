package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch    = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge      = errors.New("header exceeds maximum size")
	ErrUnsupportedDType    = errors.New("unsupported dtype")
	ErrInvalidHeader       = errors.New("invalid header")
	ErrReservedMetadataKey = errors.New("metadata key is reserved")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type   string // Type of error (e.g., "offset_overlap", "out_of_bounds")
	Array  string // Primary array name involved
	Array2 string // Secondary array name (for overlap errors)
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Array2 != "" {
		return fmt.Sprintf("%s: arrays %q and %q: %s", e.Type, e.Array, e.Array2, e.Detail)
	}
	if e.Array != "" {
		return fmt.Sprintf("%s: array %q: %s", e.Type, e.Array, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Detail)
}
