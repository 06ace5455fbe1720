package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize   = 100 * 1024 * 1024 // 100MB
	MaxArrayCount   = 100_000
	MaxArrayNameLen = 4096
)

// ValidateArrayOffsets checks for negative, overlapping and out-of-bounds
// array regions within a data section of dataSize bytes.
func ValidateArrayOffsets(arrays []ArrayMeta, dataSize int64) error {
	if len(arrays) > MaxArrayCount {
		return &ValidationError{
			Type:   "too_many_arrays",
			Detail: fmt.Sprintf("got %d, max %d", len(arrays), MaxArrayCount),
		}
	}

	sorted := make([]ArrayMeta, len(arrays))
	copy(sorted, arrays)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, a := range sorted {
		if a.Offset < 0 || a.Size < 0 {
			return &ValidationError{
				Type:   "negative_offset",
				Array:  a.Name,
				Detail: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", a.Offset, a.Size),
			}
		}

		if a.Offset+a.Size > dataSize {
			return &ValidationError{
				Type:   "out_of_bounds",
				Array:  a.Name,
				Detail: fmt.Sprintf("offset %d + size %d > data_size %d", a.Offset, a.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if a.Offset+a.Size > next.Offset {
				return &ValidationError{
					Type:   "offset_overlap",
					Array:  a.Name,
					Array2: next.Name,
					Detail: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						a.Offset, a.Offset+a.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateArrayName rejects empty, oversized, reserved and path-like names.
func ValidateArrayName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Type: "invalid_name", Detail: "empty name"}
	case name == MetadataKey:
		return &ValidationError{Type: "invalid_name", Array: name, Detail: "reserved for metadata"}
	case len(name) > MaxArrayNameLen:
		return &ValidationError{
			Type:   "name_too_long",
			Array:  name,
			Detail: fmt.Sprintf("length %d > max %d", len(name), MaxArrayNameLen),
		}
	case strings.Contains(name, ".."):
		return &ValidationError{Type: "invalid_name", Array: name, Detail: "contains '..'"}
	case strings.ContainsAny(name, "/\\"):
		return &ValidationError{Type: "invalid_name", Array: name, Detail: "contains path separator (/ or \\)"}
	case strings.Contains(name, "\x00"):
		return &ValidationError{Type: "invalid_name", Array: name, Detail: "contains null byte"}
	}
	return nil
}
