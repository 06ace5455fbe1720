package serialization

import "github.com/born-ml/ndarray/internal/ndarray"

// MetadataKey is the reserved header entry for string metadata.
const MetadataKey = "__metadata__"

// SafeTensors dtype strings.
const (
	DTypeF32 = "F32"
	DTypeF64 = "F64"
	DTypeI32 = "I32"
	DTypeI64 = "I64"
	DTypeU8  = "U8"
)

// ArrayHeader describes one array in the SafeTensors header.
type ArrayHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [begin, end) within the data section
}

// ArrayMeta is a header entry paired with its name, used for validation.
type ArrayMeta struct {
	Name   string
	Offset int64
	Size   int64
}

// dtypeToSafeTensors converts ndarray.DataType to a SafeTensors dtype string.
func dtypeToSafeTensors(dt ndarray.DataType) (string, bool) {
	switch dt {
	case ndarray.Float32:
		return DTypeF32, true
	case ndarray.Float64:
		return DTypeF64, true
	case ndarray.Int32:
		return DTypeI32, true
	case ndarray.Int64:
		return DTypeI64, true
	case ndarray.Uint8:
		return DTypeU8, true
	default:
		return "", false
	}
}

// safeTensorsToDtype converts a SafeTensors dtype string to ndarray.DataType.
func safeTensorsToDtype(s string) (ndarray.DataType, bool) {
	switch s {
	case DTypeF32:
		return ndarray.Float32, true
	case DTypeF64:
		return ndarray.Float64, true
	case DTypeI32:
		return ndarray.Int32, true
	case DTypeI64:
		return ndarray.Int64, true
	case DTypeU8:
		return ndarray.Uint8, true
	default:
		return 0, false
	}
}
