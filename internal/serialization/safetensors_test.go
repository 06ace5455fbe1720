package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArrays(t *testing.T) map[string]*ndarray.Raw {
	t.Helper()

	weight, err := ndarray.New[float32](ndarray.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	bias, err := ndarray.New[float64](ndarray.Shape{3}, 0.1, 0.2, 0.3)
	require.NoError(t, err)
	ids, err := ndarray.Arange[int64](4)
	require.NoError(t, err)

	return map[string]*ndarray.Raw{
		"weight": weight.Raw(),
		"bias":   bias.Raw(),
		"ids":    ids.Raw(),
	}
}

// rawStream builds a SafeTensors stream from an arbitrary header, bypassing
// the writer's checks.
func rawStream(t *testing.T, header map[string]any, data []byte) *bytes.Buffer {
	t.Helper()

	headerJSON, err := json.Marshal(header)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON))))
	buf.Write(headerJSON)
	buf.Write(data)
	return &buf
}

func TestSafeTensorsRoundTrip(t *testing.T) {
	arrays := testArrays(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSafeTensors(&buf, arrays, map[string]string{"framework": "born"}))

	f, err := ReadSafeTensors(&buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"bias", "ids", "weight"}, f.Names())
	assert.Equal(t, map[string]string{"framework": "born"}, f.Metadata)

	for name, want := range arrays {
		got := f.Arrays[name]
		require.NotNil(t, got, name)
		assert.Equal(t, want.Shape, got.Shape, name)
		assert.Equal(t, want.DType, got.DType, name)
		assert.Equal(t, want.Data, got.Data, name)
	}

	weight, err := ndarray.FromRaw[float32](f.Arrays["weight"])
	require.NoError(t, err)
	v, err := weight.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(6), v)
}

func TestSafeTensorsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrays.safetensors")
	arrays := testArrays(t)

	require.NoError(t, SaveFile(path, arrays, nil))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Arrays, 3)
	assert.Empty(t, f.Metadata)
}

func TestSafeTensorsHeaderLayout(t *testing.T) {
	a, err := ndarray.New[int32](ndarray.Shape{2}, 1, 2)
	require.NoError(t, err)
	b, err := ndarray.New[uint8](ndarray.Shape{3}, 7, 8, 9)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSafeTensors(&buf, map[string]*ndarray.Raw{"b": b.Raw(), "a": a.Raw()}, nil))

	var size uint64
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &size))
	headerJSON := buf.Next(int(size))

	var header map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(headerJSON, &header))

	var ha, hb ArrayHeader
	require.NoError(t, json.Unmarshal(header["a"], &ha))
	require.NoError(t, json.Unmarshal(header["b"], &hb))

	assert.Equal(t, ArrayHeader{DType: DTypeI32, Shape: []int64{2}, DataOffsets: [2]int64{0, 8}}, ha)
	assert.Equal(t, ArrayHeader{DType: DTypeU8, Shape: []int64{3}, DataOffsets: [2]int64{8, 11}}, hb)
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0, 7, 8, 9}, buf.Bytes())
}

func TestSafeTensorsChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSafeTensors(&buf, testArrays(t), nil))

	corrupted := buf.Bytes()
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err := ReadSafeTensors(bytes.NewReader(corrupted))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestSafeTensorsWithoutChecksum(t *testing.T) {
	header := map[string]any{
		"v": ArrayHeader{DType: DTypeU8, Shape: []int64{2}, DataOffsets: [2]int64{0, 2}},
	}

	f, err := ReadSafeTensors(rawStream(t, header, []byte{4, 5}))
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, f.Arrays["v"].Data)
}

func TestSafeTensorsOffsetOverlap(t *testing.T) {
	header := map[string]any{
		"a": ArrayHeader{DType: DTypeU8, Shape: []int64{3}, DataOffsets: [2]int64{0, 3}},
		"b": ArrayHeader{DType: DTypeU8, Shape: []int64{3}, DataOffsets: [2]int64{2, 5}},
	}

	_, err := ReadSafeTensors(rawStream(t, header, make([]byte, 5)))
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "got %v", err)
	assert.Equal(t, "offset_overlap", vErr.Type)
}

func TestSafeTensorsOutOfBounds(t *testing.T) {
	header := map[string]any{
		"a": ArrayHeader{DType: DTypeF32, Shape: []int64{4}, DataOffsets: [2]int64{0, 16}},
	}

	_, err := ReadSafeTensors(rawStream(t, header, make([]byte, 8)))
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "got %v", err)
	assert.Equal(t, "out_of_bounds", vErr.Type)
}

func TestSafeTensorsShapeDisagreesWithPayload(t *testing.T) {
	header := map[string]any{
		"a": ArrayHeader{DType: DTypeI32, Shape: []int64{3}, DataOffsets: [2]int64{0, 8}},
	}

	_, err := ReadSafeTensors(rawStream(t, header, make([]byte, 8)))
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestSafeTensorsOverflowingShape(t *testing.T) {
	header := map[string]any{
		"a": ArrayHeader{DType: DTypeU8, Shape: []int64{1 << 32, 1 << 32}, DataOffsets: [2]int64{0, 0}},
	}

	_, err := ReadSafeTensors(rawStream(t, header, nil))
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape)
}

func TestSafeTensorsUnsupportedDType(t *testing.T) {
	header := map[string]any{
		"a": ArrayHeader{DType: "BF16", Shape: []int64{2}, DataOffsets: [2]int64{0, 4}},
	}

	_, err := ReadSafeTensors(rawStream(t, header, make([]byte, 4)))
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestSafeTensorsHeaderTooLarge(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(MaxHeaderSize+1)))

	_, err := ReadSafeTensors(&buf)
	assert.ErrorIs(t, err, ErrHeaderTooLarge)
}

func TestSafeTensorsInvalidHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(3)))
	buf.WriteString("{{{")

	_, err := ReadSafeTensors(&buf)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestWriteSafeTensors_Rejects(t *testing.T) {
	arrays := testArrays(t)

	err := WriteSafeTensors(&bytes.Buffer{}, arrays, map[string]string{ChecksumKey: "x"})
	assert.ErrorIs(t, err, ErrReservedMetadataKey)

	bad := map[string]*ndarray.Raw{"../escape": arrays["bias"]}
	err = WriteSafeTensors(&bytes.Buffer{}, bad, nil)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "invalid_name", vErr.Type)

	truncated := &ndarray.Raw{Shape: ndarray.Shape{4}, DType: ndarray.Float32, Data: make([]byte, 3)}
	err = WriteSafeTensors(&bytes.Buffer{}, map[string]*ndarray.Raw{"t": truncated}, nil)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}
