package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// File holds the arrays and metadata read from a SafeTensors stream.
type File struct {
	Metadata map[string]string       // String metadata, without the checksum entry
	Arrays   map[string]*ndarray.Raw // Arrays by name
}

// Names returns the array names in alphabetical order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Arrays))
	for name := range f.Arrays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadSafeTensors reads a SafeTensors stream written by WriteSafeTensors or
// any other SafeTensors producer using the supported dtypes.
func ReadSafeTensors(r io.Reader) (*File, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read array data: %w", err)
	}

	f := &File{
		Metadata: map[string]string{},
		Arrays:   make(map[string]*ndarray.Raw, len(entries)),
	}

	if rawMeta, ok := entries[MetadataKey]; ok {
		if err := json.Unmarshal(rawMeta, &f.Metadata); err != nil {
			return nil, fmt.Errorf("%w: metadata: %w", ErrInvalidHeader, err)
		}
		delete(entries, MetadataKey)
	}
	if sum, ok := f.Metadata[ChecksumKey]; ok {
		if err := ValidateChecksum(data, sum); err != nil {
			return nil, err
		}
		delete(f.Metadata, ChecksumKey)
	}

	headers := make(map[string]ArrayHeader, len(entries))
	metas := make([]ArrayMeta, 0, len(entries))
	for name, msg := range entries {
		if err := ValidateArrayName(name); err != nil {
			return nil, err
		}
		var h ArrayHeader
		if err := json.Unmarshal(msg, &h); err != nil {
			return nil, fmt.Errorf("%w: array %q: %w", ErrInvalidHeader, name, err)
		}
		headers[name] = h
		metas = append(metas, ArrayMeta{
			Name:   name,
			Offset: h.DataOffsets[0],
			Size:   h.DataOffsets[1] - h.DataOffsets[0],
		})
	}
	if err := ValidateArrayOffsets(metas, int64(len(data))); err != nil {
		return nil, err
	}

	for name, h := range headers {
		raw, err := decodeArray(name, h, data)
		if err != nil {
			return nil, err
		}
		f.Arrays[name] = raw
	}
	return f, nil
}

func decodeArray(name string, h ArrayHeader, data []byte) (*ndarray.Raw, error) {
	dtype, ok := safeTensorsToDtype(h.DType)
	if !ok {
		return nil, fmt.Errorf("array %q: %w: %s", name, ErrUnsupportedDType, h.DType)
	}

	shape := make(ndarray.Shape, len(h.Shape))
	for i, dim := range h.Shape {
		shape[i] = int(dim)
	}

	payload := make([]byte, h.DataOffsets[1]-h.DataOffsets[0])
	copy(payload, data[h.DataOffsets[0]:h.DataOffsets[1]])

	raw := &ndarray.Raw{Shape: shape, DType: dtype, Data: payload}
	if err := raw.Validate(); err != nil {
		return nil, fmt.Errorf("array %q: %w", name, err)
	}
	return raw, nil
}

// LoadFile reads a SafeTensors file from path.
func LoadFile(path string) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading arrays
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ReadSafeTensors(bufio.NewReader(file))
}
