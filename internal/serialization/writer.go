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

// WriteSafeTensors writes arrays to w in SafeTensors format.
//
// Arrays are laid out in alphabetical order by name. The SHA-256 of the
// data section is stored in the metadata under ChecksumKey, which callers
// may not set themselves.
func WriteSafeTensors(w io.Writer, arrays map[string]*ndarray.Raw, metadata map[string]string) error {
	if _, ok := metadata[ChecksumKey]; ok {
		return fmt.Errorf("%w: %q", ErrReservedMetadataKey, ChecksumKey)
	}

	names := make([]string, 0, len(arrays))
	for name := range arrays {
		if err := ValidateArrayName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(arrays)+1)
	var (
		data   []byte
		offset int64
	)
	for _, name := range names {
		raw := arrays[name]
		if err := raw.Validate(); err != nil {
			return fmt.Errorf("array %q: %w", name, err)
		}
		dtype, ok := dtypeToSafeTensors(raw.DType)
		if !ok {
			return fmt.Errorf("array %q: %w: %s", name, ErrUnsupportedDType, raw.DType)
		}

		shape := make([]int64, len(raw.Shape))
		for i, dim := range raw.Shape {
			shape[i] = int64(dim)
		}
		size := int64(len(raw.Data))
		header[name] = ArrayHeader{
			DType:       dtype,
			Shape:       shape,
			DataOffsets: [2]int64{offset, offset + size},
		}
		data = append(data, raw.Data...)
		offset += size
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta[ChecksumKey] = ComputeChecksum(data)
	header[MetadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write array data: %w", err)
	}
	return nil
}

// SaveFile writes arrays to a SafeTensors file at path.
func SaveFile(path string, arrays map[string]*ndarray.Raw, metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving arrays
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(file)
	if err := WriteSafeTensors(bw, arrays, metadata); err != nil {
		return err
	}
	return bw.Flush()
}
