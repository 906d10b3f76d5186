package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// ReadFile reads a .ecgn file from disk.
func ReadFile(path string) (map[string]Tensor, Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode parses a .ecgn stream, validating the header, tensor layout and checksum.
func Decode(in io.Reader) (map[string]Tensor, Header, error) {
	var fixed [FixedHeaderSize]byte
	if _, err := io.ReadFull(in, fixed[:]); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read fixed header: %w", err)
	}

	if string(fixed[0:4]) != MagicBytes {
		return nil, Header{}, fmt.Errorf("%w: got %q", ErrInvalidMagic, fixed[0:4])
	}
	version := binary.LittleEndian.Uint32(fixed[4:8])
	if version != FormatVersion {
		return nil, Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	headerSize := binary.LittleEndian.Uint64(fixed[12:20])
	if headerSize > MaxHeaderSize {
		return nil, Header{}, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(in, headerJSON); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, Header{}, fmt.Errorf("failed to parse header: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	if padding := paddingFor(int64(FixedHeaderSize) + int64(headerSize)); padding > 0 {
		if _, err := io.CopyN(io.Discard, in, padding); err != nil {
			return nil, Header{}, fmt.Errorf("failed to skip padding: %w", err)
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to read tensor data: %w", err)
	}

	if err := ValidateHeader(&header, int64(len(data))); err != nil {
		return nil, Header{}, fmt.Errorf("validation failed: %w", err)
	}
	if err := ValidateChecksum(data, header.Checksum); err != nil {
		return nil, Header{}, err
	}

	state := make(map[string]Tensor, len(header.Tensors))
	for _, meta := range header.Tensors {
		values := float64s(data[meta.Offset : meta.Offset+meta.Size])
		state[meta.Name] = Tensor{Shape: append([]int(nil), meta.Shape...), Data: values}
	}

	return state, header, nil
}

// float64s decodes little-endian float64 values.
func float64s(raw []byte) []float64 {
	out := make([]float64, len(raw)/bytesPerElement)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*bytesPerElement:]))
	}
	return out
}
