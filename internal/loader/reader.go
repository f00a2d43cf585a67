package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Reader gives random access to the tensors of a SafeTensors file.
//
// Reads go through io.ReaderAt, so one Reader may serve several goroutines.
type Reader struct {
	header *header
	data   *io.SectionReader
	closer io.Closer
}

// Open opens a SafeTensors file. The caller must Close the Reader.
func Open(path string) (*Reader, error) {
	//nolint:gosec // G304: File path comes from user input
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	r, err := NewReader(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.closer = file
	return r, nil
}

// NewReader parses the header of size bytes of SafeTensors data held by ra.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	var prefix [8]byte
	if _, err := ra.ReadAt(prefix[:], 0); err != nil {
		return nil, fmt.Errorf("read header size: %w", err)
	}

	n := binary.LittleEndian.Uint64(prefix[:])
	if n > maxHeaderSize || n > uint64(size-8) {
		return nil, fmt.Errorf("invalid header size %d for %d bytes of data", n, size)
	}
	headerLen := int64(n) //nolint:gosec // G115: bounded by maxHeaderSize

	raw := make([]byte, headerLen)
	if _, err := ra.ReadAt(raw, 8); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	h, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}

	return &Reader{
		header: h,
		data:   io.NewSectionReader(ra, 8+headerLen, size-8-headerLen),
	}, nil
}

// Close releases the file opened by Open. It is a no-op for NewReader.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Metadata returns the "__metadata__" entries (nil if there are none).
func (r *Reader) Metadata() map[string]string {
	return r.header.metadata
}

// Names returns all tensor names in sorted order.
func (r *Reader) Names() []string {
	names := make([]string, 0, len(r.header.tensors))
	for name := range r.header.tensors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Info returns the header entry of a tensor.
func (r *Reader) Info(name string) (TensorInfo, bool) {
	info, ok := r.header.tensors[name]
	return info, ok
}

// ReadRaw returns the undecoded bytes of a tensor.
func (r *Reader) ReadRaw(name string) ([]byte, error) {
	info, ok := r.header.tensors[name]
	if !ok {
		return nil, fmt.Errorf("tensor %q not found", name)
	}

	begin, end := info.DataOffsets[0], info.DataOffsets[1]
	if begin < 0 || end < begin || end > r.data.Size() {
		return nil, fmt.Errorf("tensor %q: data offsets [%d, %d) outside %d bytes of data",
			name, begin, end, r.data.Size())
	}

	buf := make([]byte, end-begin)
	if len(buf) == 0 {
		return buf, nil
	}
	if _, err := r.data.ReadAt(buf, begin); err != nil {
		return nil, fmt.Errorf("tensor %q: %w", name, err)
	}
	return buf, nil
}

// LoadArray decodes an F32 or F64 tensor into an Array.
func (r *Reader) LoadArray(name string) (*tensor.Array, error) {
	info, ok := r.header.tensors[name]
	if !ok {
		return nil, fmt.Errorf("tensor %q not found", name)
	}

	elemSize := info.DType.Size()
	if elemSize == 0 {
		return nil, fmt.Errorf("tensor %q: unsupported dtype %q", name, info.DType)
	}

	shape := tensor.Shape(info.Shape)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("tensor %q: %w", name, err)
	}
	n, size := int64(shape.NumElements()), int64(elemSize)
	if n > info.Len()/size {
		return nil, fmt.Errorf("tensor %q: shape %v of %s holds more elements than the %d bytes the header declares",
			name, []int(shape), info.DType, info.Len())
	}
	if want := n * size; info.Len() != want {
		return nil, fmt.Errorf("tensor %q: shape %v of %s needs %d bytes, header declares %d",
			name, []int(shape), info.DType, want, info.Len())
	}

	raw, err := r.ReadRaw(name)
	if err != nil {
		return nil, err
	}

	values := make([]float64, shape.NumElements())
	info.DType.decode(raw, values)
	return tensor.New(values, shape)
}
