package loader

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Encode writes arrays as F64 tensors in SafeTensors layout.
//
// Tensor data is laid out in name order; metadata is optional.
func Encode(w io.Writer, arrays map[string]*tensor.Array, metadata map[string]string) error {
	names := make([]string, 0, len(arrays))
	for name := range arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	h := &header{metadata: metadata, tensors: make(map[string]TensorInfo, len(arrays))}
	var offset int64
	for _, name := range names {
		a := arrays[name]
		end := offset + int64(a.Len()*F64.Size())
		h.tensors[name] = TensorInfo{DType: F64, Shape: a.Shape(), DataOffsets: [2]int64{offset, end}}
		offset = end
	}

	headerJSON, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], uint64(len(headerJSON)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	if _, err := w.Write(headerJSON); err != nil {
		return err
	}

	var buf [8]byte
	for _, name := range names {
		for _, v := range arrays[name].Data() {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			if _, err := w.Write(buf[:]); err != nil {
				return fmt.Errorf("tensor %q: %w", name, err)
			}
		}
	}

	return nil
}

// WriteFile encodes arrays into a new SafeTensors file at path.
func WriteFile(path string, arrays map[string]*tensor.Array, metadata map[string]string) error {
	//nolint:gosec // G304: File path comes from user input
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(file)
	if err := Encode(bw, arrays, metadata); err != nil {
		_ = file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
