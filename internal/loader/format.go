package loader

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
)

// DType is a SafeTensors element type.
type DType string

// Element types the loader can decode. Arrays are always written as F64.
const (
	F32 DType = "F32"
	F64 DType = "F64"
)

const (
	metadataKey   = "__metadata__"
	maxHeaderSize = 100 << 20 // 100MB
)

// Size returns the number of bytes per element, or 0 for unknown dtypes.
func (d DType) Size() int {
	switch d {
	case F32:
		return 4
	case F64:
		return 8
	default:
		return 0
	}
}

// decode converts little-endian raw bytes to float64 values.
func (d DType) decode(raw []byte, dst []float64) {
	switch d {
	case F32:
		for i := range dst {
			dst[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:])))
		}
	case F64:
		for i := range dst {
			dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
		}
	}
}

// TensorInfo is one tensor entry of the JSON header.
type TensorInfo struct {
	DType       DType    `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [begin, end) relative to the data section
}

// Len returns the size in bytes of the tensor data.
func (t TensorInfo) Len() int64 {
	return t.DataOffsets[1] - t.DataOffsets[0]
}

// header is the decoded JSON header: metadata plus one entry per tensor.
type header struct {
	metadata map[string]string
	tensors  map[string]TensorInfo
}

func parseHeader(data []byte) (*header, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse header JSON: %w", err)
	}

	h := &header{tensors: make(map[string]TensorInfo, len(entries))}
	for name, raw := range entries {
		if name == metadataKey {
			if err := json.Unmarshal(raw, &h.metadata); err != nil {
				return nil, fmt.Errorf("parse metadata: %w", err)
			}
			continue
		}

		var info TensorInfo
		if err := json.Unmarshal(raw, &info); err != nil {
			return nil, fmt.Errorf("parse tensor %q: %w", name, err)
		}
		h.tensors[name] = info
	}

	return h, nil
}

// MarshalJSON writes the metadata under "__metadata__" next to the tensors.
func (h *header) MarshalJSON() ([]byte, error) {
	entries := make(map[string]any, len(h.tensors)+1)
	for name, info := range h.tensors {
		entries[name] = info
	}
	if len(h.metadata) > 0 {
		entries[metadataKey] = h.metadata
	}
	return json.Marshal(entries)
}
