package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soonum/zama-trial/internal/nn"
	"github.com/soonum/zama-trial/internal/tensor"
)

// Metadata keys written by SaveNetwork and the trial command.
const (
	LayersKey  = "layers"   // Comma-separated operator kinds
	ModelIDKey = "model_id" // UUID assigned when the model is created
)

// ErrNoTopology is returned when a model file has no "layers" metadata.
var ErrNoTopology = errors.New("model has no layers metadata")

// SaveNetwork writes the topology and parameters of net to path.
//
// Extra metadata entries are stored alongside the topology; a "layers"
// entry in metadata is overwritten.
func SaveNetwork(path string, net *nn.Network, metadata map[string]string) error {
	kinds := net.Kinds()
	for i, kind := range kinds {
		if strings.ContainsAny(kind, ", ") {
			return fmt.Errorf("operator %d: kind %q cannot be stored", i, kind)
		}
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta[LayersKey] = strings.Join(kinds, ",")

	if err := WriteFile(path, net.StateDict(), meta); err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	return nil
}

// LoadNetwork reads a model written by SaveNetwork and rebuilds it with registry.
func LoadNetwork(path string, registry *nn.Registry) (*nn.Network, error) {
	net, _, err := LoadModel(path, registry)
	return net, err
}

// LoadModel is LoadNetwork that also returns the model's metadata.
func LoadModel(path string, registry *nn.Registry) (*nn.Network, map[string]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load network: %w", err)
	}
	defer func() {
		_ = r.Close() // Read-only file
	}()

	net, err := BuildNetwork(r, registry)
	if err != nil {
		return nil, nil, fmt.Errorf("load network %s: %w", path, err)
	}
	return net, r.Metadata(), nil
}

// BuildNetwork assembles a Network from the tensors and metadata of r.
//
// Tensors named "<index>.<param>" are passed to the factory of the operator
// at that index. Tensors that match no operator are an error.
func BuildNetwork(r *Reader, registry *nn.Registry) (*nn.Network, error) {
	layers, ok := r.Metadata()[LayersKey]
	if !ok || strings.TrimSpace(layers) == "" {
		return nil, ErrNoTopology
	}
	kinds := strings.Split(layers, ",")

	params := make([]map[string]*tensor.Array, len(kinds))
	for _, name := range r.Names() {
		var index int
		var param string
		if _, err := fmt.Sscanf(strings.Replace(name, ".", " ", 1), "%d %s", &index, &param); err != nil {
			return nil, fmt.Errorf("tensor %q: name is not <index>.<param>", name)
		}
		if index < 0 || index >= len(kinds) {
			return nil, fmt.Errorf("tensor %q: no operator at index %d", name, index)
		}

		arr, err := r.LoadArray(name)
		if err != nil {
			return nil, err
		}
		if params[index] == nil {
			params[index] = make(map[string]*tensor.Array)
		}
		params[index][param] = arr
	}

	net := nn.NewNetwork()
	for i, kind := range kinds {
		op, err := registry.Build(strings.TrimSpace(kind), params[i])
		if err != nil {
			return nil, fmt.Errorf("operator %d: %w", i, err)
		}
		net.AddOperator(op)
	}

	return net, nil
}
