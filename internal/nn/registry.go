package nn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Built-in operator kinds.
const (
	KindFlatten = "flatten"
	KindReLU    = "relu"
	KindLinear  = "linear"
	KindSoftMax = "softmax"
)

// Factory builds an operator from its named parameters.
type Factory func(params map[string]*tensor.Array) (Operator, error)

// Registry maps operator kinds to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a new registry with all built-in operators.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
	}

	r.Register(KindFlatten, func(map[string]*tensor.Array) (Operator, error) {
		return NewFlatten(), nil
	})
	r.Register(KindReLU, func(map[string]*tensor.Array) (Operator, error) {
		return NewReLU(), nil
	})
	r.Register(KindSoftMax, func(map[string]*tensor.Array) (Operator, error) {
		return NewSoftMax(), nil
	})
	r.Register(KindLinear, buildLinear)

	return r
}

// Register adds or replaces the factory for a kind.
func (r *Registry) Register(kind string, factory Factory) {
	r.factories[kind] = factory
}

// Get returns the factory for a kind.
func (r *Registry) Get(kind string) (Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}

// Build creates an operator of the given kind.
func (r *Registry) Build(kind string, params map[string]*tensor.Array) (Operator, error) {
	factory, ok := r.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownOperator, kind, strings.Join(r.SupportedKinds(), ", "))
	}
	op, err := factory(params)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", kind, err)
	}
	return op, nil
}

// SupportedKinds returns all registered kinds in sorted order.
func (r *Registry) SupportedKinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// buildLinear creates a LinearCombination from "weight" and "bias" parameters.
// A 2-D weight must be shaped [in_features, len(bias)].
func buildLinear(params map[string]*tensor.Array) (Operator, error) {
	weight, ok := params["weight"]
	if !ok {
		return nil, fmt.Errorf("%w: weight", ErrMissingParameter)
	}
	bias, ok := params["bias"]
	if !ok {
		return nil, fmt.Errorf("%w: bias", ErrMissingParameter)
	}

	if shape := weight.Shape(); len(shape) == 2 && shape[1] != bias.Len() {
		return nil, fmt.Errorf("%w: weight shape %v does not have %d columns",
			ErrDimensionMismatch, shape, bias.Len())
	}

	return NewLinearCombination(weight.Data(), bias.Data())
}
