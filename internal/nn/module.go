// Package nn implements the operators and the network of the inference engine.
//
// This package provides the building blocks of a feed-forward pipeline:
//   - Operator interface: Base interface for all layer kinds
//   - Flatten: Collapses any shape to one dimension
//   - LinearCombination: Affine transform (weights + bias)
//   - Activations: ReLU, SoftMax
//   - Network: Ordered container executing operators left to right
//   - Registry: Builds operators by kind name (used by model loading)
//
// Inference only: there is no gradient tracking.
package nn

import (
	"fmt"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Operator is the base interface for all layer kinds.
//
// Every operator owns one output Array. Execute writes into that array and
// returns it, so the result is a borrowed view:
//
//	out, err := op.Execute(x)   // out is valid...
//	next, err := op.Execute(y)  // ...until here: out and next are the same array
//
// Callers that need to keep a result across calls must Clone it.
type Operator interface {
	// Execute computes the output of the operator for the given input.
	//
	// Returns an error wrapping tensor.ErrShapeMismatch when the input
	// shape is incompatible with the operator.
	Execute(input *tensor.Array) (*tensor.Array, error)

	// CountParameters returns the number of trainable scalar values.
	CountParameters() int

	// InitializeOutput allocates the output buffer if it is still empty.
	// Subsequent calls are no-ops.
	InitializeOutput(size int, shape tensor.Shape)
}

// Kinder is implemented by operators that report a registry kind name.
type Kinder interface {
	Kind() string
}

// kindOf returns the registry kind of op, or its Go type name.
func kindOf(op Operator) string {
	if k, ok := op.(Kinder); ok {
		return k.Kind()
	}
	return fmt.Sprintf("%T", op)
}

// initializeOutput is the lazy allocation shared by the built-in operators.
func initializeOutput(output *tensor.Array, size int, shape tensor.Shape) *tensor.Array {
	if output != nil && output.Len() != 0 {
		return output
	}
	if shape.NumElements() != size {
		shape = tensor.Shape{size}
	}
	zeros, err := tensor.Zeros(shape)
	if err != nil {
		// Only reachable with negative sizes.
		return tensor.Empty()
	}
	return zeros
}
