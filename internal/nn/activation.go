package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/soonum/zama-trial/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation operator.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// The output keeps the input's shape. The output buffer is sized by the
// first input and reused afterwards; an input of a different length
// resizes it.
//
// Example:
//
//	relu := nn.NewReLU()
//	out, err := relu.Execute(x) // All negative values become 0
type ReLU struct {
	output *tensor.Array
}

// NewReLU creates a new ReLU activation operator.
func NewReLU() *ReLU {
	return &ReLU{output: tensor.Empty()}
}

// Execute applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Execute(input *tensor.Array) (*tensor.Array, error) {
	if input == nil {
		return nil, fmt.Errorf("relu: %w", ErrNilInput)
	}

	r.InitializeOutput(input.Len(), input.Shape())
	r.output.CopyFrom(input)

	data := r.output.Data()
	for i, x := range data {
		data[i] = math.Max(x, 0)
	}

	return r.output, nil
}

// CountParameters returns 0 (ReLU has no trainable parameters).
func (r *ReLU) CountParameters() int {
	return 0
}

// InitializeOutput allocates the output buffer on first use.
func (r *ReLU) InitializeOutput(size int, shape tensor.Shape) {
	r.output = initializeOutput(r.output, size, shape)
}

// Kind returns "relu".
func (r *ReLU) Kind() string {
	return KindReLU
}

// SoftMax normalizes its input into a probability distribution.
//
// Computes: softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// Subtracting the maximum keeps exp from overflowing on large inputs and
// does not change the result. Every output lies in [0, 1] and the outputs
// sum to 1. SoftMax operates over all elements, whatever the shape.
//
// Example:
//
//	softmax := nn.NewSoftMax()
//	probs, err := softmax.Execute(logits)
type SoftMax struct {
	output *tensor.Array
}

// NewSoftMax creates a new SoftMax operator.
func NewSoftMax() *SoftMax {
	return &SoftMax{output: tensor.Empty()}
}

// Execute applies SoftMax over every element of the input.
//
// Returns a *tensor.ShapeError for an empty input.
func (s *SoftMax) Execute(input *tensor.Array) (*tensor.Array, error) {
	if input == nil {
		return nil, fmt.Errorf("softmax: %w", ErrNilInput)
	}
	if input.Len() == 0 {
		return nil, &tensor.ShapeError{
			Op:      "softmax",
			Shape:   input.Shape(),
			Details: "softmax of an empty array is undefined",
		}
	}

	s.InitializeOutput(input.Len(), input.Shape())
	s.output.CopyFrom(input)

	data := s.output.Data()
	floats.AddConst(-floats.Max(data), data)
	for i, x := range data {
		data[i] = math.Exp(x)
	}
	floats.Scale(1/floats.Sum(data), data)

	return s.output, nil
}

// CountParameters returns 0 (SoftMax has no trainable parameters).
func (s *SoftMax) CountParameters() int {
	return 0
}

// InitializeOutput allocates the output buffer on first use.
func (s *SoftMax) InitializeOutput(size int, shape tensor.Shape) {
	s.output = initializeOutput(s.output, size, shape)
}

// Kind returns "softmax".
func (s *SoftMax) Kind() string {
	return KindSoftMax
}
