package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/soonum/zama-trial/internal/tensor"
)

// LinearCombination implements an affine (fully connected) layer.
//
// Performs the transformation: y[j] = b[j] + Σ_i x[i] * W[i, j]
// where:
//   - x is the input with in_features elements (any shape, read row-major)
//   - W is the weight matrix with shape [in_features, out_features], row-major
//   - b is the bias vector with shape [out_features]
//   - y is the output with shape [out_features]
//
// Example:
//
//	// 4 inputs, 2 outputs
//	weights := []float64{
//	    1, 5,
//	    2, 6,
//	    3, 7,
//	    4, 8,
//	}
//	layer, err := nn.NewLinearCombination(weights, []float64{2, 2})
//	out, err := layer.Execute(x) // x = [1, 2, 3, 4] -> out = [32, 72]
type LinearCombination struct {
	weights *tensor.Array // [in_features, out_features]
	bias    *tensor.Array // [out_features]
	output  *tensor.Array
}

// NewLinearCombination creates a LinearCombination from row-major weights and a bias.
//
// The number of output features is len(bias); the number of input features
// is len(weights) / len(bias).
//
// Returns an error wrapping ErrDimensionMismatch if the bias is empty or its
// length does not evenly divide the weights length.
func NewLinearCombination(weights, bias []float64) (*LinearCombination, error) {
	if len(bias) == 0 {
		return nil, fmt.Errorf("linear: %w: bias must not be empty", ErrDimensionMismatch)
	}
	if len(weights)%len(bias) != 0 {
		return nil, fmt.Errorf("linear: %w: %d weights cannot be split into columns of %d",
			ErrDimensionMismatch, len(weights), len(bias))
	}

	outFeatures := len(bias)
	inFeatures := len(weights) / outFeatures

	w, err := tensor.New(weights, tensor.Shape{inFeatures, outFeatures})
	if err != nil {
		return nil, fmt.Errorf("linear: weights: %w", err)
	}
	b, err := tensor.New(bias, tensor.Shape{outFeatures})
	if err != nil {
		return nil, fmt.Errorf("linear: bias: %w", err)
	}

	return &LinearCombination{
		weights: w,
		bias:    b,
		output:  tensor.Empty(),
	}, nil
}

// Execute computes the affine transform of the input.
//
// The input must hold exactly InFeatures() elements, otherwise an error
// wrapping ErrDimensionMismatch is returned. The output accumulator is
// cleared on every call.
func (l *LinearCombination) Execute(input *tensor.Array) (*tensor.Array, error) {
	if input == nil {
		return nil, fmt.Errorf("linear: %w", ErrNilInput)
	}

	columns := l.bias.Len()
	if input.Len()*columns != l.weights.Len() {
		return nil, fmt.Errorf("linear: %w: input of %d elements with %d bias values does not match %d weights",
			ErrDimensionMismatch, input.Len(), columns, l.weights.Len())
	}

	l.InitializeOutput(columns, tensor.Shape{columns})

	out := l.output.Data()
	clear(out)

	weights := l.weights.Data()
	for i, x := range input.Data() {
		floats.AddScaled(out, x, weights[i*columns:(i+1)*columns])
	}
	floats.Add(out, l.bias.Data())

	return l.output, nil
}

// CountParameters returns len(weights) + len(bias).
func (l *LinearCombination) CountParameters() int {
	return l.weights.Len() + l.bias.Len()
}

// InitializeOutput allocates the output buffer on first use.
func (l *LinearCombination) InitializeOutput(size int, shape tensor.Shape) {
	l.output = initializeOutput(l.output, size, shape)
}

// Kind returns "linear".
func (l *LinearCombination) Kind() string {
	return KindLinear
}

// InFeatures returns the number of input features.
func (l *LinearCombination) InFeatures() int {
	return l.weights.Shape()[0]
}

// OutFeatures returns the number of output features.
func (l *LinearCombination) OutFeatures() int {
	return l.bias.Len()
}

// Weights returns the weight matrix [in_features, out_features].
func (l *LinearCombination) Weights() *tensor.Array {
	return l.weights
}

// Bias returns the bias vector [out_features].
func (l *LinearCombination) Bias() *tensor.Array {
	return l.bias
}

// StateDict returns a map of parameter names to arrays.
func (l *LinearCombination) StateDict() map[string]*tensor.Array {
	return map[string]*tensor.Array{
		"weight": l.weights,
		"bias":   l.bias,
	}
}
