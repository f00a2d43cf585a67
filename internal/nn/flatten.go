package nn

import (
	"fmt"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Flatten collapses its input into a single dimension.
//
// Data order is unchanged: a [2, 3] input becomes a [6] output holding the
// same row-major values.
//
// Example:
//
//	flatten := nn.NewFlatten()
//	out, err := flatten.Execute(image) // image [28, 28] -> out [784]
type Flatten struct {
	output *tensor.Array
}

// NewFlatten creates a new Flatten operator.
func NewFlatten() *Flatten {
	return &Flatten{output: tensor.Empty()}
}

// Execute copies the input and sets the output shape to [input.Len()].
func (f *Flatten) Execute(input *tensor.Array) (*tensor.Array, error) {
	if input == nil {
		return nil, fmt.Errorf("flatten: %w", ErrNilInput)
	}

	n := input.Len()
	f.InitializeOutput(n, tensor.Shape{n})
	f.output.CopyFrom(input)
	if err := f.output.Reshape(tensor.Shape{n}); err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}

	return f.output, nil
}

// CountParameters returns 0 (Flatten has no trainable parameters).
func (f *Flatten) CountParameters() int {
	return 0
}

// InitializeOutput allocates the output buffer on first use.
func (f *Flatten) InitializeOutput(size int, shape tensor.Shape) {
	f.output = initializeOutput(f.output, size, shape)
}

// Kind returns "flatten".
func (f *Flatten) Kind() string {
	return KindFlatten
}
