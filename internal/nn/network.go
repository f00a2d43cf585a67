package nn

import (
	"fmt"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Network is an ordered pipeline of operators.
//
// Each operator's output becomes the next operator's input:
//
//	net := nn.NewNetwork()
//	net.AddOperator(nn.NewFlatten())
//	net.AddOperator(linear)
//	net.AddOperator(nn.NewReLU())
//	net.AddOperator(nn.NewSoftMax())
//
//	out, err := net.ExecuteInference(image)
//
// This is equivalent to:
//
//	h1, err := flatten.Execute(image)
//	h2, err := linear.Execute(h1)
//	h3, err := relu.Execute(h2)
//	out, err := softmax.Execute(h3)
//
// Shape compatibility between consecutive operators is only checked when the
// network runs. A Network is not safe for concurrent use; separate Networks
// share no state and may run in parallel.
type Network struct {
	operators []Operator
	input     *tensor.Array
}

// NewNetwork creates an empty Network.
func NewNetwork() *Network {
	return &Network{input: tensor.Empty()}
}

// AddOperator appends an operator to the pipeline.
func (n *Network) AddOperator(op Operator) {
	n.operators = append(n.operators, op)
}

// Len returns the number of operators.
func (n *Network) Len() int {
	return len(n.operators)
}

// Operator returns the operator at the given index.
//
// Panics if index is out of bounds.
func (n *Network) Operator(index int) Operator {
	if index < 0 || index >= len(n.operators) {
		panic("Network.Operator: index out of bounds")
	}
	return n.operators[index]
}

// Kinds returns the kind of every operator, in execution order.
func (n *Network) Kinds() []string {
	kinds := make([]string, len(n.operators))
	for i, op := range n.operators {
		kinds[i] = kindOf(op)
	}
	return kinds
}

// CountParameters returns the total number of trainable parameters.
func (n *Network) CountParameters() int {
	total := 0
	for _, op := range n.operators {
		total += op.CountParameters()
	}
	return total
}

// ExecuteInference runs one forward pass.
//
// The input is copied into a buffer owned by the network, then passed through
// every operator in order. The returned array belongs to the last operator
// (or to the network when it has no operators) and is overwritten by the next
// call; use Predict to get an owned result.
//
// If an operator fails, the pass stops and an *OperatorError is returned.
func (n *Network) ExecuteInference(input *tensor.Array) (*tensor.Array, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	n.input.CopyFrom(input)

	output := n.input
	for i, op := range n.operators {
		next, err := op.Execute(output)
		if err != nil {
			return nil, &OperatorError{Index: i, Kind: kindOf(op), Err: err}
		}
		output = next
	}

	return output, nil
}

// Predict runs one forward pass and returns a copy of the result that is not
// affected by later calls.
func (n *Network) Predict(input *tensor.Array) (*tensor.Array, error) {
	output, err := n.ExecuteInference(input)
	if err != nil {
		return nil, err
	}
	return output.Clone(), nil
}

// StateDict returns a map of parameter names to arrays.
//
// Parameters are prefixed with their operator index (e.g., "1.weight",
// "1.bias", "3.weight") to avoid name collisions. Operators without
// parameters contribute nothing.
func (n *Network) StateDict() map[string]*tensor.Array {
	stateDict := make(map[string]*tensor.Array)

	for i, op := range n.operators {
		stateful, ok := op.(interface {
			StateDict() map[string]*tensor.Array
		})
		if !ok {
			continue
		}
		for name, arr := range stateful.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = arr
		}
	}

	return stateDict
}
