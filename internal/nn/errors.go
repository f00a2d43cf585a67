package nn

import (
	"errors"
	"fmt"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Common errors.
var (
	// ErrDimensionMismatch is a tensor.ErrShapeMismatch raised when weights,
	// bias and input lengths of a LinearCombination are not commensurate.
	ErrDimensionMismatch = fmt.Errorf("dimension mismatch: %w", tensor.ErrShapeMismatch)

	ErrNilInput         = errors.New("nil input array")
	ErrUnknownOperator  = errors.New("unknown operator kind")
	ErrMissingParameter = errors.New("missing parameter")
)

// OperatorError reports which operator of a Network failed during inference.
type OperatorError struct {
	Index int    // Position of the operator in the network
	Kind  string // Operator kind (e.g., "linear")
	Err   error  // Underlying failure
}

// Error implements the error interface.
func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap returns the underlying failure.
func (e *OperatorError) Unwrap() error {
	return e.Err
}
