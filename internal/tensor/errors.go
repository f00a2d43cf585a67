package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when a shape does not describe the data it is paired with.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError provides detailed information about a shape violation.
//
// It unwraps to ErrShapeMismatch.
type ShapeError struct {
	Op       string // Operation that failed (e.g., "new", "reshape")
	Shape    Shape  // Shape that was requested
	Elements int    // Number of elements actually available
	Details  string // Optional extra context
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var msg string
	if e.Shape.Validate() != nil {
		msg = fmt.Sprintf("%s: %v: invalid shape %v, got %d elements",
			e.Op, ErrShapeMismatch, e.Shape, e.Elements)
	} else {
		msg = fmt.Sprintf("%s: %v: shape %v requires %d elements, got %d",
			e.Op, ErrShapeMismatch, e.Shape, e.Shape.NumElements(), e.Elements)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// Unwrap returns ErrShapeMismatch so callers can use errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
