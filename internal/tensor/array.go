// Package tensor implements the dense N-dimensional array used by the inference engine.
//
// An Array is a flat, row-major buffer of float64 values paired with a Shape.
// The product of the shape's dimensions always equals the buffer length.
package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Array is a dense N-dimensional tensor of float64 values.
//
// Arrays are mutable: CopyFrom and Reshape change them in place so that
// operators can reuse one output buffer across calls.
//
// Example:
//
//	a, err := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil {
//	    return err
//	}
//	_ = a.At(1, 2) // 6
type Array struct {
	data  []float64
	shape Shape
}

// New creates an Array from data and shape.
// The data slice is copied into the array's own buffer.
//
// Returns a *ShapeError (wrapping ErrShapeMismatch) if the shape has a
// negative dimension or does not describe exactly len(data) elements.
func New(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, &ShapeError{Op: "new", Shape: shape.Clone(), Elements: len(data), Details: err.Error()}
	}
	if shape.NumElements() != len(data) {
		return nil, &ShapeError{Op: "new", Shape: shape.Clone(), Elements: len(data)}
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Array{data: buf, shape: shape.Clone()}, nil
}

// Empty returns an Array with no elements and shape [0].
func Empty() *Array {
	return &Array{data: []float64{}, shape: Shape{0}}
}

// Zeros creates a zero-filled Array with the given shape.
func Zeros(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, &ShapeError{Op: "zeros", Shape: shape.Clone(), Details: err.Error()}
	}
	return &Array{data: make([]float64, shape.NumElements()), shape: shape.Clone()}, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// NumDims returns the number of dimensions.
func (a *Array) NumDims() int {
	return len(a.shape)
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Data returns the underlying buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array) Data() []float64 {
	return a.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}

	offset := 0
	strides := a.shape.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		offset += idx * strides[i]
	}

	return a.data[offset]
}

// CopyFrom overwrites the array with the contents and shape of other.
//
// The existing buffer is reused when both arrays have the same length;
// otherwise it is replaced by a fresh copy of other's data.
func (a *Array) CopyFrom(other *Array) {
	if len(a.data) == len(other.data) {
		copy(a.data, other.data)
	} else {
		a.data = make([]float64, len(other.data))
		copy(a.data, other.data)
	}
	a.shape = append(a.shape[:0], other.shape...)
}

// Reshape changes the shape descriptor without moving data.
//
// Returns a *ShapeError if the new shape does not hold exactly Len() elements.
func (a *Array) Reshape(shape Shape) error {
	if a.shape.Equal(shape) {
		return nil
	}
	if err := shape.Validate(); err != nil {
		return &ShapeError{Op: "reshape", Shape: shape.Clone(), Elements: len(a.data), Details: err.Error()}
	}
	if shape.NumElements() != len(a.data) {
		return &ShapeError{Op: "reshape", Shape: shape.Clone(), Elements: len(a.data)}
	}
	a.shape = append(a.shape[:0], shape...)
	return nil
}

// Clone returns a deep copy that shares no memory with a.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{data: data, shape: a.shape.Clone()}
}

// ArgMax returns the index and value of the largest element.
// The first index wins on ties. An empty array yields (-1, NaN).
func (a *Array) ArgMax() (int, float64) {
	if len(a.data) == 0 {
		return -1, math.NaN()
	}
	idx := floats.MaxIdx(a.data)
	return idx, a.data[idx]
}

// String returns a human-readable representation.
func (a *Array) String() string {
	return fmt.Sprintf("Array(shape=%v, data=%v)", []int(a.shape), a.data)
}
