// Copyright 2026 The Trial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/soonum/zama-trial/internal/tensor"
)

// Array is a dense N-dimensional array of float64 values.
type Array = tensor.Array

// Shape represents the dimensions of an Array.
type Shape = tensor.Shape

// ShapeError reports an element count that does not match a shape.
type ShapeError = tensor.ShapeError

// ErrShapeMismatch is matched by every shape-related error.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// New creates an Array holding a copy of data with the given shape.
func New(data []float64, shape Shape) (*Array, error) {
	return tensor.New(data, shape)
}

// Empty creates an Array with shape [0] and no data.
func Empty() *Array {
	return tensor.Empty()
}

// Zeros creates a zero-filled Array with the given shape.
func Zeros(shape Shape) (*Array, error) {
	return tensor.Zeros(shape)
}
