// Copyright 2026 The Trial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense N-dimensional Array used by the
// inference engine.
//
// # Overview
//
// An Array is a flat, row-major []float64 buffer plus a Shape. The number
// of elements always equals the product of the shape's dimensions:
//   - The empty Array has shape [0] and no data
//   - A 0-D shape [] is a scalar holding one element
//
// # Basic Usage
//
//	import "github.com/soonum/zama-trial/tensor"
//
//	func main() {
//	    a, err := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(a.At(1, 2)) // 6
//	    _ = a.Reshape(tensor.Shape{6})
//	}
//
// # Buffer Reuse
//
// CopyFrom overwrites an Array in place and keeps its buffer when the
// element counts match, so operators can run repeatedly without allocating.
//
// # Errors
//
// Shape violations are reported as *ShapeError values that match
// ErrShapeMismatch with errors.Is.
package tensor
