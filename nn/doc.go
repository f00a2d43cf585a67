// Copyright 2026 The Trial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the operators and the Network that run inference.
//
// # Overview
//
// This package contains:
//   - Operators: Flatten, ReLU, LinearCombination, SoftMax
//   - Network: an ordered pipeline of Operators
//   - Registry: operator kinds to factories, used to rebuild saved models
//   - Initialization: Xavier
//
// # Basic Usage
//
//	import (
//	    "github.com/soonum/zama-trial/nn"
//	    "github.com/soonum/zama-trial/tensor"
//	)
//
//	func main() {
//	    hidden, _ := nn.NewLinearCombination(weights, bias) // weights [in, out]
//
//	    net := nn.NewNetwork()
//	    net.AddOperator(nn.NewFlatten())
//	    net.AddOperator(hidden)
//	    net.AddOperator(nn.NewSoftMax())
//
//	    probs, err := net.Predict(image)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    class, score := probs.ArgMax()
//	}
//
// # Buffers
//
// Every operator owns one output Array and reuses it between calls.
// ExecuteInference returns a view of the last operator's buffer that stays
// valid until the next call; Predict returns a copy. A Network is not safe
// for concurrent use, so run one Network per goroutine.
//
// # Custom Operators
//
// Any type implementing Operator can be added to a Network. Registering a
// Factory under a kind name lets the loader rebuild it from a model file.
package nn
