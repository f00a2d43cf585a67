// Copyright 2026 The Trial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/soonum/zama-trial/internal/nn"
)

// Operator is a single layer transform of a Network.
type Operator = nn.Operator

// Network runs its Operators in order.
type Network = nn.Network

// NewNetwork creates an empty Network.
func NewNetwork() *Network {
	return nn.NewNetwork()
}

// Operators

// Flatten reshapes its input to one dimension.
type Flatten = nn.Flatten

// NewFlatten creates a Flatten operator.
func NewFlatten() *Flatten {
	return nn.NewFlatten()
}

// ReLU applies max(x, 0) elementwise.
type ReLU = nn.ReLU

// NewReLU creates a ReLU operator.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// SoftMax normalizes its input into a probability distribution.
type SoftMax = nn.SoftMax

// NewSoftMax creates a SoftMax operator.
func NewSoftMax() *SoftMax {
	return nn.NewSoftMax()
}

// LinearCombination computes x·W + b.
type LinearCombination = nn.LinearCombination

// NewLinearCombination creates a LinearCombination from row-major weights
// of shape [in, out] and a bias of length out.
func NewLinearCombination(weights, bias []float64) (*LinearCombination, error) {
	return nn.NewLinearCombination(weights, bias)
}

// NewXavierLinear creates a LinearCombination with Xavier uniform weights
// and zero bias.
func NewXavierLinear(inFeatures, outFeatures int, rng *rand.Rand) (*LinearCombination, error) {
	return nn.NewXavierLinear(inFeatures, outFeatures, rng)
}

// Registry

// Factory builds an Operator from named parameters.
type Factory = nn.Factory

// Registry maps operator kinds to factories.
type Registry = nn.Registry

// NewRegistry creates a Registry with the built-in operators.
func NewRegistry() *Registry {
	return nn.NewRegistry()
}

// Built-in operator kinds.
const (
	KindFlatten = nn.KindFlatten
	KindReLU    = nn.KindReLU
	KindLinear  = nn.KindLinear
	KindSoftMax = nn.KindSoftMax
)

// Errors

// OperatorError reports which operator of a Network failed.
type OperatorError = nn.OperatorError

// Sentinel errors.
var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrNilInput          = nn.ErrNilInput
	ErrUnknownOperator   = nn.ErrUnknownOperator
	ErrMissingParameter  = nn.ErrMissingParameter
)
