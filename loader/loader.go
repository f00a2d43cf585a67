// Copyright 2026 The Trial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader saves and loads Networks as SafeTensors files.
//
// The topology is stored in the "layers" metadata entry as a comma-separated
// list of operator kinds; parameters are stored as "<index>.<name>" tensors.
//
// Example usage:
//
//	import (
//	    "github.com/soonum/zama-trial/loader"
//	    "github.com/soonum/zama-trial/nn"
//	)
//
//	net, err := loader.LoadNetwork("model.safetensors", nn.NewRegistry())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Parameters: %d\n", net.CountParameters())
package loader

import (
	"github.com/soonum/zama-trial/internal/loader"
	"github.com/soonum/zama-trial/internal/nn"
	"github.com/soonum/zama-trial/internal/tensor"
)

// LayersKey is the metadata entry holding the operator kinds.
const LayersKey = loader.LayersKey

// ModelIDKey is the metadata entry holding the model's UUID.
const ModelIDKey = loader.ModelIDKey

// ErrNoTopology is returned when a file has no LayersKey metadata.
var ErrNoTopology = loader.ErrNoTopology

// Reader gives random access to the tensors of a SafeTensors file.
type Reader = loader.Reader

// TensorInfo is one tensor entry of a SafeTensors header.
type TensorInfo = loader.TensorInfo

// Open opens a SafeTensors file. The caller must Close the Reader.
func Open(path string) (*Reader, error) {
	return loader.Open(path)
}

// WriteFile writes Arrays as F64 tensors with optional metadata.
func WriteFile(path string, arrays map[string]*tensor.Array, metadata map[string]string) error {
	return loader.WriteFile(path, arrays, metadata)
}

// SaveNetwork writes the topology and parameters of net to path.
func SaveNetwork(path string, net *nn.Network, metadata map[string]string) error {
	return loader.SaveNetwork(path, net, metadata)
}

// LoadNetwork rebuilds a Network saved with SaveNetwork.
func LoadNetwork(path string, registry *nn.Registry) (*nn.Network, error) {
	return loader.LoadNetwork(path, registry)
}

// LoadModel is LoadNetwork that also returns the model's metadata.
func LoadModel(path string, registry *nn.Registry) (*nn.Network, map[string]string, error) {
	return loader.LoadModel(path, registry)
}
