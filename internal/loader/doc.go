// Package loader reads and writes model weights for the inference engine.
//
// Models are stored in the SafeTensors format (Hugging Face standard):
//
//	[8 bytes: header_size (uint64 LE)]
//	[header_size bytes: JSON header]
//	[tensor data: raw little-endian bytes]
//
// A saved Network records its topology in the "layers" metadata entry as a
// comma-separated list of operator kinds, and its parameters under
// "<operator index>.<name>" keys (e.g., "1.weight", "1.bias").
//
// Example:
//
//	net, err := loader.LoadNetwork("model.safetensors", nn.NewRegistry())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	probs, err := net.ExecuteInference(image)
package loader
