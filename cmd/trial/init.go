package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/soonum/zama-trial/internal/loader"
	"github.com/soonum/zama-trial/internal/nn"
)

func runInit(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(w)
	out := fs.String("out", "model.safetensors", "Output model file")
	in := fs.Int("in", 28*28, "Number of input features")
	hidden := fs.String("hidden", "128,64", "Comma-separated hidden layer sizes")
	classes := fs.Int("classes", 10, "Number of output classes")
	seed := fs.Int64("seed", 1, "Random seed for weight initialization")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseSizes(*hidden)
	if err != nil {
		return fmt.Errorf("-hidden: %w", err)
	}

	//nolint:gosec // G404: weight initialization does not need crypto/rand
	net, err := buildClassifier(*in, sizes, *classes, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}

	id := uuid.NewString()
	meta := map[string]string{
		"created_by":      "trial " + version,
		"seed":            strconv.FormatInt(*seed, 10),
		loader.ModelIDKey: id,
	}
	if err := loader.SaveNetwork(*out, net, meta); err != nil {
		return err
	}

	fmt.Fprintf(w, "Topology: %s\n", strings.Join(net.Kinds(), " -> "))
	fmt.Fprintf(w, "Wrote model %s with %d parameters to %s\n", id, net.CountParameters(), *out)
	return nil
}

// parseSizes parses "128,64" into layer sizes. An empty string means no
// hidden layers.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("layer size must be positive, got %d", n)
		}
		sizes[i] = n
	}
	return sizes, nil
}

// buildClassifier creates Flatten -> (Linear -> ReLU)* -> Linear -> SoftMax.
func buildClassifier(in int, hidden []int, classes int, rng *rand.Rand) (*nn.Network, error) {
	if in <= 0 || classes <= 0 {
		return nil, fmt.Errorf("input features and classes must be positive, got %d and %d", in, classes)
	}

	net := nn.NewNetwork()
	net.AddOperator(nn.NewFlatten())

	prev := in
	for _, size := range hidden {
		layer, err := nn.NewXavierLinear(prev, size, rng)
		if err != nil {
			return nil, err
		}
		net.AddOperator(layer)
		net.AddOperator(nn.NewReLU())
		prev = size
	}

	head, err := nn.NewXavierLinear(prev, classes, rng)
	if err != nil {
		return nil, err
	}
	net.AddOperator(head)
	net.AddOperator(nn.NewSoftMax())

	return net, nil
}
