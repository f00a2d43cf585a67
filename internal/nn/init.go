package nn

import (
	"math"
	"math/rand"
)

// NewXavierLinear creates a LinearCombination with Xavier (Glorot) weights.
//
// Weights are drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// Biases are initialized to zeros. This is only meant to produce demo
// models; the engine itself does not train.
func NewXavierLinear(inFeatures, outFeatures int, rng *rand.Rand) (*LinearCombination, error) {
	bound := math.Sqrt(6.0 / float64(inFeatures+outFeatures))

	weights := make([]float64, inFeatures*outFeatures)
	for i := range weights {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		weights[i] = (rng.Float64()*2.0 - 1.0) * bound
	}

	return NewLinearCombination(weights, make([]float64, outFeatures))
}
