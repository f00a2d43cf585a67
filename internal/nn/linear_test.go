package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soonum/zama-trial/internal/tensor"
)

// 4 rows (inputs) x 2 columns (outputs), row-major.
var testWeights = []float64{
	1, 5,
	2, 6,
	3, 7,
	4, 8,
}

func TestLinearCombination_Execute(t *testing.T) {
	layer, err := NewLinearCombination(testWeights, []float64{2, 2})
	require.NoError(t, err)

	out, err := layer.Execute(mustArray(t, []float64{1, 2, 3, 4}, tensor.Shape{4}))
	require.NoError(t, err)

	// 1*1 + 2*2 + 3*3 + 4*4 + 2 = 32
	// 1*5 + 2*6 + 3*7 + 4*8 + 2 = 72
	assert.Equal(t, []float64{32, 72}, out.Data())
	assert.Equal(t, tensor.Shape{2}, out.Shape())
}

func TestLinearCombination_AcceptsAnyInputShape(t *testing.T) {
	layer, err := NewLinearCombination(testWeights, []float64{2, 2})
	require.NoError(t, err)

	out, err := layer.Execute(mustArray(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2}))
	require.NoError(t, err)
	assert.Equal(t, []float64{32, 72}, out.Data())
}

func TestLinearCombination_ResetsAccumulator(t *testing.T) {
	layer, err := NewLinearCombination(testWeights, []float64{2, 2})
	require.NoError(t, err)

	input := mustArray(t, []float64{1, 2, 3, 4}, tensor.Shape{4})
	for i := 0; i < 3; i++ {
		out, err := layer.Execute(input)
		require.NoError(t, err)
		assert.Equal(t, []float64{32, 72}, out.Data(), "call %d", i)
	}

	out, err := layer.Execute(mustArray(t, []float64{0, 0, 0, 0}, tensor.Shape{4}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, out.Data())
}

func TestLinearCombination_MatchesNaiveProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const in, out = 7, 5

	weights := make([]float64, in*out)
	for i := range weights {
		weights[i] = rng.NormFloat64()
	}
	bias := make([]float64, out)
	for i := range bias {
		bias[i] = rng.NormFloat64()
	}
	x := make([]float64, in)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	layer, err := NewLinearCombination(weights, bias)
	require.NoError(t, err)
	assert.Equal(t, in, layer.InFeatures())
	assert.Equal(t, out, layer.OutFeatures())

	got, err := layer.Execute(mustArray(t, x, tensor.Shape{in}))
	require.NoError(t, err)

	for j := 0; j < out; j++ {
		want := bias[j]
		for i := 0; i < in; i++ {
			want += x[i] * weights[i*out+j]
		}
		assert.InDelta(t, want, got.Data()[j], 1e-12, "output %d", j)
	}
}

func TestNewLinearCombination_DimensionMismatch(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		bias    []float64
	}{
		{"bias does not divide weights", []float64{1, 2, 3, 4, 5}, []float64{1, 2}},
		{"empty bias", []float64{1, 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer, err := NewLinearCombination(tt.weights, tt.bias)
			require.Error(t, err)
			assert.Nil(t, layer)
			assert.ErrorIs(t, err, ErrDimensionMismatch)
			assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
		})
	}
}

func TestLinearCombination_InputDimensionMismatch(t *testing.T) {
	layer, err := NewLinearCombination(testWeights, []float64{2, 2})
	require.NoError(t, err)

	_, err = layer.Execute(mustArray(t, []float64{1, 2, 3}, tensor.Shape{3}))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	// A failed call does not break later ones.
	out, err := layer.Execute(mustArray(t, []float64{1, 2, 3, 4}, tensor.Shape{4}))
	require.NoError(t, err)
	assert.Equal(t, []float64{32, 72}, out.Data())
}

func TestLinearCombination_CountParameters(t *testing.T) {
	layer, err := NewLinearCombination(testWeights, []float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 10, layer.CountParameters())
}

func TestLinearCombination_CopiesParameters(t *testing.T) {
	weights := append([]float64(nil), testWeights...)
	bias := []float64{2, 2}

	layer, err := NewLinearCombination(weights, bias)
	require.NoError(t, err)

	weights[0] = 100
	bias[0] = 100

	out, err := layer.Execute(mustArray(t, []float64{1, 2, 3, 4}, tensor.Shape{4}))
	require.NoError(t, err)
	assert.Equal(t, []float64{32, 72}, out.Data())
}

func TestLinearCombination_StateDict(t *testing.T) {
	layer, err := NewLinearCombination(testWeights, []float64{2, 2})
	require.NoError(t, err)

	state := layer.StateDict()
	require.Len(t, state, 2)
	assert.Equal(t, tensor.Shape{4, 2}, state["weight"].Shape())
	assert.Equal(t, tensor.Shape{2}, state["bias"].Shape())
	assert.Equal(t, testWeights, state["weight"].Data())
}

func TestNewXavierLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer, err := NewXavierLinear(784, 128, rng)
	require.NoError(t, err)

	assert.Equal(t, 784, layer.InFeatures())
	assert.Equal(t, 128, layer.OutFeatures())
	assert.Equal(t, 784*128+128, layer.CountParameters())

	bound := math.Sqrt(6.0 / (784 + 128))
	for _, w := range layer.Weights().Data() {
		assert.LessOrEqual(t, w, bound+1e-4)
		assert.GreaterOrEqual(t, w, -bound-1e-4)
	}
	for _, b := range layer.Bias().Data() {
		assert.Zero(t, b)
	}
}
