package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	a, err := New(data, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 6, a.Len())
	assert.Equal(t, 2, a.NumDims())
	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, data, a.Data())

	// The input slice is copied.
	data[0] = 100
	assert.Equal(t, 1.0, a.Data()[0])
}

func TestNew_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		shape Shape
	}{
		{"too few elements", []float64{1, 2, 3}, Shape{2, 2}},
		{"too many elements", []float64{1, 2, 3, 4, 5}, Shape{2, 2}},
		{"negative dimension", []float64{1, 2}, Shape{-1, -2}},
		{"zero dimension with data", []float64{1}, Shape{0}},
		{"element count overflows to zero", []float64{}, Shape{1 << 32, 1 << 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.data, tt.shape)
			require.Error(t, err)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrShapeMismatch)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, "new", shapeErr.Op)
			assert.Equal(t, len(tt.data), shapeErr.Elements)
		})
	}
}

func TestEmpty(t *testing.T) {
	a := Empty()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, a.NumDims())
	assert.Equal(t, Shape{0}, a.Shape())
}

func TestZeros(t *testing.T) {
	a, err := Zeros(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, 6, a.Len())
	for _, v := range a.Data() {
		assert.Zero(t, v)
	}

	_, err = Zeros(Shape{3, -2})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Zeros(Shape{1 << 62, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestScalar(t *testing.T) {
	a, err := New([]float64{42}, Shape{})
	require.NoError(t, err)
	assert.Equal(t, 0, a.NumDims())
	assert.Equal(t, 42.0, a.At())
}

func TestAt(t *testing.T) {
	a, err := New([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 3.0, a.At(0, 2))
	assert.Equal(t, 4.0, a.At(1, 0))
	assert.Equal(t, 6.0, a.At(1, 2))

	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0) })
}

func TestCopyFrom_SameLengthReusesBuffer(t *testing.T) {
	dst, err := New([]float64{0, 0, 0, 0}, Shape{4})
	require.NoError(t, err)
	src, err := New([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	before := &dst.Data()[0]
	dst.CopyFrom(src)

	assert.Same(t, before, &dst.Data()[0], "buffer should be reused when lengths match")
	assert.Equal(t, []float64{1, 2, 3, 4}, dst.Data())
	assert.Equal(t, Shape{2, 2}, dst.Shape())

	// No aliasing with the source.
	src.Data()[0] = 9
	assert.Equal(t, 1.0, dst.Data()[0])
}

func TestCopyFrom_DifferentLengthReplacesBuffer(t *testing.T) {
	dst := Empty()
	src, err := New([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	dst.CopyFrom(src)
	assert.Equal(t, []float64{1, 2, 3}, dst.Data())
	assert.Equal(t, Shape{3}, dst.Shape())

	src.Data()[0] = 9
	assert.Equal(t, 1.0, dst.Data()[0])
}

func TestReshape(t *testing.T) {
	a, err := New([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	before := &a.Data()[0]
	require.NoError(t, a.Reshape(Shape{3, 2}))
	assert.Equal(t, Shape{3, 2}, a.Shape())
	assert.Same(t, before, &a.Data()[0], "reshape must not move data")
	assert.Equal(t, 4.0, a.At(1, 1))

	require.NoError(t, a.Reshape(Shape{6}))
	assert.Equal(t, 1, a.NumDims())

	require.NoError(t, a.Reshape(Shape{6}), "reshape to the current shape")
	assert.Same(t, before, &a.Data()[0])

	err = a.Reshape(Shape{4})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, Shape{6}, a.Shape(), "failed reshape leaves the shape untouched")

	err = a.Reshape(Shape{3, 1 << 62, 4})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, Shape{6}, a.Shape())
}

func TestShapeIsCopied(t *testing.T) {
	shape := Shape{2, 2}
	a, err := New([]float64{1, 2, 3, 4}, shape)
	require.NoError(t, err)

	shape[0] = 4
	assert.Equal(t, Shape{2, 2}, a.Shape())

	got := a.Shape()
	got[0] = 1
	assert.Equal(t, Shape{2, 2}, a.Shape())
}

func TestClone(t *testing.T) {
	a, err := New([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	c := a.Clone()
	c.Data()[0] = 10
	assert.Equal(t, 1.0, a.Data()[0])
	assert.Equal(t, a.Shape(), c.Shape())
}

func TestArgMax(t *testing.T) {
	a, err := New([]float64{0.1, 0.7, 0.05, 0.7, 0.15}, Shape{5})
	require.NoError(t, err)

	idx, val := a.ArgMax()
	assert.Equal(t, 1, idx, "first index wins on ties")
	assert.Equal(t, 0.7, val)

	idx, val = Empty().ArgMax()
	assert.Equal(t, -1, idx)
	assert.True(t, math.IsNaN(val))
}

func TestShapeError_Message(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
	assert.Contains(t, err.Error(), "[2 2]")

	_, err = New(nil, Shape{1 << 62, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid shape [4611686018427387904 2]")
	assert.Contains(t, err.Error(), "overflows int")
}
