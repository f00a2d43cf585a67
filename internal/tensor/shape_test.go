package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 0, Shape{0}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 784, Shape{28, 28}.NumElements())
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.NoError(t, Shape{0}.Validate())
	assert.Error(t, Shape{2, -1}.Validate())
	assert.NoError(t, Shape{math.MaxInt}.Validate())
	assert.NoError(t, Shape{1 << 62, 0, 1 << 62}.Validate())

	assert.ErrorContains(t, Shape{1 << 32, 1 << 32}.Validate(), "overflows")
	assert.ErrorContains(t, Shape{1 << 62, 2}.Validate(), "overflows")
	assert.ErrorContains(t, Shape{math.MaxInt, 2}.Validate(), "overflows")
}

func TestShape_Equal(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{6}.Equal(Shape{6, 1}))
}

func TestShape_Strides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.Strides())
	assert.Equal(t, []int{1}, Shape{5}.Strides())
	assert.Empty(t, Shape{}.Strides())
}
