package tensor

import (
	"fmt"
	"math"
	"slices"
)

// Shape lists the size of each dimension of an Array, outermost first.
type Shape []int

// NumElements returns the product of the dimensions.
// The 0-D shape describes a scalar and holds one element.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Validate rejects negative dimensions and shapes whose element count does
// not fit in an int. Zero is allowed and describes an empty array.
func (s Shape) Validate() error {
	if i := slices.IndexFunc(s, func(d int) bool { return d < 0 }); i >= 0 {
		return fmt.Errorf("dimension %d is negative: %d", i, s[i])
	}
	if slices.Contains(s, 0) {
		return nil
	}
	n := 1
	for _, d := range s {
		if n > math.MaxInt/d {
			return fmt.Errorf("element count of %v overflows int", []int(s))
		}
		n *= d
	}
	return nil
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy that does not alias s.
func (s Shape) Clone() Shape {
	if s == nil {
		return Shape{}
	}
	return slices.Clone(s)
}

// Strides returns the row-major step of each dimension: the last dimension
// has stride 1 and every other one the product of the dimensions after it.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}
