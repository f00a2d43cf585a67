// Package render draws 2-D Arrays as ASCII art.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Ramp orders characters from darkest (0.0) to brightest (1.0).
const Ramp = " .:-=+*#%@"

// Char maps an intensity in [0, 1] to a Ramp character.
// Values below 0 (and NaN) render as blank, values at or above 0.9 as the
// brightest.
func Char(v float64) byte {
	last := len(Ramp) - 1
	switch {
	case !(v > 0):
		return Ramp[0]
	case v >= float64(last)/float64(len(Ramp)):
		return Ramp[last]
	}
	return Ramp[int(v*float64(len(Ramp)))]
}

// ASCII writes a one-line-per-row rendering of a 2-D Array to w.
func ASCII(w io.Writer, a *tensor.Array) error {
	if a.NumDims() != 2 {
		return &tensor.ShapeError{
			Op:       "render",
			Shape:    a.Shape(),
			Elements: a.Len(),
			Details:  "expected 2 dimensions",
		}
	}

	shape := a.Shape()
	rows, cols := shape[0], shape[1]
	data := a.Data()

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for r := 0; r < rows; r++ {
		for _, v := range data[r*cols : (r+1)*cols] {
			sb.WriteByte(Char(v))
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
