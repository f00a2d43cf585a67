// Package dataset loads image datasets as Arrays for inference.
//
// Supported sources:
//   - IDX binary files (the official MNIST distribution format)
//   - Kaggle-style CSV files (label,pixel0,pixel1,...)
//   - Synthetic patterns, for running the pipeline without any file
//
// Pixels are normalized from 0-255 to [0, 1] and every image is an Array of
// shape [rows, cols].
package dataset

import (
	"fmt"

	"github.com/soonum/zama-trial/internal/tensor"
)

// Dataset holds images and, when known, their labels.
type Dataset struct {
	Images []*tensor.Array // Each of shape [rows, cols]
	Labels []int           // Same length as Images, or nil when unlabeled
	Rows   int
	Cols   int
}

// Len returns the number of images.
func (d *Dataset) Len() int {
	return len(d.Images)
}

// Labeled reports whether every image has a label.
func (d *Dataset) Labeled() bool {
	return d.Labels != nil && len(d.Labels) == len(d.Images)
}

// Head returns a dataset holding at most the first n samples.
// A non-positive n returns d unchanged.
func (d *Dataset) Head(n int) *Dataset {
	if n <= 0 || n >= len(d.Images) {
		return d
	}
	head := &Dataset{Images: d.Images[:n], Rows: d.Rows, Cols: d.Cols}
	if d.Labels != nil {
		head.Labels = d.Labels[:n]
	}
	return head
}

// normalize converts 0-255 pixels to an Array with values in [0, 1].
func normalize(pixels []byte, rows, cols int) (*tensor.Array, error) {
	values := make([]float64, len(pixels))
	for i, p := range pixels {
		values[i] = float64(p) / 255.0
	}
	return tensor.New(values, tensor.Shape{rows, cols})
}

// Synthetic creates n labeled images with simple patterns.
//
// Image i has label i%10 and a bright horizontal band whose position depends
// on the label. This is NOT realistic MNIST data, just for exercising the
// pipeline. Image dimensions must be positive.
func Synthetic(n, rows, cols int) (*Dataset, error) {
	if n < 0 {
		return nil, fmt.Errorf("synthetic: negative image count %d", n)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("synthetic: image size must be positive, got %dx%d", rows, cols)
	}
	if err := (tensor.Shape{rows, cols}).Validate(); err != nil {
		return nil, fmt.Errorf("synthetic: %w", err)
	}

	d := &Dataset{
		Images: make([]*tensor.Array, n),
		Labels: make([]int, n),
		Rows:   rows,
		Cols:   cols,
	}

	for i := 0; i < n; i++ {
		label := i % 10
		pixels := make([]byte, rows*cols)

		startRow := label * rows / 14
		for row := startRow; row < startRow+rows/4 && row < rows; row++ {
			for col := cols / 5; col < cols-cols/5; col++ {
				pixels[row*cols+col] = 204
			}
		}

		img, err := normalize(pixels, rows, cols)
		if err != nil {
			return nil, fmt.Errorf("synthetic image %d: %w", i, err)
		}
		d.Images[i] = img
		d.Labels[i] = label
	}

	return d, nil
}
