package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soonum/zama-trial/internal/tensor"
)

// IDX magic numbers.
const (
	idxImagesMagic = 2051 // 0x00000803
	idxLabelsMagic = 2049 // 0x00000801
)

const (
	// maxIDXImageSize bounds rows*cols of a single image.
	maxIDXImageSize = 1 << 24
	idxPrealloc     = 1 << 12
)

// ErrInvalidMagic is returned when an IDX file has an unexpected magic number.
var ErrInvalidMagic = errors.New("invalid magic number")

// ReadIDXImages reads images in IDX format.
//
// IDX format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
//
// Returns at most maxImages images (0 = all) and the image dimensions.
func ReadIDXImages(r io.Reader, maxImages int) (images [][]byte, rows, cols int, err error) {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != idxImagesMagic {
		return nil, 0, 0, fmt.Errorf("%w: got %d, want %d", ErrInvalidMagic, magic, idxImagesMagic)
	}

	var numImages, numRows, numCols uint32
	if err := binary.Read(r, binary.BigEndian, &numImages); err != nil {
		return nil, 0, 0, err
	}
	if err := binary.Read(r, binary.BigEndian, &numRows); err != nil {
		return nil, 0, 0, err
	}
	if err := binary.Read(r, binary.BigEndian, &numCols); err != nil {
		return nil, 0, 0, err
	}

	count := int(numImages)
	if maxImages > 0 && count > maxImages {
		count = maxImages
	}

	imageSize := uint64(numRows) * uint64(numCols)
	if imageSize > maxIDXImageSize {
		return nil, 0, 0, fmt.Errorf("image size %dx%d exceeds %d pixels", numRows, numCols, maxIDXImageSize)
	}

	// The header count is untrusted: grow as images arrive.
	images = make([][]byte, 0, min(count, idxPrealloc))
	for i := 0; i < count; i++ {
		img := make([]byte, imageSize)
		if _, err := io.ReadFull(r, img); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read image %d: %w", i, err)
		}
		images = append(images, img)
	}

	return images, int(numRows), int(numCols), nil
}

// ReadIDXLabels reads labels in IDX format.
//
// IDX format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
//
// Returns at most maxLabels labels (0 = all).
func ReadIDXLabels(r io.Reader, maxLabels int) ([]byte, error) {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != idxLabelsMagic {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidMagic, magic, idxLabelsMagic)
	}

	var numLabels uint32
	if err := binary.Read(r, binary.BigEndian, &numLabels); err != nil {
		return nil, err
	}

	count := int64(numLabels)
	if maxLabels > 0 && count > int64(maxLabels) {
		count = int64(maxLabels)
	}

	labels, err := io.ReadAll(io.LimitReader(r, count))
	if err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	if int64(len(labels)) != count {
		return nil, fmt.Errorf("failed to read labels: got %d of %d: %w", len(labels), count, io.ErrUnexpectedEOF)
	}

	return labels, nil
}

// LoadIDX loads an IDX image file and, if labelPath is not empty, its labels.
//
// Parameters:
//   - imagePath: Path to an images file (e.g., t10k-images-idx3-ubyte)
//   - labelPath: Path to the matching labels file, or "" for unlabeled data
//   - maxSamples: Maximum number of samples to load (0 = load all)
func LoadIDX(imagePath, labelPath string, maxSamples int) (*Dataset, error) {
	//nolint:gosec // G304: File path comes from user input
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	raw, rows, cols, err := ReadIDXImages(file, maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}

	d := &Dataset{Images: make([]*tensor.Array, len(raw)), Rows: rows, Cols: cols}
	for i, pixels := range raw {
		if d.Images[i], err = normalize(pixels, rows, cols); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
	}

	if labelPath == "" {
		return d, nil
	}

	//nolint:gosec // G304: File path comes from user input
	labelFile, err := os.Open(labelPath)
	if err != nil {
		return nil, err
	}
	defer labelFile.Close()

	labels, err := ReadIDXLabels(labelFile, maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	if len(labels) != len(d.Images) {
		return nil, fmt.Errorf("image count (%d) != label count (%d)", len(d.Images), len(labels))
	}

	d.Labels = make([]int, len(labels))
	for i, l := range labels {
		d.Labels[i] = int(l)
	}

	return d, nil
}
