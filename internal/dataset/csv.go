package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/soonum/zama-trial/internal/tensor"
)

// LoadCSV loads labeled images from a Kaggle-style CSV file: a header line,
// then one "label,pixel0,...,pixelN" record per image with 0-255 pixels.
// At most maxSamples records are read (0 = all).
func LoadCSV(path string, rows, cols, maxSamples int) (*Dataset, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", rows, cols)
	}
	if err := (tensor.Shape{rows, cols}).Validate(); err != nil {
		return nil, err
	}

	//nolint:gosec // G304: File path comes from user input
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV file is empty or missing header")
		}
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	d := &Dataset{Rows: rows, Cols: cols}
	for row := 1; maxSamples <= 0 || d.Len() < maxSamples; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		label, img, err := parseRecord(record, rows, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		d.Images = append(d.Images, img)
		d.Labels = append(d.Labels, label)
	}

	if d.Len() == 0 {
		return nil, fmt.Errorf("CSV file is empty or missing header")
	}
	return d, nil
}

func parseRecord(record []string, rows, cols int) (int, *tensor.Array, error) {
	if want := rows*cols + 1; len(record) != want {
		return 0, nil, fmt.Errorf("invalid record length: got %d, want %d", len(record), want)
	}

	label, err := strconv.Atoi(record[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid label: %w", err)
	}

	pixels := make([]byte, rows*cols)
	for j, field := range record[1:] {
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return 0, nil, fmt.Errorf("pixel out of range [0, 255] at column %d: %s", j+1, field)
			}
			return 0, nil, fmt.Errorf("invalid pixel at column %d: %w", j+1, err)
		}
		pixels[j] = byte(v)
	}

	img, err := normalize(pixels, rows, cols)
	return label, img, err
}
