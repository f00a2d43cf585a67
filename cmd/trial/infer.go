package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/soonum/zama-trial/internal/dataset"
	"github.com/soonum/zama-trial/internal/loader"
	"github.com/soonum/zama-trial/internal/nn"
	"github.com/soonum/zama-trial/internal/parallel"
	"github.com/soonum/zama-trial/internal/render"
)

var separator = strings.Repeat("-", 50)

type prediction struct {
	class int
	score float64
}

type inferOptions struct {
	model     string
	images    string
	labels    string
	csv       string
	synthetic int
	rows      int
	cols      int
	max       int
	show      int
	ascii     bool
	workers   int
}

func runInfer(args []string, w io.Writer) error {
	var opts inferOptions

	fs := flag.NewFlagSet("infer", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&opts.model, "model", "", "Model file (SafeTensors)")
	fs.StringVar(&opts.images, "images", "", "IDX images file")
	fs.StringVar(&opts.labels, "labels", "", "IDX labels file (optional)")
	fs.StringVar(&opts.csv, "csv", "", "CSV file in label,pixel... layout")
	fs.IntVar(&opts.synthetic, "synthetic", 0, "Use N synthetic images instead of a data file")
	fs.IntVar(&opts.rows, "rows", 28, "Image rows (CSV and synthetic data)")
	fs.IntVar(&opts.cols, "cols", 28, "Image columns (CSV and synthetic data)")
	fs.IntVar(&opts.max, "max", 0, "Max samples to evaluate (0 = all)")
	fs.IntVar(&opts.show, "n", 3, "Number of images to print")
	fs.BoolVar(&opts.ascii, "ascii", true, "Print images as ASCII art")
	fs.IntVar(&opts.workers, "workers", defaultWorkers(), "Number of inference workers")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.model == "" {
		return errors.New("-model is required")
	}

	data, err := loadDataset(opts)
	if err != nil {
		return err
	}

	registry := nn.NewRegistry()
	net, meta, err := loader.LoadModel(opts.model, registry)
	if err != nil {
		return err
	}

	if raw, ok := meta[loader.ModelIDKey]; ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: model id: %w", opts.model, err)
		}
		fmt.Fprintf(w, "Model %s\n", id)
	}
	fmt.Fprintf(w, "Dataset contains %d items\n", data.Len())
	fmt.Fprintf(w, "Inference engine has %d parameters\n", net.CountParameters())
	kinds := net.Kinds()
	for i := 0; i < net.Len(); i++ {
		fmt.Fprintf(w, "  %d: %-8s %d parameters\n", i, kinds[i], net.Operator(i).CountParameters())
	}

	preds, err := predictAll(data, opts, registry)
	if err != nil {
		return err
	}

	for i := 0; i < min(opts.show, data.Len()); i++ {
		fmt.Fprintln(w, separator)
		if opts.ascii {
			if err := render.ASCII(w, data.Images[i]); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "Above image represents number '%d' (score: %.4f)", preds[i].class, preds[i].score)
		if data.Labeled() {
			fmt.Fprintf(w, ", expected '%d'", data.Labels[i])
		}
		fmt.Fprintln(w)
	}

	if data.Labeled() && data.Len() > 0 {
		correct := 0
		for i, p := range preds {
			if p.class == data.Labels[i] {
				correct++
			}
		}
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "Accuracy: %d/%d (%.2f%%)\n", correct, data.Len(), 100*float64(correct)/float64(data.Len()))
	}

	return nil
}

func loadDataset(opts inferOptions) (*dataset.Dataset, error) {
	if (opts.csv != "" || opts.synthetic > 0) && (opts.rows <= 0 || opts.cols <= 0) {
		return nil, fmt.Errorf("-rows and -cols must be positive, got %d and %d", opts.rows, opts.cols)
	}

	switch {
	case opts.images != "":
		return dataset.LoadIDX(opts.images, opts.labels, opts.max)
	case opts.csv != "":
		return dataset.LoadCSV(opts.csv, opts.rows, opts.cols, opts.max)
	case opts.synthetic > 0:
		d, err := dataset.Synthetic(opts.synthetic, opts.rows, opts.cols)
		if err != nil {
			return nil, err
		}
		return d.Head(opts.max), nil
	default:
		return nil, errors.New("one of -images, -csv or -synthetic is required")
	}
}

// predictAll classifies every image. Each worker loads its own Network
// because a Network reuses its buffers between calls.
func predictAll(data *dataset.Dataset, opts inferOptions, registry *nn.Registry) ([]prediction, error) {
	preds := make([]prediction, data.Len())

	cfg := parallel.DefaultConfig()
	cfg.NumWorkers = opts.workers
	cfg.Enabled = opts.workers > 1

	err := parallel.ForWorkers(data.Len(), cfg, func() (func(i int) error, error) {
		net, err := loader.LoadNetwork(opts.model, registry)
		if err != nil {
			return nil, err
		}
		return func(i int) error {
			out, err := net.ExecuteInference(data.Images[i])
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}
			preds[i].class, preds[i].score = out.ArgMax()
			return nil
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return preds, nil
}
