// Package main provides the trial CLI: build, inspect and run feed-forward
// classifiers stored as SafeTensors files.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("trial: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run dispatches a subcommand and writes its report to stdout.
func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "trial %s\n", version)
		return nil
	case "info":
		return runInfo(stdout)
	case "init":
		return runInit(args[1:], stdout)
	case "infer":
		return runInfer(args[1:], stdout)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		return fmt.Errorf("unknown command %q (run 'trial help')", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "trial %s - feed-forward inference engine\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  info       Show host CPU capabilities")
	fmt.Fprintln(w, "  init       Write a randomly initialized classifier")
	fmt.Fprintln(w, "  infer      Classify images with a saved classifier")
}
