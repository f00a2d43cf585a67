package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/soonum/zama-trial/internal/nn"
)

func runInfo(w io.Writer) error {
	cpu := cpuid.CPU

	fmt.Fprintf(w, "CPU:      %s\n", cpu.BrandName)
	fmt.Fprintf(w, "Vendor:   %s\n", cpu.VendorString)
	fmt.Fprintf(w, "Cores:    %d physical, %d logical\n", cpu.PhysicalCores, cpu.LogicalCores)
	fmt.Fprintf(w, "AVX2:     %t\n", cpu.Supports(cpuid.AVX2))
	fmt.Fprintf(w, "AVX512:   %t\n", cpu.Supports(cpuid.AVX512F, cpuid.AVX512DQ))
	fmt.Fprintf(w, "Features: %s\n", strings.Join(cpu.FeatureSet(), " "))
	fmt.Fprintf(w, "Workers:  %d\n", defaultWorkers())
	fmt.Fprintf(w, "Operators: %s\n", strings.Join(nn.NewRegistry().SupportedKinds(), " "))
	return nil
}

// defaultWorkers returns the number of inference workers to start.
func defaultWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
