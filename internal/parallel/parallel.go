// Package parallel splits index ranges across worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16,
	}
}

// chunks returns the [start, end) ranges covering [0, n).
func (c Config) chunks(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	if !c.Enabled || c.NumWorkers < 2 || n < 2*c.MinChunkSize {
		return [][2]int{{0, n}}
	}

	size := max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize, 1)
	var out [][2]int
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

// ForWorkers executes a worker-local function for every i in [0, n).
//
// newWorker is called once per goroutine, so each chunk of the range gets
// its own state (for example a Network, whose buffers must not be shared).
// The first error stops the chunk that hit it and is returned once all
// goroutines finish.
func ForWorkers(n int, cfg Config, newWorker func() (func(i int) error, error)) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, c := range cfg.chunks(n) {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			work, err := newWorker()
			if err != nil {
				setErr(err)
				return
			}
			for i := s; i < e; i++ {
				if err := work(i); err != nil {
					setErr(err)
					return
				}
			}
		}(c[0], c[1])
	}
	wg.Wait()

	return firstErr
}
