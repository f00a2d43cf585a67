package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// visit wraps f as a stateless worker.
func visit(f func(i int)) func() (func(i int) error, error) {
	return func() (func(i int) error, error) {
		return func(i int) error {
			f(i)
			return nil
		}, nil
	}
}

func TestForWorkers(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	var counter int64
	seen := make([]bool, 1000)

	err := ForWorkers(len(seen), cfg, visit(func(i int) {
		atomic.AddInt64(&counter, 1)
		seen[i] = true
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1000), counter)
	for i, ok := range seen {
		assert.True(t, ok, "index %d not visited", i)
	}
}

func TestForWorkers_Sequential(t *testing.T) {
	var order []int
	err := ForWorkers(5, Config{Enabled: false}, visit(func(i int) {
		order = append(order, i)
	}))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestConfig_Chunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	assert.Nil(t, cfg.chunks(0))
	assert.Equal(t, [][2]int{{0, 10}}, cfg.chunks(10), "small ranges stay sequential")
	assert.Equal(t, [][2]int{{0, 25}, {25, 50}, {50, 75}, {75, 100}}, cfg.chunks(100))
	assert.Equal(t, [][2]int{{0, 8}, {8, 16}, {16, 20}}, cfg.chunks(20))

	cfg.Enabled = false
	assert.Equal(t, [][2]int{{0, 100}}, cfg.chunks(100))
}

func TestForWorkers_OneWorkerPerChunk(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	var workers int64
	results := make([]int, 100)

	err := ForWorkers(len(results), cfg, func() (func(i int) error, error) {
		id := int(atomic.AddInt64(&workers, 1))
		return func(i int) error {
			results[i] = id
			return nil
		}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), workers)

	// Indices in one chunk share a worker.
	for i := 1; i < 25; i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestForWorkers_Errors(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1}
	boom := errors.New("boom")

	err := ForWorkers(10, cfg, func() (func(i int) error, error) {
		return func(i int) error {
			if i == 7 {
				return boom
			}
			return nil
		}, nil
	})
	assert.ErrorIs(t, err, boom)

	err = ForWorkers(10, cfg, func() (func(i int) error, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func BenchmarkForWorkers(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = ForWorkers(n, cfg, visit(func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}))
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = ForWorkers(n, cfgSeq, visit(func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}))
		}
	})
}
