package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForErr(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	seen := make([]int32, n)

	err := ForErr(context.Background(), n, func(i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	}, cfg)
	require.NoError(t, err)

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
}

func TestForErr_Sequential(t *testing.T) {
	var order []int
	err := ForErr(context.Background(), 5, func(i int) error {
		order = append(order, i)
		return nil
	}, Sequential())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestForErr_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	err := ForErr(context.Background(), n, func(_ int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(n), counter)
}

func TestForErr_Empty(t *testing.T) {
	called := false
	err := ForErr(context.Background(), 0, func(_ int) error {
		called = true
		return nil
	}, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, called)
}

func TestForErr_FirstError(t *testing.T) {
	boom := errors.New("boom")

	for _, cfg := range []Config{
		Sequential(),
		{Enabled: true, NumWorkers: 4, MinChunkSize: 1},
	} {
		err := ForErr(context.Background(), 100, func(i int) error {
			if i == 42 {
				return boom
			}
			return nil
		}, cfg)
		assert.ErrorIs(t, err, boom)
	}
}

func TestForErr_StopsAfterError(t *testing.T) {
	boom := errors.New("boom")

	var calls int64
	err := ForErr(context.Background(), 1000, func(i int) error {
		atomic.AddInt64(&calls, 1)
		if i == 0 {
			return boom
		}
		return nil
	}, Sequential())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(1), calls)
}

func TestForErr_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int64
	err := ForErr(ctx, 100, func(_ int) error {
		atomic.AddInt64(&calls, 1)
		return nil
	}, Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), calls)
}

func BenchmarkForErr(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = ForErr(context.Background(), n, func(j int) error {
				atomic.AddInt64(&sum, int64(j))
				return nil
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = ForErr(context.Background(), n, func(j int) error {
				sum += int64(j)
				return nil
			}, Sequential())
			_ = sum
		}
	})
}
