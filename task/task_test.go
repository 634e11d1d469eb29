package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_Concurrency(t *testing.T) {
	g := Group{MaxConcurrent: 2}
	var running, peak atomic.Int32
	for i := 0; i < 6; i++ {
		g.Add("job", func(ctx context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			return nil
		})
	}
	require.NoError(t, g.Run(context.Background()))
	assert.LessOrEqual(t, peak.Load(), int32(2))
	for _, task := range g.Tasks() {
		assert.Equal(t, StatusSuccess, task.Status())
		assert.Positive(t, task.Duration())
	}
}

func TestGroup_Errors(t *testing.T) {
	boom := errors.New("boom")
	g := Group{}
	ok := g.Add("ok.svg", func(ctx context.Context) error { return nil })
	bad := g.Add("bad.svg", func(ctx context.Context) error { return boom })
	panics := g.Add("panic.svg", func(ctx context.Context) error { panic("oops") })

	err := g.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "bad.svg: boom")
	assert.ErrorContains(t, err, "panic.svg: panic: oops")

	assert.Equal(t, StatusSuccess, ok.Status())
	assert.Equal(t, StatusFailed, bad.Status())
	assert.Equal(t, StatusFailed, panics.Status())
	assert.Contains(t, g.Pretty().String(), "✗ bad.svg")
}

func TestGroup_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := Group{MaxConcurrent: 1}
	called := false
	task := g.Add("late.svg", func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.NoError(t, g.Run(ctx))
	assert.False(t, called)
	assert.Equal(t, StatusCancelled, task.Status())
}
