// Package shutdown runs cleanup hooks, such as closing file watchers and the
// measuring browser, when a long running command is interrupted.
package shutdown

import (
	"container/heap"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/flanksource/commons/logger"
)

// Hooks run lowest priority first
const (
	PriorityWatchers  = 0
	PriorityDefault   = 100
	PriorityMeasurers = 200
	PriorityCritical  = 400
)

type Hook struct {
	label    string
	priority int
	seq      int
	fn       func()
	index    int
}

type HookHeap []*Hook

func (h HookHeap) Len() int { return len(h) }
func (h HookHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h HookHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *HookHeap) Push(x interface{}) {
	item := x.(*Hook)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *HookHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}

var (
	hooks    HookHeap
	hooksMux sync.Mutex
	seq      int
)

// AddHook registers a shutdown hook with default priority
func AddHook(label string, fn func()) {
	AddHookWithPriority(label, PriorityDefault, fn)
}

// AddHookWithPriority registers a shutdown hook; hooks of equal priority run in
// the order they were added
func AddHookWithPriority(label string, priority int, fn func()) {
	hooksMux.Lock()
	defer hooksMux.Unlock()
	seq++
	heap.Push(&hooks, &Hook{label: label, priority: priority, seq: seq, fn: fn})
}

// Shutdown executes all registered hooks in priority order. A panicking hook
// does not stop the others.
func Shutdown() {
	hooksMux.Lock()
	defer hooksMux.Unlock()

	if len(hooks) == 0 {
		return
	}
	logger.Debugf("Executing %d shutdown hooks", len(hooks))
	for hooks.Len() > 0 {
		hook := heap.Pop(&hooks).(*Hook)
		logger.Tracef("Executing shutdown hook: %s (priority=%d)", hook.label, hook.priority)
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("Panic in shutdown hook %s: %v", hook.label, r)
				}
			}()
			hook.fn()
		}()
	}
}

// Context returns a context cancelled on SIGINT or SIGTERM. The hooks run once
// the context is done, whether by signal or by stop. A second signal exits
// immediately.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			Shutdown()
		})
	}
	go func() {
		select {
		case sig := <-sigChan:
			fmt.Fprintf(os.Stderr, "\nReceived %s, shutting down (press Ctrl+C again to force exit)\n", sig)
			go func() {
				<-sigChan
				os.Exit(1)
			}()
			stop()
		case <-ctx.Done():
			signal.Stop(sigChan)
			stop()
		}
	}()
	return ctx, stop
}
