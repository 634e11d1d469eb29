// Package task runs a batch of named jobs, such as exporting many symbols, on a
// bounded number of workers and reports their outcome.
package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/symbols/api"
)

// Status represents the status of a task
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Icon() string {
	switch s {
	case StatusSuccess:
		return "✓"
	case StatusFailed:
		return "✗"
	case StatusCancelled:
		return "⊘"
	case StatusRunning:
		return "⟳"
	default:
		return "…"
	}
}

func (s Status) style() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "error"
	case StatusCancelled:
		return "warning"
	default:
		return "muted"
	}
}

type Task struct {
	Name string

	fn       func(ctx context.Context) error
	mu       sync.Mutex
	status   Status
	err      error
	duration time.Duration
}

func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Task) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duration
}

func (t *Task) set(status Status, err error, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status, t.err, t.duration = status, err, d
}

func (t *Task) Pretty() api.Text {
	status := t.Status()
	text := api.Text{}.
		Append(status.Icon()+" ", status.style()).
		Append(t.Name)
	if d := t.Duration(); d > 0 {
		text = text.Append(fmt.Sprintf(" (%s)", d.Round(time.Millisecond)), "muted")
	}
	if err := t.Err(); err != nil {
		text = text.Append(": "+err.Error(), "error")
	}
	return text
}

// Group is a batch of tasks. Add every task before calling Run.
type Group struct {
	// MaxConcurrent bounds the number of running tasks, 0 or less runs one
	// worker per task
	MaxConcurrent int
	tasks         []*Task
}

func (g *Group) Add(name string, fn func(ctx context.Context) error) *Task {
	t := &Task{Name: name, fn: fn, status: StatusPending}
	g.tasks = append(g.tasks, t)
	return t
}

func (g *Group) Tasks() []*Task {
	return append([]*Task(nil), g.tasks...)
}

// Run executes the tasks and waits for them. Tasks not started when ctx is
// done are cancelled. The error joins every task failure.
func (g *Group) Run(ctx context.Context) error {
	workers := g.MaxConcurrent
	if workers <= 0 || workers > len(g.tasks) {
		workers = len(g.tasks)
	}

	queue := make(chan *Task)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for t := range queue {
				run(ctx, id, t)
			}
		}(i)
	}

enqueue:
	for i, t := range g.tasks {
		select {
		case <-ctx.Done():
			for _, rest := range g.tasks[i:] {
				rest.set(StatusCancelled, ctx.Err(), 0)
			}
			break enqueue
		case queue <- t:
		}
	}
	close(queue)
	wg.Wait()

	var errs []error
	for _, t := range g.tasks {
		if t.Status() == StatusFailed {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, t.Err()))
		}
	}
	return errors.Join(errs...)
}

func run(ctx context.Context, worker int, t *Task) {
	if err := ctx.Err(); err != nil {
		t.set(StatusCancelled, err, 0)
		return
	}
	logger.Tracef("[worker %d] starting %s", worker, t.Name)
	t.set(StatusRunning, nil, 0)
	start := time.Now()
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return t.fn(ctx)
	}()
	if err != nil {
		t.set(StatusFailed, err, time.Since(start))
		logger.Debugf("%s failed: %v", t.Name, err)
		return
	}
	t.set(StatusSuccess, nil, time.Since(start))
}

func (g *Group) Pretty() api.Text {
	if len(g.tasks) == 0 {
		return api.Text{Content: "No tasks"}
	}
	text := api.Text{}
	for _, t := range g.tasks {
		text = text.Add(t.Pretty()).NewLine()
	}
	return text
}
