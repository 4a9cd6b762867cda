package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name  string
	every time.Duration
	fn    func(ctx context.Context) error
}

// Runner executes registered background jobs on fixed intervals. Each job
// runs once immediately on Start and then once per interval. A panicking job
// is recovered and logged, it never takes the process down.
type Runner struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Register(name string, every time.Duration, fn func(ctx context.Context) error) *Runner {
	return r.RegisterIf(true, name, every, fn)
}

func (r *Runner) RegisterIf(enabled bool, name string, every time.Duration, fn func(ctx context.Context) error) *Runner {
	if !enabled {
		return r
	}

	r.jobs = append(r.jobs, job{
		name:  name,
		every: every,
		fn:    fn,
	})

	return r
}

func (r *Runner) Start(ctx context.Context) {
	for _, j := range r.jobs {
		r.wg.Add(1)

		go r.run(ctx, j)
	}
}

func (r *Runner) run(ctx context.Context, j job) {
	defer r.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	for {
		err := runRecovered(ctx, l, j.fn)
		if err != nil {
			l.Error("job failed", "error", err)
		} else {
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
		}
	}
}

func runRecovered(ctx context.Context, l *slog.Logger, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			l.Error("job panic", "error", rec, "stack", string(debug.Stack()))
		}
	}()

	return fn(ctx)
}

// Wait blocks until all job goroutines have observed context cancellation.
func (r *Runner) Wait() {
	r.wg.Wait()
}
