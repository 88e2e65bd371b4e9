// Package jobs runs background handlers on fixed schedules with overlap
// protection, panic isolation and graceful shutdown.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

var (
	// ErrUnknownJob is returned for a job name that was never registered.
	ErrUnknownJob = fmt.Errorf("unknown job: %w", domain.ErrNotFound)
	// ErrJobRunning is returned when a trigger overlaps an in-flight run.
	ErrJobRunning = fmt.Errorf("job already running: %w", domain.ErrStateConflict)
)

// Handler performs one run of a job.
type Handler func(ctx context.Context) (domain.BatchStats, error)

// Job declares a scheduled handler.
type Job struct {
	Name     string
	Schedule string
	// Offset delays the first run so jobs do not start together.
	Offset  time.Duration
	Enabled bool
	Handler Handler
}

// Status is a point-in-time view of one job.
type Status struct {
	Name      string
	Schedule  string
	Enabled   bool
	Running   bool
	Runs      int64
	Failures  int64
	Skipped   int64
	LastStart time.Time
	LastEnd   time.Time
	LastError string
	LastStats domain.BatchStats
}

type entry struct {
	job      Job
	interval time.Duration
	running  atomic.Bool

	mu        sync.Mutex
	runs      int64
	failures  int64
	skipped   int64
	lastStart time.Time
	lastEnd   time.Time
	lastErr   string
	lastStats domain.BatchStats
}

// Orchestrator owns the job loops.
type Orchestrator struct {
	entries map[string]*entry
	order   []string
	metrics *metrics
	log     *slog.Logger
	now     func() time.Time

	// loopCtx stops the tickers; runCtx is cancelled only when shutdown
	// gives up waiting on in-flight runs.
	loopCtx    context.Context
	stopLoops  context.CancelFunc
	runCtx     context.Context
	cancelRuns context.CancelFunc

	loops    sync.WaitGroup
	inflight sync.WaitGroup
	started  atomic.Bool

	// stopMu orders manual triggers against Shutdown.
	stopMu  sync.Mutex
	stopped atomic.Bool
}

// New validates the job list and prepares an orchestrator. Jobs are not
// scheduled until Start.
func New(log *slog.Logger, reg prometheus.Registerer, jobs []Job) (*Orchestrator, error) {
	o := &Orchestrator{
		entries: make(map[string]*entry, len(jobs)),
		metrics: newMetrics(reg),
		log:     log.With("service", "jobs"),
		now:     time.Now,
	}
	for _, j := range jobs {
		if j.Name == "" {
			return nil, errors.New("jobs: job name is required")
		}
		if _, dup := o.entries[j.Name]; dup {
			return nil, fmt.Errorf("jobs: duplicate job %q", j.Name)
		}
		if j.Handler == nil {
			return nil, fmt.Errorf("jobs: job %q has no handler", j.Name)
		}
		interval, err := ParseSchedule(j.Schedule)
		if err != nil {
			return nil, fmt.Errorf("jobs: job %q: %w", j.Name, err)
		}
		o.entries[j.Name] = &entry{job: j, interval: interval}
		o.order = append(o.order, j.Name)
	}
	o.loopCtx, o.stopLoops = context.WithCancel(context.Background())
	o.runCtx, o.cancelRuns = context.WithCancel(context.Background())
	return o, nil
}

// Start launches one loop per enabled job. ctx carries values (not
// cancellation) into runs; use Shutdown to stop.
func (o *Orchestrator) Start(ctx context.Context) {
	if o.stopped.Load() || !o.started.CompareAndSwap(false, true) {
		return
	}
	for _, name := range o.order {
		e := o.entries[name]
		if !e.job.Enabled {
			o.log.InfoContext(ctx, "job disabled", slog.String("job", name))
			continue
		}
		o.loops.Add(1)
		go o.loop(ctx, e)
	}
}

func (o *Orchestrator) loop(ctx context.Context, e *entry) {
	defer o.loops.Done()

	o.log.InfoContext(ctx, "job scheduled",
		slog.String("job", e.job.Name),
		slog.Duration("interval", e.interval),
		slog.Duration("offset", e.job.Offset),
	)

	if e.job.Offset > 0 {
		timer := time.NewTimer(e.job.Offset)
		select {
		case <-o.loopCtx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		if e.running.CompareAndSwap(false, true) {
			o.inflight.Add(1)
			go o.execute(o.runCtx, ctx, e, "schedule")
		} else {
			o.skip(ctx, e)
		}

		select {
		case <-o.loopCtx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Trigger starts an immediate run of name in the background.
func (o *Orchestrator) Trigger(ctx context.Context, name string) error {
	e, ok := o.entries[name]
	if !ok {
		return ErrUnknownJob
	}
	o.stopMu.Lock()
	defer o.stopMu.Unlock()

	if o.stopped.Load() {
		return fmt.Errorf("trigger %s: orchestrator is shutting down", name)
	}
	if !e.running.CompareAndSwap(false, true) {
		return ErrJobRunning
	}

	o.inflight.Add(1)
	go o.execute(o.runCtx, ctx, e, "manual")
	return nil
}

// RunOnce runs name in the calling goroutine and returns its result. The run
// is cancelled by ctx or by a Shutdown that times out. It is meant for
// one-shot commands driven by an external scheduler.
func (o *Orchestrator) RunOnce(ctx context.Context, name string) (domain.BatchStats, error) {
	e, ok := o.entries[name]
	if !ok {
		return domain.BatchStats{}, ErrUnknownJob
	}

	o.stopMu.Lock()
	if o.stopped.Load() {
		o.stopMu.Unlock()
		return domain.BatchStats{}, fmt.Errorf("run %s: orchestrator is shutting down", name)
	}
	if !e.running.CompareAndSwap(false, true) {
		o.stopMu.Unlock()
		return domain.BatchStats{}, ErrJobRunning
	}
	o.inflight.Add(1)
	o.stopMu.Unlock()

	parent, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(o.runCtx, cancel)
	defer stop()

	return o.execute(parent, ctx, e, "once")
}

// execute runs the handler once under a context cancelled with parent and
// carrying ctx's values. The caller has set e.running and added to
// o.inflight.
func (o *Orchestrator) execute(parent, ctx context.Context, e *entry, trigger string) (domain.BatchStats, error) {
	defer o.inflight.Done()
	defer e.running.Store(false)

	name := e.job.Name
	runCtx, cancel := context.WithCancel(parent)
	defer cancel()
	runCtx = ctxutil.WithJobName(mergeValues(runCtx, ctx), name)

	start := o.now()
	e.mu.Lock()
	e.lastStart = start
	e.mu.Unlock()
	o.metrics.running.WithLabelValues(name).Set(1)

	stats, err := o.safeRun(runCtx, e)

	elapsed := o.now().Sub(start)
	o.metrics.running.WithLabelValues(name).Set(0)
	o.metrics.duration.WithLabelValues(name).Observe(elapsed.Seconds())
	o.metrics.records.WithLabelValues(name, "processed").Add(float64(stats.Processed))
	o.metrics.records.WithLabelValues(name, "failed").Add(float64(stats.Failed))
	o.metrics.records.WithLabelValues(name, "skipped").Add(float64(stats.Skipped))

	e.mu.Lock()
	e.runs++
	e.lastEnd = o.now()
	e.lastStats = stats
	e.lastErr = ""
	if err != nil {
		e.failures++
		e.lastErr = err.Error()
	}
	e.mu.Unlock()

	if err != nil {
		o.metrics.runs.WithLabelValues(name, "failure").Inc()
		o.log.ErrorContext(runCtx, "job failed",
			slog.String("job", name),
			slog.String("trigger", trigger),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
		return stats, err
	}
	o.metrics.runs.WithLabelValues(name, "success").Inc()
	o.log.InfoContext(runCtx, "job finished",
		slog.String("job", name),
		slog.String("trigger", trigger),
		slog.Duration("elapsed", elapsed),
		slog.Int("processed", stats.Processed),
		slog.Int("failed", stats.Failed),
		slog.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

// safeRun converts a handler panic into an error.
func (o *Orchestrator) safeRun(ctx context.Context, e *entry) (stats domain.BatchStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.log.ErrorContext(ctx, "job panic",
				slog.String("job", e.job.Name),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("job %s panicked: %v", e.job.Name, r)
		}
	}()
	return e.job.Handler(ctx)
}

func (o *Orchestrator) skip(ctx context.Context, e *entry) {
	e.mu.Lock()
	e.skipped++
	e.mu.Unlock()
	o.metrics.runs.WithLabelValues(e.job.Name, "skipped").Inc()
	o.log.WarnContext(ctx, "job tick skipped, previous run still in flight", slog.String("job", e.job.Name))
}

// Status reports every registered job in registration order.
func (o *Orchestrator) Status() []Status {
	out := make([]Status, 0, len(o.order))
	for _, name := range o.order {
		e := o.entries[name]
		e.mu.Lock()
		out = append(out, Status{
			Name:      name,
			Schedule:  e.job.Schedule,
			Enabled:   e.job.Enabled,
			Running:   e.running.Load(),
			Runs:      e.runs,
			Failures:  e.failures,
			Skipped:   e.skipped,
			LastStart: e.lastStart,
			LastEnd:   e.lastEnd,
			LastError: e.lastErr,
			LastStats: e.lastStats,
		})
		e.mu.Unlock()
	}
	return out
}

// cancelGrace bounds how long Shutdown waits for cancelled runs to return.
const cancelGrace = 200 * time.Millisecond

// Shutdown stops scheduling and waits for in-flight runs until ctx is done,
// then cancels them. Runs that ignore cancellation are abandoned after
// cancelGrace and keep running in the background.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	o.stopMu.Lock()
	o.stopped.Store(true)
	o.stopMu.Unlock()

	o.stopLoops()
	o.loops.Wait()

	done := make(chan struct{})
	go func() {
		o.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		o.cancelRuns()
		return nil
	case <-ctx.Done():
		o.cancelRuns()
	}

	grace := time.NewTimer(cancelGrace)
	defer grace.Stop()
	select {
	case <-done:
	case <-grace.C:
		o.log.WarnContext(ctx, "jobs still running after cancel, not waiting")
	}
	return fmt.Errorf("jobs: shutdown: %w", ctx.Err())
}

// valueCtx carries the values of one context and the cancellation of
// another.
type valueCtx struct {
	context.Context
	values context.Context
}

func (v valueCtx) Value(key any) any { return v.values.Value(key) }

func mergeValues(cancel, values context.Context) context.Context {
	return valueCtx{Context: cancel, values: values}
}
