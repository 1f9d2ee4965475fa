// Package program implements Program: the explicit arena that owns a
// set of table predicates and drives their per-tick recomputation,
// replacing the teacher's global mutable predicate-registry idiom with
// an explicit context object (the source's own design note flags this
// exact trade).
package program

import (
	"context"
	"time"

	"github.com/ianhorswill/ted/internal/parallel"
	"github.com/ianhorswill/ted/predicate"
	"github.com/ianhorswill/ted/sched"
)

// Tracer is an optional hook fired at tick boundaries (start, and
// completion or abort); individual predicate updates and rule firings
// are not traced. A no-op unless supplied via WithTracer.
type Tracer func(format string, args ...any)

func noopTracer(string, ...any) {}

// Program owns a fixed set of table predicates and the Scheduler that
// orders their recomputation.
type Program struct {
	predicates  []*predicate.TablePredicate
	scheduler   *sched.Scheduler
	pool        *parallel.WorkerPool
	tracer      Tracer
	tickTimeout time.Duration
	seeded      bool
}

// ProgramOption configures a Program at construction.
type ProgramOption func(*Program)

// WithWorkerPool runs independent predicates' per-tick update tasks
// concurrently over a worker pool instead of sequentially. The pool
// starts with one worker and grows with queue depth up to n workers.
func WithWorkerPool(n int) ProgramOption {
	return func(p *Program) { p.pool = parallel.NewWorkerPool(n) }
}

// WithTracer installs a trace sink fired on tick boundaries.
func WithTracer(fn Tracer) ProgramOption {
	return func(p *Program) { p.tracer = fn }
}

// WithTickTimeout bounds each call to Tick with a derived context
// timeout in addition to whatever context the caller passes in.
func WithTickTimeout(d time.Duration) ProgramOption {
	return func(p *Program) { p.tickTimeout = d }
}

// New builds a Program over predicates, applying opts in order.
func New(predicates []*predicate.TablePredicate, opts ...ProgramOption) *Program {
	p := &Program{predicates: predicates, tracer: noopTracer}
	for _, opt := range opts {
		opt(p)
	}
	p.scheduler = sched.New(predicates, p.pool)
	return p
}

// Predicates returns every predicate the Program owns.
func (p *Program) Predicates() []*predicate.TablePredicate { return p.predicates }

// Tick runs one full recomputation pass across every owned predicate,
// in dependency order. The first call also applies every BaseTable
// predicate's queued Initially rows before recomputing. Returns the
// first error encountered; per the per-tick failure contract, a
// failing tick aborts and leaves tables partially updated.
func (p *Program) Tick(ctx context.Context) error {
	if !p.seeded {
		for _, pr := range p.predicates {
			if err := pr.SeedInitial(); err != nil {
				return err
			}
		}
		p.seeded = true
	}
	if p.tickTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.tickTimeout)
		defer cancel()
	}
	p.tracer("tick: start (%d predicates)", len(p.predicates))
	err := p.scheduler.Tick(ctx)
	if err != nil {
		p.tracer("tick: aborted: %v", err)
	} else {
		p.tracer("tick: complete")
	}
	return err
}

// Shutdown releases the Program's worker pool, if it has one. Safe to
// call on a Program built without WithWorkerPool.
func (p *Program) Shutdown() {
	if p.pool != nil {
		p.pool.Shutdown()
	}
}
