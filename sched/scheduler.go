// Package sched implements the Update Scheduler: dependency ordering
// and per-tick recomputation across a set of table predicates, with an
// optional concurrent task graph over a bounded worker pool. The
// dependency graph and its Tarjan-SCC ordering are adapted from the
// teacher engine's SLGEngine, which uses the same machinery to order
// and stratify tabled predicate evaluation; here it orders predicates
// prerequisite-before-dependent and identifies self-stratified-by-
// negation cycles rather than computing a full fixpoint.
package sched

import (
	"context"
	"fmt"
	"sync"

	"github.com/ianhorswill/ted/internal/parallel"
	"github.com/ianhorswill/ted/predicate"
	"github.com/ianhorswill/ted/table"
)

// Scheduler orders and drives per-tick recomputation for a fixed set of
// table predicates.
type Scheduler struct {
	predicates []*predicate.TablePredicate
	byTable    map[*table.Table]*predicate.TablePredicate
	order      []*predicate.TablePredicate // prerequisite-before-dependent
	cyclic     map[*predicate.TablePredicate]bool
	pool       *parallel.WorkerPool // nil means run each tick sequentially
}

// New builds a Scheduler over predicates and computes their dependency
// order immediately. Construction cannot fail: cycles are permitted,
// per §4.6, as self-stratified-by-negation clusters. A nil pool runs
// every tick sequentially in dependency order; a non-nil pool runs
// independent predicates' update tasks concurrently.
func New(predicates []*predicate.TablePredicate, pool *parallel.WorkerPool) *Scheduler {
	s := &Scheduler{
		predicates: predicates,
		byTable:    make(map[*table.Table]*predicate.TablePredicate, len(predicates)),
		cyclic:     make(map[*predicate.TablePredicate]bool),
		pool:       pool,
	}
	for _, p := range predicates {
		s.byTable[p.Table] = p
	}
	s.prepare()
	return s
}

// prepare computes prerequisites(P) in topological order via Tarjan's
// SCC algorithm over the predicate dependency graph. An edge p -> dep
// means p depends on dep (dep must complete first). Tarjan's algorithm
// closes off dep's SCC, during the DFS call it's discovered through,
// strictly before p's own SCC closes — so appending SCCs in discovery-
// completion order already yields prerequisite-before-dependent.
func (s *Scheduler) prepare() {
	indices := map[*predicate.TablePredicate]int{}
	lowlink := map[*predicate.TablePredicate]int{}
	onStack := map[*predicate.TablePredicate]bool{}
	var stack []*predicate.TablePredicate
	var sccs [][]*predicate.TablePredicate
	next := 0

	var strongconnect func(p *predicate.TablePredicate)
	strongconnect = func(p *predicate.TablePredicate) {
		indices[p] = next
		lowlink[p] = next
		next++
		stack = append(stack, p)
		onStack[p] = true

		for _, t := range p.Dependencies() {
			dep, ok := s.byTable[t]
			if !ok {
				continue // a dependency outside this scheduler's predicate set
			}
			if _, seen := indices[dep]; !seen {
				strongconnect(dep)
				if lowlink[dep] < lowlink[p] {
					lowlink[p] = lowlink[dep]
				}
			} else if onStack[dep] {
				if indices[dep] < lowlink[p] {
					lowlink[p] = indices[dep]
				}
			}
		}

		if lowlink[p] == indices[p] {
			var scc []*predicate.TablePredicate
			for {
				n := len(stack) - 1
				top := stack[n]
				stack = stack[:n]
				onStack[top] = false
				scc = append(scc, top)
				if top == p {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, p := range s.predicates {
		if _, seen := indices[p]; !seen {
			strongconnect(p)
		}
	}

	s.order = s.order[:0]
	for _, scc := range sccs {
		cyclic := len(scc) > 1
		if !cyclic {
			for _, t := range scc[0].Dependencies() {
				if t == scc[0].Table {
					cyclic = true
				}
			}
		}
		if cyclic {
			for _, p := range scc {
				s.cyclic[p] = true
			}
		}
		s.order = append(s.order, scc...)
	}
}

// Order returns the predicates in dependency-respecting order.
func (s *Scheduler) Order() []*predicate.TablePredicate { return s.order }

// Cyclic reports whether p participates in a dependency cycle (a
// self-stratified-by-negation cluster, per §4.6's cycle policy —
// detecting that the stratification is actually valid is a front-end
// concern; the scheduler only identifies the cycle and still applies
// one naive pass per predicate per tick).
func (s *Scheduler) Cyclic(p *predicate.TablePredicate) bool { return s.cyclic[p] }

// Tick runs one full recomputation pass: every predicate's update
// executes exactly once, never before any of its prerequisites
// complete. Returns the first error encountered; by default a failing
// tick aborts and leaves tables partially updated, per the per-tick
// failure contract.
func (s *Scheduler) Tick(ctx context.Context) error {
	if s.pool == nil {
		return s.tickSequential(ctx)
	}
	return s.tickConcurrent(ctx)
}

func (s *Scheduler) tickSequential(ctx context.Context) error {
	for _, p := range s.order {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := runUpdate(p); err != nil {
			return fmt.Errorf("ted/sched: predicate %s: %w", p.Name, err)
		}
	}
	return nil
}

func (s *Scheduler) tickConcurrent(ctx context.Context) error {
	done := make(map[*predicate.TablePredicate]chan struct{}, len(s.order))
	pos := make(map[*predicate.TablePredicate]int, len(s.order))
	for i, p := range s.order {
		done[p] = make(chan struct{})
		pos[p] = i
	}

	var mu sync.Mutex
	var firstErr error
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	hasFailed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	var wg sync.WaitGroup
	for i, p := range s.order {
		p := p
		// A prerequisite at or after p in the order lies on a cycle with p
		// (including p's own self-reference); as in tickSequential, p does
		// not wait for it.
		var prereqs []*predicate.TablePredicate
		for _, dep := range s.prerequisitesOf(p) {
			if pos[dep] < i {
				prereqs = append(prereqs, dep)
			}
		}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer close(done[p])
			for _, dep := range prereqs {
				select {
				case <-done[dep]:
				case <-ctx.Done():
					fail(ctx.Err())
					return
				}
			}
			if hasFailed() {
				return
			}
			if err := runUpdate(p); err != nil {
				fail(fmt.Errorf("ted/sched: predicate %s: %w", p.Name, err))
			}
		}
		if err := s.pool.Submit(ctx, task); err != nil {
			close(done[p])
			wg.Done()
			fail(fmt.Errorf("ted/sched: submitting predicate %s: %w", p.Name, err))
		}
	}
	wg.Wait()
	return firstErr
}

func (s *Scheduler) prerequisitesOf(p *predicate.TablePredicate) []*predicate.TablePredicate {
	var deps []*predicate.TablePredicate
	for _, t := range p.Dependencies() {
		if dep, ok := s.byTable[t]; ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

func runUpdate(p *predicate.TablePredicate) error {
	switch p.Mode {
	case predicate.BaseTable:
		return p.RunBaseTable()
	case predicate.Rules:
		p.RunRules()
		return nil
	case predicate.Operator:
		return p.RunOperator()
	default:
		return nil
	}
}
