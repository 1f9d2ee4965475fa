package sched_test

import (
	"context"
	"testing"

	"github.com/ianhorswill/ted/internal/parallel"
	"github.com/ianhorswill/ted/predicate"
	"github.com/ianhorswill/ted/rule"
	"github.com/ianhorswill/ted/sched"
)

func buildAncestorProgram(t *testing.T) (*predicate.TablePredicate, *predicate.TablePredicate) {
	t.Helper()
	parent := predicate.NewTablePredicate("parent", true,
		predicate.Column("x", "", predicate.NoIndex),
		predicate.Column("y", "", predicate.NoIndex))
	for _, row := range [][2]string{{"alice", "bob"}, {"bob", "carol"}, {"carol", "dave"}} {
		if err := parent.AddRow(row[0], row[1]); err != nil {
			t.Fatalf("AddRow: %v", err)
		}
	}

	ancestor := predicate.NewTablePredicate("ancestor", true,
		predicate.Column("x", "", predicate.NoIndex),
		predicate.Column("y", "", predicate.NoIndex))
	if err := ancestor.If([]rule.Term{rule.V("X"), rule.V("Y")}, []rule.Goal{
		rule.Pred("parent", parent.Table, rule.V("X"), rule.V("Y")),
	}); err != nil {
		t.Fatalf("If base: %v", err)
	}
	// Drive the outer scan from the self-referential Ancestor table, not
	// the static Parent table: Ancestor grows mid-run, and only the
	// table actually being scanned in the outer position picks up rows
	// derived earlier in the same pass (see exec_test.go).
	if err := ancestor.If([]rule.Term{rule.V("X"), rule.V("Z")}, []rule.Goal{
		rule.Pred("ancestor", ancestor.Table, rule.V("X"), rule.V("Y")),
		rule.Pred("parent", parent.Table, rule.V("Y"), rule.V("Z")),
	}); err != nil {
		t.Fatalf("If recursive: %v", err)
	}
	return parent, ancestor
}

func TestSequentialTickOrdersPrerequisitesFirst(t *testing.T) {
	parent, ancestor := buildAncestorProgram(t)
	s := sched.New([]*predicate.TablePredicate{ancestor, parent}, nil)

	order := s.Order()
	if order[0] != parent || order[1] != ancestor {
		t.Fatalf("expected [parent, ancestor], got %v", order)
	}

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if ancestor.Table.Len() != 6 {
		t.Fatalf("expected 6 ancestor rows, got %d", ancestor.Table.Len())
	}
}

func TestConcurrentTickMatchesSequential(t *testing.T) {
	parent, ancestor := buildAncestorProgram(t)
	pool := parallel.NewWorkerPool(4)
	defer pool.Shutdown()
	s := sched.New([]*predicate.TablePredicate{ancestor, parent}, pool)

	if err := s.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if ancestor.Table.Len() != 6 {
		t.Fatalf("expected 6 ancestor rows, got %d", ancestor.Table.Len())
	}
}
