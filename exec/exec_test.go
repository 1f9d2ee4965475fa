package exec_test

import (
	"testing"

	"github.com/ianhorswill/ted/exec"
	"github.com/ianhorswill/ted/rule"
	"github.com/ianhorswill/ted/table"
)

func TestRunAncestorClosure(t *testing.T) {
	parent := table.New(2, true)
	for _, row := range []table.Row{{"alice", "bob"}, {"bob", "carol"}, {"carol", "dave"}} {
		parent.Add(row)
	}

	ancestor := table.New(2, true)

	base, err := rule.Compile("ancestor/0", ancestor, []rule.Term{rule.V("X"), rule.V("Y")}, []rule.Goal{
		rule.Pred("parent", parent, rule.V("X"), rule.V("Y")),
	})
	if err != nil {
		t.Fatalf("Compile base: %v", err)
	}

	// The recursive goal must come first: the Ancestor table grows while
	// this rule runs, and FullScan re-reads Table.Len() on every Next(),
	// so driving the outer loop from the self-referential table lets a
	// row derived earlier in this same pass feed a later outer iteration
	// (e.g. deriving (alice,dave) from the freshly added (alice,carol)).
	// Driving the outer loop from the static Parent table instead misses
	// exactly this case, since the outer cursor never revisits it.
	recursive, err := rule.Compile("ancestor/1", ancestor, []rule.Term{rule.V("X"), rule.V("Z")}, []rule.Goal{
		rule.Pred("ancestor", ancestor, rule.V("X"), rule.V("Y")),
		rule.Pred("parent", parent, rule.V("Y"), rule.V("Z")),
	})
	if err != nil {
		t.Fatalf("Compile recursive: %v", err)
	}

	base.ResetCells()
	exec.Run(base)
	recursive.ResetCells()
	exec.Run(recursive)

	want := map[[2]string]bool{
		{"alice", "bob"}: true, {"bob", "carol"}: true, {"carol", "dave"}: true,
		{"alice", "carol"}: true, {"bob", "dave"}: true, {"alice", "dave"}: true,
	}
	if ancestor.Len() != len(want) {
		t.Fatalf("expected %d ancestor rows, got %d", len(want), ancestor.Len())
	}
	for _, row := range ancestor.All() {
		key := [2]string{row[0].(string), row[1].(string)}
		if !want[key] {
			t.Fatalf("unexpected ancestor row %v", row)
		}
	}
}

func TestRunFactEmitsOnce(t *testing.T) {
	owner := table.New(1, true)
	r, err := rule.Compile("const/0", owner, []rule.Term{"x"}, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r.ResetCells()
	exec.Run(r)
	r.ResetCells()
	exec.Run(r)
	if owner.Len() != 1 {
		t.Fatalf("expected exactly one row after two runs of a unique fact, got %d", owner.Len())
	}
}
