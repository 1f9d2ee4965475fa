package rule_test

import (
	"testing"

	"github.com/ianhorswill/ted/exec"
	"github.com/ianhorswill/ted/rule"
	"github.com/ianhorswill/ted/table"
)

// grandparent(A, C) :- parent(A, Y), parent(Y, C) — Y is a local
// variable, not one of the definition's formal parameters.
func grandparentDefinition(parent *table.Table) *rule.Definition {
	d := rule.NewDefinition("grandparent", rule.V("A"), rule.V("C"))
	d.Is(
		rule.Pred("parent", parent, rule.V("A"), rule.V("Y")),
		rule.Pred("parent", parent, rule.V("Y"), rule.V("C")),
	)
	return d
}

func TestDefinitionExpandSubstitutesParams(t *testing.T) {
	parent := table.New(2, true)
	parent.Add(table.Row{"alice", "bob"})
	parent.Add(table.Row{"bob", "carol"})
	parent.Add(table.Row{"dave", "eve"})
	parent.Add(table.Row{"eve", "frank"})

	d := grandparentDefinition(parent)
	derived := table.New(2, true)
	r, err := rule.Compile("grandparents", derived, []rule.Term{rule.V("X"), rule.V("Z")},
		d.Expand(rule.V("X"), rule.V("Z")))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r.ResetCells()
	exec.Run(r)

	want := map[[2]string]bool{
		{"alice", "carol"}: true,
		{"dave", "frank"}:  true,
	}
	if derived.Len() != len(want) {
		t.Fatalf("expected %d grandparent rows, got %d", len(want), derived.Len())
	}
	for _, row := range derived.All() {
		key := [2]string{row[0].(string), row[1].(string)}
		if !want[key] {
			t.Fatalf("unexpected row %v", row)
		}
	}
}

// TestDefinitionExpandFreshensLocalsPerCallSite expands the same
// Definition twice into a single rule body and checks the two
// expansions' local variables (both literally named Y in the
// definition) don't collide: each Grandparent pairing must vary
// independently of the other, not share a single unified Y binding
// across both invocations.
func TestDefinitionExpandFreshensLocalsPerCallSite(t *testing.T) {
	parent := table.New(2, true)
	parent.Add(table.Row{"alice", "bob"})
	parent.Add(table.Row{"bob", "carol"})
	parent.Add(table.Row{"dave", "eve"})
	parent.Add(table.Row{"eve", "frank"})

	d := grandparentDefinition(parent)
	var body []rule.Goal
	body = append(body, d.Expand(rule.V("X1"), rule.V("Z1"))...)
	body = append(body, d.Expand(rule.V("X2"), rule.V("Z2"))...)

	derived := table.New(4, true)
	r, err := rule.Compile("grandparent_pairs", derived,
		[]rule.Term{rule.V("X1"), rule.V("Z1"), rule.V("X2"), rule.V("Z2")}, body)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r.ResetCells()
	exec.Run(r)

	// Two independent grandparent pairings, (alice,carol) and
	// (dave,frank), combined freely: 2x2 = 4 rows. A freshening bug
	// that let the second expansion's "Y" read the first's binding
	// would instead only ever report the two pairings matched against
	// themselves (or fewer rows), never the full cross product.
	if derived.Len() != 4 {
		t.Fatalf("expected 4 rows (full cross product), got %d", derived.Len())
	}
}

func TestDefinitionExpandWrongArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Expand to panic on an arity mismatch")
		}
	}()
	d := rule.NewDefinition("pair", rule.V("A"), rule.V("B"))
	d.Is(rule.Pred("noop", table.New(2, false), rule.V("A"), rule.V("B")))
	d.Expand(rule.V("X"))
}
