package rule

import (
	"testing"

	"github.com/ianhorswill/ted/call"
	"github.com/ianhorswill/ted/index"
	"github.com/ianhorswill/ted/table"
)

func TestCompileSimpleJoin(t *testing.T) {
	parent := table.New(2, true)
	ancestor := table.New(2, true)

	parent.Add(table.Row{"alice", "bob"})
	parent.Add(table.Row{"bob", "carol"})

	r, err := Compile("ancestor_base", ancestor, []Term{V("X"), V("Y")}, []Goal{
		Pred("parent", parent, V("X"), V("Y")),
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(r.Dependencies) != 1 || r.Dependencies[0] != parent {
		t.Fatalf("expected dependency on parent table, got %v", r.Dependencies)
	}

	r.ResetCells()
	count := 0
	for _, c := range r.Body {
		c.Reset()
	}
	for r.Body[0].Next() {
		row := r.Head.AssembleRow()
		ancestor.Add(row)
		count++
	}
	if count != 2 {
		t.Fatalf("expected 2 solutions, got %d", count)
	}
	if ancestor.Len() != 2 {
		t.Fatalf("expected 2 rows in ancestor, got %d", ancestor.Len())
	}
}

func TestCompileUninstantiatedHeadErrors(t *testing.T) {
	parent := table.New(2, true)
	derived := table.New(3, true)

	_, err := Compile("bad", derived, []Term{V("X"), V("Y"), V("Z")}, []Goal{
		Pred("parent", parent, V("X"), V("Y")),
	})
	if err == nil {
		t.Fatal("expected an error for an unbound head variable")
	}
}

func TestCompileChoosesKeyIndexLookup(t *testing.T) {
	people := table.New(2, false)
	ki := index.NewKeyIndex(0, 16)
	people.AttachIndex(ki)
	people.Add(table.Row{"alice", 30})
	people.Add(table.Row{"bob", 25})

	derived := table.New(1, true)
	r, err := Compile("age_of_alice", derived, []Term{V("Age")}, []Goal{
		Pred("people", people, "alice", V("Age")),
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	lookup, ok := r.Body[0].(*call.KeyIndexLookup)
	if !ok {
		t.Fatalf("expected a KeyIndexLookup, got %T", r.Body[0])
	}
	lookup.Reset()
	if !lookup.Next() {
		t.Fatal("expected one solution")
	}
	if age := r.Head.AssembleRow()[0]; age != 30 {
		t.Fatalf("expected age 30, got %v", age)
	}
	if lookup.Next() {
		t.Fatal("expected exactly one solution")
	}
}
