package accessor_test

import (
	"testing"

	"github.com/ianhorswill/ted/accessor"
	"github.com/ianhorswill/ted/index"
	"github.com/ianhorswill/ted/table"
)

func TestGetSetRoundTrip(t *testing.T) {
	people := table.New(2, false)
	people.AttachIndex(index.NewKeyIndex(0, 16))
	people.Add(table.Row{"alice", 30})
	people.Add(table.Row{"bob", 25})

	age, err := accessor.New[string, int](people, 0, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v, ok := age.Get("alice"); !ok || v != 30 {
		t.Fatalf("expected (30,true), got (%v,%v)", v, ok)
	}
	if _, ok := age.Get("carol"); ok {
		t.Fatal("expected a miss for a key not present")
	}
	if v := age.TryGet("carol", -1); v != -1 {
		t.Fatalf("expected default -1, got %d", v)
	}

	age.Set("alice", 31)
	if v, _ := age.Get("alice"); v != 31 {
		t.Fatalf("expected updated age 31, got %d", v)
	}
}

func TestMissingKeyIndexErrors(t *testing.T) {
	people := table.New(2, false)
	if _, err := accessor.New[string, int](people, 0, 1); err == nil {
		t.Fatal("expected an error constructing an accessor without a key index")
	}
}

func TestSetRekeysGeneralIndex(t *testing.T) {
	people := table.New(2, false)
	people.AttachIndex(index.NewKeyIndex(0, 16))
	dept := index.NewGeneralIndex(1, 16)
	people.AttachIndex(dept)
	people.Add(table.Row{"alice", "eng"})
	people.Add(table.Row{"bob", "eng"})

	deptAcc, err := accessor.New[string, string](people, 0, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	deptAcc.Set("alice", "sales")

	row := dept.RowsWithKey("eng")
	count := 0
	for row != index.NoRow {
		count++
		row = dept.NextChain(row)
	}
	if count != 1 {
		t.Fatalf("expected 1 row left in eng bucket, got %d", count)
	}
	row = dept.RowsWithKey("sales")
	if row == index.NoRow {
		t.Fatal("expected alice to appear in the sales bucket")
	}
}
