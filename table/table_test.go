package table

import (
	"testing"

	"github.com/ianhorswill/ted/index"
)

func TestUniqueTableDedup(t *testing.T) {
	tbl := New(2, true)
	r1, added1, err := tbl.Add(Row{1, "a"})
	if err != nil || !added1 {
		t.Fatalf("expected first add to succeed: %v %v", added1, err)
	}
	r2, added2, err := tbl.Add(Row{1, "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added2 {
		t.Fatalf("expected duplicate add to be a no-op")
	}
	if r1 != r2 {
		t.Fatalf("expected duplicate add to report the original row number")
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected length 1, got %d", tbl.Len())
	}
}

func TestNonUniqueTableAllowsDuplicates(t *testing.T) {
	tbl := New(1, false)
	tbl.Add(Row{"x"})
	tbl.Add(Row{"x"})
	if tbl.Len() != 2 {
		t.Fatalf("expected two distinct row numbers for a non-unique table, got len %d", tbl.Len())
	}
}

func TestGrowthPreservesKeyIndex(t *testing.T) {
	tbl := New(2, false)
	ki := index.NewKeyIndex(0, 16)
	tbl.AttachIndex(ki)
	for i := 0; i < 100; i++ {
		if _, _, err := tbl.Add(Row{i, i * 2}); err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
	}
	for i := 0; i < 100; i++ {
		r := ki.RowWithKey(i)
		if r == index.NoRow {
			t.Fatalf("key %d missing after growth", i)
		}
		row := tbl.PositionRef(r)
		if row[1] != i*2 {
			t.Fatalf("row %d: expected second column %d, got %v", i, i*2, row[1])
		}
	}
	if tbl.Cap() < 128 {
		t.Fatalf("expected capacity to have doubled past 100, got %d", tbl.Cap())
	}
}

func TestClearResetsTableAndIndexes(t *testing.T) {
	tbl := New(1, true)
	ki := index.NewKeyIndex(0, 16)
	tbl.AttachIndex(ki)
	tbl.Add(Row{1})
	tbl.Add(Row{2})
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Fatalf("expected length 0 after clear")
	}
	if ki.RowWithKey(1) != index.NoRow {
		t.Fatalf("expected index cleared")
	}
	if _, ok := tbl.ContainsRow(Row{1}); ok {
		t.Fatalf("expected row-uniqueness set cleared")
	}
}

func TestDuplicateKeyIndexRejectsAdd(t *testing.T) {
	tbl := New(2, false)
	ki := index.NewKeyIndex(0, 16)
	tbl.AttachIndex(ki)
	if _, _, err := tbl.Add(Row{1, "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := tbl.Add(Row{1, "b"}); err == nil {
		t.Fatalf("expected duplicate key error on second row sharing column-0 value")
	}
}
