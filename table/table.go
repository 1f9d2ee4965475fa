// Package table implements the Row Table: a growable, columnar store for
// one relation's rows, with optional row-uniqueness enforcement and a set
// of attached secondary indexes kept incrementally up to date.
package table

import (
	"github.com/ianhorswill/ted/index"
)

// Row is a type-erased heterogeneous tuple: one value per column. TED
// generalizes the per-arity row structs a hand-written engine would need
// (arity 1..8) into this single representation, with typed front-ends
// layered over it (see the predicate package's Predicate1..Predicate8).
type Row = []any

// Table is a Row Table for one relation. Capacity is always a power of
// two, at least 16; logical length Len() is always <= cap(data).
type Table struct {
	arity   int
	data    []Row
	length  int
	unique  bool
	rowSet  *rowSet // non-nil iff unique
	indexes []index.Index
}

// New creates an empty Row Table for a relation of the given arity.
// If unique is true, Add rejects (silently, as a no-op) a row identical
// to one already present.
func New(arity int, unique bool) *Table {
	t := &Table{
		arity:  arity,
		data:   make([]Row, 16),
		unique: unique,
	}
	if unique {
		t.rowSet = newRowSet(16)
	}
	return t
}

// Arity returns the table's column count.
func (t *Table) Arity() int { return t.arity }

// Len returns the number of rows currently stored.
func (t *Table) Len() int { return t.length }

// Cap returns the current backing capacity (always a power of two, >=16).
func (t *Table) Cap() int { return len(t.data) }

// Unique reports whether this table enforces row uniqueness.
func (t *Table) Unique() bool { return t.unique }

// AttachIndex registers an index to be kept incrementally up to date as
// rows are appended. Only rows added after the call are indexed: rows
// already in the table are not added to idx, so it should be called
// before any rows are added.
func (t *Table) AttachIndex(idx index.Index) {
	t.indexes = append(t.indexes, idx)
}

// Indexes returns the table's attached indexes in attachment order.
func (t *Table) Indexes() []index.Index { return t.indexes }

// PositionRef returns row i by reference (as the underlying slice
// element) for O(1) in-place reads and writes by the rule executor's hot
// paths.
func (t *Table) PositionRef(i index.RowNum) Row {
	return t.data[i]
}

// ContainsRow reports whether row is present, and its row number if so.
// Requires Unique.
func (t *Table) ContainsRow(row Row) (index.RowNum, bool) {
	if !t.unique {
		panic("ted/table: ContainsRow requires a unique table")
	}
	return t.rowSet.find(t, row)
}

// Add appends row, growing storage and notifying every index ahead of
// the append completing. If the table is unique and an identical row is
// already present, Add is a no-op and returns (existingRowNum, false).
// Add never fails except when an attached index's own invariant (a Key
// index's per-row uniqueness) is violated, which is a configuration
// error in the schema, not a data condition Add can recover from.
func (t *Table) Add(row Row) (index.RowNum, bool, error) {
	if len(row) != t.arity {
		panic("ted/table: row arity mismatch")
	}
	if t.unique {
		if existing, ok := t.rowSet.find(t, row); ok {
			return existing, false, nil
		}
	}
	if t.length == len(t.data) {
		t.grow()
	}
	rowNum := index.RowNum(t.length)
	t.data[rowNum] = row
	for _, idx := range t.indexes {
		if err := idx.OnAppend(rowNum, t.PositionRef); err != nil {
			return index.NoRow, false, err
		}
	}
	if t.unique {
		t.rowSet.insert(t, row, rowNum)
	}
	t.length++
	return rowNum, true, nil
}

// Clear empties the table: length resets to zero, the row-uniqueness set
// and every attached index are cleared. Capacity is retained.
func (t *Table) Clear() {
	t.length = 0
	if t.unique {
		t.rowSet.clear()
	}
	for _, idx := range t.indexes {
		idx.Clear()
	}
}

// All returns every row currently stored, in insertion order — the order
// a Full Scan must preserve.
func (t *Table) All() []Row {
	return t.data[:t.length]
}

func (t *Table) grow() {
	newCap := len(t.data) * 2
	grown := make([]Row, newCap)
	copy(grown, t.data)
	t.data = grown
	for _, idx := range t.indexes {
		idx.Expand(newCap)
	}
	if t.unique {
		t.rowSet.expand(t, newCap)
	}
}
