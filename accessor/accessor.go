// Package accessor implements the Column Accessor: key-indexed get/set
// helpers used by base-table imperative updates, backing the
// Set(key,column) update-table mechanism.
package accessor

import (
	"fmt"

	"github.com/ianhorswill/ted/index"
	"github.com/ianhorswill/ted/table"
	"github.com/ianhorswill/ted/tederr"
)

// Accessor exposes Get/Set over a base table's column using a Key
// index for O(1) lookup by key. K is the key column's Go type, C the
// data column's Go type — the get/set caller is responsible for the
// type matching what was actually stored (the Row Table itself is
// untyped).
type Accessor[K, C any] struct {
	table     *table.Table
	keyIndex  *index.KeyIndex
	keyColumn int
	dataCol   int
}

// New builds an Accessor for t's keyColumn/dataColumn pair. t must
// already carry a Key index over keyColumn (attached at predicate
// construction time); its absence is fatal at construction, per the
// accessor error-handling contract.
func New[K, C any](t *table.Table, keyColumn, dataColumn int) (*Accessor[K, C], error) {
	for _, idx := range t.Indexes() {
		if ki, ok := idx.(*index.KeyIndex); ok && ki.ColumnNumber() == keyColumn {
			return &Accessor[K, C]{table: t, keyIndex: ki, keyColumn: keyColumn, dataCol: dataColumn}, nil
		}
	}
	return nil, tederr.New(tederr.MissingIndex,
		fmt.Sprintf("accessor: table has no key index on column %d", keyColumn))
}

// Get returns the data column's value for key, and whether a row with
// that key exists (a lookup miss returns the zero value and false,
// rather than raising).
func (a *Accessor[K, C]) Get(key K) (C, bool) {
	var zero C
	rowNum := a.keyIndex.RowWithKey(key)
	if rowNum == index.NoRow {
		return zero, false
	}
	return a.table.PositionRef(rowNum)[a.dataCol].(C), true
}

// TryGet is Get with a caller-supplied default substituted on a miss.
func (a *Accessor[K, C]) TryGet(key K, def C) C {
	if v, ok := a.Get(key); ok {
		return v
	}
	return def
}

// Set mutates the data column of the row with key in place. It is a
// no-op if no row carries that key. A General index over the data
// column is kept consistent: the row is pulled from its old key-bucket
// and reinserted under the new value's bucket.
func (a *Accessor[K, C]) Set(key K, value C) {
	rowNum := a.keyIndex.RowWithKey(key)
	if rowNum == index.NoRow {
		return
	}
	row := a.table.PositionRef(rowNum)
	var generalIndexes []*index.GeneralIndex
	var oldKeys []any
	for _, idx := range a.table.Indexes() {
		if gi, ok := idx.(*index.GeneralIndex); ok && gi.ColumnNumber() == a.dataCol {
			generalIndexes = append(generalIndexes, gi)
			oldKeys = append(oldKeys, row[a.dataCol])
		}
	}
	row[a.dataCol] = value
	for i, gi := range generalIndexes {
		gi.Rekey(rowNum, oldKeys[i], a.table.PositionRef)
	}
}
