// Package index implements the Key and General secondary indexes over a
// Row Table: open-addressed hash tables with linear probing, keyed by a
// projection of one column.
package index

import (
	"errors"

	"github.com/ianhorswill/ted/value"
)

// ErrDuplicateKey is returned by a Key index's OnAppend when the new
// row's key column collides with an already-indexed row, which would
// break the index's declared uniqueness invariant.
var ErrDuplicateKey = errors.New("ted/index: duplicate key violates key index uniqueness")

// RowNum identifies a row by its position in the owning Row Table.
type RowNum uint32

// NoRow is the sentinel "no such row" value, and also the empty-bucket
// marker in both index variants' hash tables.
const NoRow RowNum = ^RowNum(0)

// Index is the contract a Row Table uses to maintain a secondary index
// incrementally as rows are appended, and to notify it when the table's
// backing array grows.
type Index interface {
	// ColumnNumber is the argument position this index projects its key
	// from.
	ColumnNumber() int
	// OnAppend is called by the Row Table immediately after a row is
	// placed at rowNum (but before the table's logical length is
	// incremented), with row available via the getRow callback. It
	// fails if the row would violate the index's own uniqueness
	// invariant (a Key index whose key column already holds a different
	// row's value).
	OnAppend(rowNum RowNum, getRow func(RowNum) []any) error
	// Clear drops all entries (called when the owning table is cleared).
	Clear()
	// Expand grows the index's internal capacity to match a table
	// resize to newRowCapacity.
	Expand(newRowCapacity int)
}

func nextPow2(n int) int {
	p := 16
	for p < n {
		p *= 2
	}
	return p
}

func keyHash(k any) uint64 {
	return value.HashAny(k)
}

func keyEqual(a, b any) bool {
	return value.Equal(a, b)
}
