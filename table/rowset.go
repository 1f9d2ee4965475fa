package table

import (
	"github.com/ianhorswill/ted/index"
	"github.com/ianhorswill/ted/value"
)

// rowSet is an open-addressed hash set of row numbers, keyed by the full
// row's value, used to enforce a unique table's distinctness invariant.
type rowSet struct {
	buckets []index.RowNum // index.NoRow marks an empty bucket
}

func newRowSet(capacityHint int) *rowSet {
	rs := &rowSet{buckets: make([]index.RowNum, nextPow2(capacityHint*2))}
	rs.clear()
	return rs
}

func nextPow2(n int) int {
	p := 16
	for p < n {
		p *= 2
	}
	return p
}

func (rs *rowSet) clear() {
	for i := range rs.buckets {
		rs.buckets[i] = index.NoRow
	}
}

func (rs *rowSet) slot(t *Table, row Row) int {
	mask := len(rs.buckets) - 1
	i := int(value.HashRow(row)) & mask
	if i < 0 {
		i = -i
	}
	for {
		r := rs.buckets[i]
		if r == index.NoRow || value.EqualRow(t.PositionRef(r), row) {
			return i
		}
		i = (i + 1) & mask
	}
}

func (rs *rowSet) find(t *Table, row Row) (index.RowNum, bool) {
	r := rs.buckets[rs.slot(t, row)]
	if r == index.NoRow {
		return index.NoRow, false
	}
	return r, true
}

func (rs *rowSet) insert(t *Table, row Row, rowNum index.RowNum) {
	rs.buckets[rs.slot(t, row)] = rowNum
}

func (rs *rowSet) expand(t *Table, newRowCapacity int) {
	old := rs.buckets
	rs.buckets = make([]index.RowNum, nextPow2(newRowCapacity*2))
	rs.clear()
	for _, r := range old {
		if r == index.NoRow {
			continue
		}
		rs.buckets[rs.slot(t, t.PositionRef(r))] = r
	}
}
