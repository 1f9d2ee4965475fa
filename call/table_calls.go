package call

import (
	"github.com/ianhorswill/ted/index"
	"github.com/ianhorswill/ted/pattern"
	"github.com/ianhorswill/ted/table"
)

// RowSetProbe produces at most one solution: it succeeds iff the fully
// instantiated row it assembles is present in a unique table's
// row-uniqueness set. Selected when every argument is instantiated
// against a unique=true table (strategy priority 1, §4.3).
type RowSetProbe struct {
	Table  *table.Table
	Pat    pattern.Pattern
	primed bool
}

func (c *RowSetProbe) Reset() { c.primed = true }

func (c *RowSetProbe) Next() bool {
	if !c.primed {
		return false
	}
	c.primed = false
	row := c.Pat.AssembleRow()
	_, ok := c.Table.ContainsRow(row)
	return ok
}

// KeyIndexLookup produces at most one solution: the row found by probing
// a Key index on the instantiated key column, pattern-matched against the
// remaining columns. Selected when no RowSetProbe applies but some
// instantiated column carries a Key index (strategy priority 2).
type KeyIndexLookup struct {
	Table  *table.Table
	Index  *index.KeyIndex
	KeyOp  pattern.Op // the Constant or Read op for the key column
	Pat    pattern.Pattern
	primed bool
}

func (c *KeyIndexLookup) Reset() { c.primed = true }

func (c *KeyIndexLookup) Next() bool {
	if !c.primed {
		return false
	}
	c.primed = false
	row := c.Index.RowWithKey(opValue(c.KeyOp))
	if row == index.NoRow {
		return false
	}
	return c.Pat.MatchRow(c.Table.PositionRef(row))
}

// GeneralIndexWalk iterates every row in a General index's chain for an
// instantiated key column, pattern-matching each candidate. Selected
// when no RowSetProbe or Key lookup applies but some instantiated column
// carries a General index (strategy priority 3).
type GeneralIndexWalk struct {
	Table   *table.Table
	Index   *index.GeneralIndex
	KeyOp   pattern.Op
	Pat     pattern.Pattern
	current index.RowNum
}

func (c *GeneralIndexWalk) Reset() {
	c.current = c.Index.RowsWithKey(opValue(c.KeyOp))
}

func (c *GeneralIndexWalk) Next() bool {
	for c.current != index.NoRow {
		row := c.current
		c.current = c.Index.NextChain(row)
		if c.Pat.MatchRow(c.Table.PositionRef(row)) {
			return true
		}
	}
	return false
}

// FullScan iterates every row of the table in insertion order,
// pattern-matching each. The fallback strategy (priority 4) when no
// index applies.
type FullScan struct {
	Table  *table.Table
	Pat    pattern.Pattern
	cursor int
}

func (c *FullScan) Reset() { c.cursor = 0 }

func (c *FullScan) Next() bool {
	for c.cursor < c.Table.Len() {
		row := c.Table.PositionRef(index.RowNum(c.cursor))
		c.cursor++
		if c.Pat.MatchRow(row) {
			return true
		}
	}
	return false
}

// opValue extracts the current value of a non-Write match operation
// (Constant or Read), the two kinds that denote an already-instantiated
// argument.
func opValue(op pattern.Op) any {
	switch o := op.(type) {
	case pattern.Constant:
		return o.Value
	case pattern.Read:
		return o.Cell.Value()
	default:
		panic("ted/call: instantiated argument must be Constant or Read")
	}
}
