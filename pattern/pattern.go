// Package pattern implements Match Operations and Patterns: the
// per-column binding directive a compiled goal uses to test or capture
// one row's columns against the current rule activation's Value Cells.
package pattern

import (
	"fmt"

	"github.com/ianhorswill/ted/value"
)

// Op is one column's Match Operation. Implementations are immutable once
// built; the cell a Read or Write refers to is shared with every other
// goal in the rule body that mentions the same logical variable.
type Op interface {
	// Match tests (and, for Write, captures) the op against a column
	// value x, reporting success.
	Match(x any) bool
	// IsWrite reports whether this op is a Write (used to decide
	// "instantiated" and to detect uninstantiated rule heads).
	IsWrite() bool
	fmt.Stringer
}

// Constant succeeds iff the column equals a fixed literal.
type Constant struct{ Value any }

func (c Constant) Match(x any) bool { return value.Equal(c.Value, x) }
func (c Constant) IsWrite() bool    { return false }
func (c Constant) String() string   { return fmt.Sprintf("%v", c.Value) }

// Read succeeds iff the column equals the current binding of an
// already-bound variable.
type Read struct{ Cell *value.Cell }

func (r Read) Match(x any) bool { return value.Equal(r.Cell.Value(), x) }
func (r Read) IsWrite() bool    { return false }
func (r Read) String() string   { return fmt.Sprintf("=%v", r.Cell) }

// Write always succeeds, capturing the column into a first-bound
// variable's cell.
type Write struct{ Cell *value.Cell }

func (w Write) Match(x any) bool {
	w.Cell.Set(x)
	return true
}
func (w Write) IsWrite() bool  { return true }
func (w Write) String() string { return fmt.Sprintf("?%v", w.Cell) }

// Ignore always succeeds and binds nothing; used for columns the rule
// never inspects.
type Ignore struct{}

func (Ignore) Match(any) bool { return true }
func (Ignore) IsWrite() bool  { return false }
func (Ignore) String() string { return "_" }

// Pattern is an ordered sequence of Match Operations, one per column of
// the row type it matches.
type Pattern []Op

// IsInstantiated reports whether every operation is Constant or Read (no
// Write), meaning the pattern can only probe an existing row rather than
// search for one.
func (p Pattern) IsInstantiated() bool {
	for _, op := range p {
		if op.IsWrite() {
			return false
		}
	}
	return true
}

// HasUnboundWrite reports whether the pattern contains a Write — used to
// detect an uninstantiated rule head at rule-declaration time.
func (p Pattern) HasUnboundWrite() bool {
	for _, op := range p {
		if op.IsWrite() {
			return true
		}
	}
	return false
}

// MatchRow applies the pattern against an existing row column by column,
// short-circuiting (and performing any Writes already attempted) on the
// first failing column. A later candidate row overwrites any cell a
// failed attempt touched, so partial writes from a rejected row are
// always superseded before being read.
func (p Pattern) MatchRow(row []any) bool {
	if len(p) != len(row) {
		return false
	}
	for i, op := range p {
		if !op.Match(row[i]) {
			return false
		}
	}
	return true
}

// AssembleRow evaluates the pattern purely from its Constant values and
// bound cells, producing the row it denotes. Used to build the probe row
// for a RowSet probe and to emit a rule head's row.
func (p Pattern) AssembleRow() []any {
	row := make([]any, len(p))
	for i, op := range p {
		switch o := op.(type) {
		case Constant:
			row[i] = o.Value
		case Read:
			row[i] = o.Cell.Value()
		case Write:
			row[i] = o.Cell.Value()
		case Ignore:
			row[i] = nil
		}
	}
	return row
}

func (p Pattern) String() string {
	s := "("
	for i, op := range p {
		if i > 0 {
			s += ", "
		}
		s += op.String()
	}
	return s + ")"
}
