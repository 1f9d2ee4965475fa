// Package predicate implements the Predicate kinds: table predicates
// (Row-Table-backed relations with one of three update modes) and the
// Definition macro re-exported from the rule package for API
// ergonomics.
package predicate

import "reflect"

// IndexMode declares what kind of secondary index, if any, a column
// carries.
type IndexMode int

const (
	NoIndex IndexMode = iota
	KeyIndexMode
	GeneralIndexMode
)

func (m IndexMode) String() string {
	switch m {
	case KeyIndexMode:
		return "Key"
	case GeneralIndexMode:
		return "General"
	default:
		return "None"
	}
}

// ColumnSpec describes one column of a table predicate: its name (for
// diagnostics), its declared Go type (for type-mismatch checking at
// AddRow time), and its indexing mode.
type ColumnSpec struct {
	Name  string
	Type  reflect.Type
	Index IndexMode
}

// Column builds a ColumnSpec whose declared type is inferred from a
// zero value of the column's type, e.g. Column("id", 0, KeyIndexMode).
func Column(name string, zero any, mode IndexMode) ColumnSpec {
	return ColumnSpec{Name: name, Type: reflect.TypeOf(zero), Index: mode}
}
