package predicate

import (
	"fmt"
	"reflect"

	"github.com/ianhorswill/ted/exec"
	"github.com/ianhorswill/ted/index"
	"github.com/ianhorswill/ted/rule"
	"github.com/ianhorswill/ted/table"
	"github.com/ianhorswill/ted/tederr"
)

// TablePredicate is a named relation backed by a Row Table: either
// populated by direct inserts and input-relation wiring (BaseTable
// mode), recomputed from rules every tick (Rules mode), or recomputed
// by a user procedure every tick (Operator mode). The mode is fixed by
// first use: the first call to If/Fact switches it to Rules, the first
// call to UseOperator switches it to Operator; calling AddRow after
// either, or If after any direct insert, is an error. UseOperator does
// not check for direct inserts.
type TablePredicate struct {
	Name    string
	Columns []ColumnSpec
	Table   *table.Table
	Mode    UpdateMode

	rules []*rule.Rule

	hasDirectRows bool

	initialRows [][]any
	accumulates []*TablePredicate
	setters     []*columnSetter

	operator     func() error
	operatorDeps []*TablePredicate
}

type columnSetter struct {
	Updates   *TablePredicate // rows of (key, value)
	KeyColumn int
	Column    int
}

// NewTablePredicate creates an empty table predicate over columns.
// unique mirrors the Row Table's uniqueness flag. Columns whose Index
// is KeyIndexMode or GeneralIndexMode get the matching secondary index
// attached immediately.
func NewTablePredicate(name string, unique bool, columns ...ColumnSpec) *TablePredicate {
	t := table.New(len(columns), unique)
	for col, spec := range columns {
		switch spec.Index {
		case KeyIndexMode:
			t.AttachIndex(index.NewKeyIndex(col, 16))
		case GeneralIndexMode:
			t.AttachIndex(index.NewGeneralIndex(col, 16))
		}
	}
	return &TablePredicate{
		Name:    name,
		Columns: columns,
		Table:   t,
		Mode:    BaseTable,
	}
}

// Arity is the predicate's column count.
func (p *TablePredicate) Arity() int { return len(p.Columns) }

func (p *TablePredicate) checkRow(row []any) error {
	if len(row) != len(p.Columns) {
		return tederr.New(tederr.ArityMismatch,
			fmt.Sprintf("%s expects %d columns, got %d", p.Name, len(p.Columns), len(row)))
	}
	for i, v := range row {
		want := p.Columns[i].Type
		if want == nil || v == nil {
			continue
		}
		if got := reflect.TypeOf(v); got != want {
			return tederr.New(tederr.TypeMismatch,
				fmt.Sprintf("%s column %q (position %d): expected %s, got %s", p.Name, p.Columns[i].Name, i, want, got))
		}
	}
	return nil
}

// AddRow inserts row directly. Valid only while the predicate is still
// in BaseTable mode; an error once any rule has been declared on it.
func (p *TablePredicate) AddRow(row ...any) error {
	if p.Mode != BaseTable {
		return tederr.New(tederr.AddRowOnIntensional,
			fmt.Sprintf("%s: AddRow on a %s-mode predicate", p.Name, p.Mode))
	}
	if err := p.checkRow(row); err != nil {
		return err
	}
	p.hasDirectRows = true
	if _, _, err := p.Table.Add(row); err != nil {
		return tederr.Wrap(tederr.DuplicateKey, fmt.Sprintf("%s: AddRow", p.Name), err)
	}
	return nil
}

// Fact declares an unconditional rule (a rule with an empty body):
// headArgs are re-derived as a row on every Rules-mode recomputation.
// Use AddRow instead for an ordinary BaseTable predicate.
func (p *TablePredicate) Fact(headArgs ...rule.Term) error {
	return p.If(headArgs, nil)
}

// If declares a rule: head is the predicate applied to headArgs, body
// is the conjunction of goals (nil/empty for a Fact). Declaring a rule
// switches the predicate to Rules mode; it is an error to do so after
// any row has been inserted directly.
func (p *TablePredicate) If(headArgs []rule.Term, body []rule.Goal) error {
	if p.hasDirectRows {
		return tederr.New(tederr.RuleOnExtensional,
			fmt.Sprintf("%s: rule declared after direct rows were inserted", p.Name))
	}
	r, err := rule.Compile(fmt.Sprintf("%s/%d", p.Name, len(p.rules)), p.Table, headArgs, body)
	if err != nil {
		return err
	}
	p.Mode = Rules
	p.rules = append(p.rules, r)
	return nil
}

// Rules returns the predicate's declared rules in declaration order.
func (p *TablePredicate) Rules() []*rule.Rule { return p.rules }

// Initially queues rows to be merged once, before the first tick.
func (p *TablePredicate) Initially(rows ...[]any) {
	p.initialRows = append(p.initialRows, rows...)
}

// SeedInitial applies the queued Initially rows. Called once by the
// Program before its first tick.
func (p *TablePredicate) SeedInitial() error {
	for _, row := range p.initialRows {
		if err := p.AddRow(row...); err != nil {
			return err
		}
	}
	return nil
}

// Accumulates declares input as a source whose current rows are
// appended into p at the start of every tick (BaseTable mode only).
func (p *TablePredicate) Accumulates(input *TablePredicate) {
	p.accumulates = append(p.accumulates, input)
}

// Set declares a per-column updater relation: updates holds (key,
// value) rows; each tick, for every updates row whose key matches a
// row of p (via p's key index on keyColumn), column is overwritten
// with value. Backs the Column Accessor's Set(key,column) mechanism.
func (p *TablePredicate) Set(updates *TablePredicate, keyColumn, column int) {
	p.setters = append(p.setters, &columnSetter{Updates: updates, KeyColumn: keyColumn, Column: column})
}

// UseOperator switches p to Operator mode: fn is invoked every tick
// (once its deps' own updates have completed) to recompute p's
// contents. Per §4.6's Operator update step, p's table is cleared
// before fn runs, so fn only ever sees an empty table to populate.
// fn writes rows through p.Table.Add; p.AddRow rejects Operator-mode
// predicates.
func (p *TablePredicate) UseOperator(fn func(p *TablePredicate) error, deps ...*TablePredicate) {
	p.Mode = Operator
	p.operatorDeps = deps
	p.operator = func() error { return fn(p) }
}

// Dependencies is prerequisites(P): the union of every rule's table
// dependencies (Rules mode), the declared operator dependencies
// (Operator mode), or the Accumulates/Set input tables (BaseTable
// mode) — what the Update Scheduler topologically orders on.
func (p *TablePredicate) Dependencies() []*table.Table {
	seen := map[*table.Table]bool{}
	var deps []*table.Table
	add := func(t *table.Table) {
		if !seen[t] {
			seen[t] = true
			deps = append(deps, t)
		}
	}
	switch p.Mode {
	case Rules:
		for _, r := range p.rules {
			for _, t := range r.Dependencies {
				add(t)
			}
		}
	case Operator:
		for _, dep := range p.operatorDeps {
			add(dep.Table)
		}
	case BaseTable:
		for _, dep := range p.accumulates {
			add(dep.Table)
		}
		for _, s := range p.setters {
			add(s.Updates.Table)
		}
	}
	return deps
}

// RunRules clears the table and runs every declared rule to exhaustion,
// per the Rules update mode's per-tick behavior.
func (p *TablePredicate) RunRules() {
	p.Table.Clear()
	for _, r := range p.rules {
		r.ResetCells()
		exec.Run(r)
	}
}

// RunOperator clears the table, then invokes the declared update
// procedure, per the Operator update mode's per-tick behavior (§4.6).
func (p *TablePredicate) RunOperator() error {
	if p.operator == nil {
		return tederr.New(tederr.Unconfigured, fmt.Sprintf("%s: Operator mode predicate has no update procedure", p.Name))
	}
	p.Table.Clear()
	return p.operator()
}

// RunBaseTable applies this tick's column Set updates, then appends
// every Accumulates input's current rows, per the BaseTable update
// mode's per-tick behavior.
func (p *TablePredicate) RunBaseTable() error {
	for _, s := range p.setters {
		if err := p.applySetter(s); err != nil {
			return err
		}
	}
	for _, input := range p.accumulates {
		for _, row := range input.Table.All() {
			cp := append([]any(nil), row...)
			if err := p.AddRow(cp...); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *TablePredicate) applySetter(s *columnSetter) error {
	var keyIdx *index.KeyIndex
	for _, idx := range p.Table.Indexes() {
		if ki, ok := idx.(*index.KeyIndex); ok && ki.ColumnNumber() == s.KeyColumn {
			keyIdx = ki
			break
		}
	}
	if keyIdx == nil {
		return tederr.New(tederr.MissingIndex,
			fmt.Sprintf("%s: Set requires a key index on column %d", p.Name, s.KeyColumn))
	}
	var generalIndexes []*index.GeneralIndex
	for _, idx := range p.Table.Indexes() {
		if gi, ok := idx.(*index.GeneralIndex); ok && gi.ColumnNumber() == s.Column {
			generalIndexes = append(generalIndexes, gi)
		}
	}
	for _, updateRow := range s.Updates.Table.All() {
		rowNum := keyIdx.RowWithKey(updateRow[0])
		if rowNum == index.NoRow {
			continue
		}
		row := p.Table.PositionRef(rowNum)
		oldValue := row[s.Column]
		row[s.Column] = updateRow[1]
		for _, gi := range generalIndexes {
			gi.Rekey(rowNum, oldValue, p.Table.PositionRef)
		}
	}
	return nil
}
