package rule

import (
	"fmt"

	"github.com/ianhorswill/ted/call"
	"github.com/ianhorswill/ted/index"
	"github.com/ianhorswill/ted/pattern"
	"github.com/ianhorswill/ted/table"
	"github.com/ianhorswill/ted/value"
)

// Goal is one conjunct of a rule's body: a table lookup, a negation, a
// disjunction, a functional Eval, or an Aggregate/Maximal/Minimal
// derived goal. Goals are built with the constructor functions in this
// package (Pred, Not, Or, Eval, Count, Sum, Aggregate, Maximal, Minimal)
// and turned into a call.Call chain by Compile.
type Goal interface {
	compile(st *compileState) (call.Call, error)
	addDependencies(deps map[*table.Table]bool)
}

// compileState is the Mode Analyzer's working state: the left-to-right
// record of which rule-local variables have already been bound, so each
// goal's arguments compile to Write (first occurrence) or Read
// (subsequent occurrences).
type compileState struct {
	cells map[string]*value.Cell
}

func newCompileState() *compileState {
	return &compileState{cells: map[string]*value.Cell{}}
}

// cellFor returns the Cell for v, creating it (without marking any
// argument position as its binding site) if this is the first mention.
func (st *compileState) cellFor(v Var) *value.Cell {
	if c, ok := st.cells[v.Name]; ok {
		return c
	}
	c := value.NewCell()
	st.cells[v.Name] = c
	return c
}

// termOp compiles one Term into a Match Operation: Ignore for the
// wildcard, Write for a variable's first mention, Read for a later
// mention, Constant for anything else.
func (st *compileState) termOp(t Term) pattern.Op {
	switch v := t.(type) {
	case wildcard:
		return pattern.Ignore{}
	case Var:
		if c, seen := st.cells[v.Name]; seen {
			return pattern.Read{Cell: c}
		}
		c := value.NewCell()
		st.cells[v.Name] = c
		return pattern.Write{Cell: c}
	default:
		return pattern.Constant{Value: t}
	}
}

func (st *compileState) pattern(args []Term) pattern.Pattern {
	pat := make(pattern.Pattern, len(args))
	for i, t := range args {
		pat[i] = st.termOp(t)
	}
	return pat
}

// chooseStrategy implements the Mode Analyzer's access-strategy
// selection: unique RowSet probe, then Key-index lookup, then
// General-index walk, then full scan, in that priority order.
func chooseStrategy(t *table.Table, pat pattern.Pattern) call.Call {
	if t.Unique() && pat.IsInstantiated() {
		return &call.RowSetProbe{Table: t, Pat: pat}
	}
	for _, idx := range t.Indexes() {
		if ki, ok := idx.(*index.KeyIndex); ok {
			col := ki.ColumnNumber()
			if !pat[col].IsWrite() {
				return &call.KeyIndexLookup{Table: t, Index: ki, KeyOp: pat[col], Pat: pat}
			}
		}
	}
	for _, idx := range t.Indexes() {
		if gi, ok := idx.(*index.GeneralIndex); ok {
			col := gi.ColumnNumber()
			if !pat[col].IsWrite() {
				return &call.GeneralIndexWalk{Table: t, Index: gi, KeyOp: pat[col], Pat: pat}
			}
		}
	}
	return &call.FullScan{Table: t, Pat: pat}
}

// Rule is a compiled rule: a backtracking chain of Calls over the body,
// the head Pattern to assemble and emit into Owner on every complete
// success, the Value Cells shared across the chain (reset before each
// activation), and the tables this rule reads from (for the Update
// Scheduler's dependency ordering).
type Rule struct {
	Name         string
	Owner        *table.Table
	Body         []call.Call
	Head         pattern.Pattern
	Cells        []*value.Cell
	Dependencies []*table.Table
}

// ResetCells unbinds every Value Cell the rule uses, in preparation for
// a fresh activation. exec.Run does not call it; callers such as
// TablePredicate.RunRules call it before each run of the rule.
func (r *Rule) ResetCells() {
	for _, c := range r.Cells {
		c.Reset()
	}
}

// Compile performs the Mode Analyzer's left-to-right binding analysis
// over body, building a compiled Call chain and the head Pattern that
// assembles owner's rows. It reports an error if owner's arity doesn't
// match headArgs, or if the head mentions a variable never bound by the
// body (the uninstantiated-head error).
func Compile(name string, owner *table.Table, headArgs []Term, body []Goal) (*Rule, error) {
	if len(headArgs) != owner.Arity() {
		return nil, fmt.Errorf("ted/rule: %s head expects %d arguments, got %d", name, owner.Arity(), len(headArgs))
	}
	st := newCompileState()
	deps := map[*table.Table]bool{}
	calls := make([]call.Call, 0, len(body))
	for i, g := range body {
		c, err := g.compile(st)
		if err != nil {
			return nil, fmt.Errorf("ted/rule: %s goal %d: %w", name, i, err)
		}
		calls = append(calls, c)
		g.addDependencies(deps)
	}
	headPat := st.pattern(headArgs)
	if headPat.HasUnboundWrite() {
		return nil, fmt.Errorf("ted/rule: %s head contains a variable never bound by its body", name)
	}
	cells := make([]*value.Cell, 0, len(st.cells))
	for _, c := range st.cells {
		cells = append(cells, c)
	}
	dependencies := make([]*table.Table, 0, len(deps))
	for t := range deps {
		dependencies = append(dependencies, t)
	}
	return &Rule{
		Name:         name,
		Owner:        owner,
		Body:         calls,
		Head:         headPat,
		Cells:        cells,
		Dependencies: dependencies,
	}, nil
}
