package rule

import (
	"fmt"

	"github.com/ianhorswill/ted/call"
	"github.com/ianhorswill/ted/table"
)

// predGoal looks up rows of one table, the ordinary conjunct of a rule
// body (and the form a recursive self-reference takes).
type predGoal struct {
	Name  string
	Table *table.Table
	Args  []Term
}

// Pred is a goal over predicate name's table, matching/binding args
// against its columns left to right.
func Pred(name string, t *table.Table, args ...Term) Goal {
	return &predGoal{Name: name, Table: t, Args: args}
}

func (g *predGoal) addDependencies(deps map[*table.Table]bool) { deps[g.Table] = true }

func (g *predGoal) compile(st *compileState) (call.Call, error) {
	if len(g.Args) != g.Table.Arity() {
		return nil, fmt.Errorf("predicate %s expects %d arguments, got %d", g.Name, g.Table.Arity(), len(g.Args))
	}
	pat := st.pattern(g.Args)
	return chooseStrategy(g.Table, pat), nil
}

// notGoal succeeds once, binding nothing, iff Inner has no solution.
type notGoal struct{ Inner Goal }

// Not negates inner: the goal succeeds (without adding bindings) iff
// inner has no solution. Every variable inner reads must already be
// bound by an earlier goal in the same body.
func Not(inner Goal) Goal { return &notGoal{Inner: inner} }

func (g *notGoal) addDependencies(deps map[*table.Table]bool) { g.Inner.addDependencies(deps) }

func (g *notGoal) compile(st *compileState) (call.Call, error) {
	inner, err := g.Inner.compile(st)
	if err != nil {
		return nil, err
	}
	return &call.Negation{Inner: inner}, nil
}

// orGoal tries left's solutions, then right's.
type orGoal struct{ Left, Right Goal }

// Or tries left's solutions first, then right's once left is exhausted.
func Or(left, right Goal) Goal { return &orGoal{Left: left, Right: right} }

func (g *orGoal) addDependencies(deps map[*table.Table]bool) {
	g.Left.addDependencies(deps)
	g.Right.addDependencies(deps)
}

func (g *orGoal) compile(st *compileState) (call.Call, error) {
	left, err := g.Left.compile(st)
	if err != nil {
		return nil, err
	}
	right, err := g.Right.compile(st)
	if err != nil {
		return nil, err
	}
	return &call.Disjunction{Left: left, Right: right}, nil
}
