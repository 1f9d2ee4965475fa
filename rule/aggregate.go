package rule

import (
	"github.com/ianhorswill/ted/call"
	"github.com/ianhorswill/ted/table"
	"github.com/ianhorswill/ted/value"
)

// aggregateGoal folds every solution of Inner into a single accumulator,
// then matches the result against Target. It produces at most one
// solution: exactly one when Target is an unbound variable or the
// wildcard (an empty Inner folds the seed through zero iterations),
// none when a bound Target differs from the folded result.
type aggregateGoal struct {
	Inner         Goal
	AggregatedVar Var
	Seed          any
	Fold          func(acc, v any) any
	Target        Term
}

// Aggregate builds a custom fold: inner is run to exhaustion, folding
// aggregated's bound value into an accumulator seeded with seed via
// fold, and the result is matched against target.
func Aggregate(inner Goal, aggregated Var, seed any, fold func(acc, v any) any, target Term) Goal {
	return &aggregateGoal{Inner: inner, AggregatedVar: aggregated, Seed: seed, Fold: fold, Target: target}
}

// Count builds a goal counting inner's solutions into target.
func Count(inner Goal, target Term) Goal {
	return &aggregateGoal{Inner: inner, AggregatedVar: Var{Name: "$count"}, Seed: 0, Fold: call.Count, Target: target}
}

// Sum builds a goal summing aggregated's bound value across inner's
// solutions into target.
func Sum(inner Goal, aggregated Var, target Term) Goal {
	return &aggregateGoal{Inner: inner, AggregatedVar: aggregated, Seed: 0, Fold: call.Sum, Target: target}
}

func (g *aggregateGoal) addDependencies(deps map[*table.Table]bool) { g.Inner.addDependencies(deps) }

func (g *aggregateGoal) compile(st *compileState) (call.Call, error) {
	inner, err := g.Inner.compile(st)
	if err != nil {
		return nil, err
	}
	var cell *value.Cell
	if g.AggregatedVar.Name == "$count" {
		cell = value.NewCell()
	} else {
		cell = st.cellFor(g.AggregatedVar)
	}
	targetOp := st.termOp(g.Target)
	return &call.Aggregate{Inner: inner, AggregatedVar: cell, Seed: g.Seed, Fold: g.Fold, Target: targetOp}, nil
}
