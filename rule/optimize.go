package rule

import (
	"fmt"

	"github.com/ianhorswill/ted/call"
	"github.com/ianhorswill/ted/pattern"
	"github.com/ianhorswill/ted/table"
	"github.com/ianhorswill/ted/value"
)

// optimizeGoal runs Inner to exhaustion, remembers the solution with the
// best UtilityVar binding (first-seen wins ties), and matches the
// best-seen argument and utility values against ArgTargets/UtilityTarget.
// Fails if Inner has no solution.
type optimizeGoal struct {
	Inner         Goal
	ArgVars       []Var
	UtilityVar    Var
	Maximize      bool
	ArgTargets    []Term
	UtilityTarget Term
}

// Maximal builds a goal reporting the argVars/utilityVar binding from
// inner's solutions with the greatest utilityVar value.
func Maximal(inner Goal, argVars []Var, utilityVar Var, argTargets []Term, utilityTarget Term) Goal {
	return &optimizeGoal{Inner: inner, ArgVars: argVars, UtilityVar: utilityVar, Maximize: true, ArgTargets: argTargets, UtilityTarget: utilityTarget}
}

// Minimal builds a goal reporting the argVars/utilityVar binding from
// inner's solutions with the least utilityVar value.
func Minimal(inner Goal, argVars []Var, utilityVar Var, argTargets []Term, utilityTarget Term) Goal {
	return &optimizeGoal{Inner: inner, ArgVars: argVars, UtilityVar: utilityVar, Maximize: false, ArgTargets: argTargets, UtilityTarget: utilityTarget}
}

func (g *optimizeGoal) addDependencies(deps map[*table.Table]bool) { g.Inner.addDependencies(deps) }

func (g *optimizeGoal) compile(st *compileState) (call.Call, error) {
	inner, err := g.Inner.compile(st)
	if err != nil {
		return nil, err
	}
	if len(g.ArgVars) != len(g.ArgTargets) {
		return nil, fmt.Errorf("Maximal/Minimal arg count mismatch: %d vars, %d targets", len(g.ArgVars), len(g.ArgTargets))
	}
	argCells := make([]*value.Cell, len(g.ArgVars))
	argTargetOps := make([]pattern.Op, len(g.ArgTargets))
	for i, v := range g.ArgVars {
		argCells[i] = st.cellFor(v)
		argTargetOps[i] = st.termOp(g.ArgTargets[i])
	}
	utilCell := st.cellFor(g.UtilityVar)
	utilTargetOp := st.termOp(g.UtilityTarget)
	return &call.Optimize{
		Inner:         inner,
		ArgVars:       argCells,
		UtilityVar:    utilCell,
		Maximize:      g.Maximize,
		ArgTargets:    argTargetOps,
		UtilityTarget: utilTargetOp,
	}, nil
}
