package rule

import (
	"fmt"

	"github.com/ianhorswill/ted/call"
	"github.com/ianhorswill/ted/pattern"
	"github.com/ianhorswill/ted/table"
)

// evalGoal computes fn over already-bound inputs and matches (or
// captures) the result against target.
type evalGoal struct {
	Target Term
	Inputs []Term
	Fn     func(args []any) any
}

// Eval is a functional-evaluation goal: fn is applied to the current
// values of inputs (each of which must already be bound by an earlier
// goal, or be a literal constant) and the result is matched against
// target.
func Eval(target Term, fn func(args []any) any, inputs ...Term) Goal {
	return &evalGoal{Target: target, Inputs: inputs, Fn: fn}
}

func (g *evalGoal) addDependencies(map[*table.Table]bool) {}

func (g *evalGoal) compile(st *compileState) (call.Call, error) {
	inputOps := make([]pattern.Op, len(g.Inputs))
	for i, in := range g.Inputs {
		op := st.termOp(in)
		if op.IsWrite() {
			return nil, fmt.Errorf("Eval input %d (%v) is not yet bound", i, in)
		}
		inputOps[i] = op
	}
	targetOp := st.termOp(g.Target)
	return &call.Eval{Target: targetOp, Inputs: inputOps, Fn: g.Fn}, nil
}
