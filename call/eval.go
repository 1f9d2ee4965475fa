package call

import "github.com/ianhorswill/ted/pattern"

// Eval computes a functional expression over already-bound inputs and
// matches (or captures) the result against a target Match Operation.
// Produces at most one solution.
type Eval struct {
	Target pattern.Op
	Inputs []pattern.Op // each must be Constant or Read
	Fn     func(args []any) any
	primed bool
}

func (e *Eval) Reset() { e.primed = true }

func (e *Eval) Next() bool {
	if !e.primed {
		return false
	}
	e.primed = false
	args := make([]any, len(e.Inputs))
	for i, op := range e.Inputs {
		args[i] = opValue(op)
	}
	return e.Target.Match(e.Fn(args))
}
