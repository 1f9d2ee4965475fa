package rule

import (
	"fmt"
	"sync/atomic"
)

// Definition is a pure macro: named formal parameters and a body of
// goals, expanded (with its local variables renamed fresh per call
// site) wherever it's used. It owns no table and no rows.
//
// expansionCounter is scoped to this Definition (not a package global)
// and incremented atomically, so concurrent Expand calls on the same
// Definition — plausible once rule bodies are built under
// program.WithWorkerPool — never race and never collide on a site
// number.
type Definition struct {
	Name             string
	Params           []Var
	body             []Goal
	expansionCounter atomic.Int64
}

// NewDefinition declares a definition over the given formal parameters.
// Call Is to set its expansion body before any call site uses it.
func NewDefinition(name string, params ...Var) *Definition {
	return &Definition{Name: name, Params: params}
}

// Is sets the definition's expansion body, expressed in terms of
// Params.
func (d *Definition) Is(body ...Goal) { d.body = body }

// Expand substitutes args positionally for the definition's Params
// throughout its body and renames every other (local) variable to a
// name fresh to this call site, returning the goals to splice into the
// caller's own body.
func (d *Definition) Expand(args ...Term) []Goal {
	if len(args) != len(d.Params) {
		panic(fmt.Sprintf("ted/rule: definition %s expects %d arguments, got %d", d.Name, len(d.Params), len(args)))
	}
	subst := make(map[string]Term, len(d.Params))
	for i, p := range d.Params {
		subst[p.Name] = args[i]
	}
	site := d.expansionCounter.Add(1)
	freshen := func(name string) string {
		return fmt.Sprintf("%s$%s#%d", d.Name, name, site)
	}
	out := make([]Goal, len(d.body))
	for i, g := range d.body {
		out[i] = substitute(g, subst, freshen)
	}
	return out
}

func substitute(g Goal, subst map[string]Term, freshen func(string) string) Goal {
	switch v := g.(type) {
	case *predGoal:
		return &predGoal{Name: v.Name, Table: v.Table, Args: substituteTerms(v.Args, subst, freshen)}
	case *notGoal:
		return &notGoal{Inner: substitute(v.Inner, subst, freshen)}
	case *orGoal:
		return &orGoal{Left: substitute(v.Left, subst, freshen), Right: substitute(v.Right, subst, freshen)}
	case *evalGoal:
		return &evalGoal{
			Target: substituteTerm(v.Target, subst, freshen),
			Inputs: substituteTerms(v.Inputs, subst, freshen),
			Fn:     v.Fn,
		}
	case *aggregateGoal:
		return &aggregateGoal{
			Inner:         substitute(v.Inner, subst, freshen),
			AggregatedVar: substituteVar(v.AggregatedVar, subst, freshen),
			Seed:          v.Seed,
			Fold:          v.Fold,
			Target:        substituteTerm(v.Target, subst, freshen),
		}
	case *optimizeGoal:
		argVars := make([]Var, len(v.ArgVars))
		for i, av := range v.ArgVars {
			argVars[i] = substituteVar(av, subst, freshen)
		}
		return &optimizeGoal{
			Inner:         substitute(v.Inner, subst, freshen),
			ArgVars:       argVars,
			UtilityVar:    substituteVar(v.UtilityVar, subst, freshen),
			Maximize:      v.Maximize,
			ArgTargets:    substituteTerms(v.ArgTargets, subst, freshen),
			UtilityTarget: substituteTerm(v.UtilityTarget, subst, freshen),
		}
	default:
		panic(fmt.Sprintf("ted/rule: unknown goal type %T in definition body", g))
	}
}

func substituteTerm(t Term, subst map[string]Term, freshen func(string) string) Term {
	v, ok := t.(Var)
	if !ok {
		return t
	}
	if repl, ok := subst[v.Name]; ok {
		return repl
	}
	return Var{Name: freshen(v.Name)}
}

func substituteTerms(ts []Term, subst map[string]Term, freshen func(string) string) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = substituteTerm(t, subst, freshen)
	}
	return out
}

func substituteVar(v Var, subst map[string]Term, freshen func(string) string) Var {
	if repl, ok := subst[v.Name]; ok {
		if rv, ok := repl.(Var); ok {
			return rv
		}
	}
	return Var{Name: freshen(v.Name)}
}
