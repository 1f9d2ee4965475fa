package call

import (
	"github.com/ianhorswill/ted/pattern"
	"github.com/ianhorswill/ted/value"
)

// Optimize implements Maximal/Minimal: it iterates an inner goal,
// remembering the best utility seen (ties broken by first-seen, i.e. a
// later equal utility never displaces an earlier one) and the
// corresponding reportable argument values, then writes the best
// arg-tuple and utility. Produces exactly one solution; fails if the
// inner goal has none.
type Optimize struct {
	Inner         Call
	ArgVars       []*value.Cell
	UtilityVar    *value.Cell
	Maximize      bool
	ArgTargets    []pattern.Op
	UtilityTarget pattern.Op
	primed        bool
}

func (o *Optimize) Reset() { o.primed = true }

func (o *Optimize) Next() bool {
	if !o.primed {
		return false
	}
	o.primed = false

	o.Inner.Reset()
	found := false
	var bestUtil any
	bestArgs := make([]any, len(o.ArgVars))
	for o.Inner.Next() {
		u := o.UtilityVar.Value()
		if !found || isBetter(u, bestUtil, o.Maximize) {
			found = true
			bestUtil = u
			for i, c := range o.ArgVars {
				bestArgs[i] = c.Value()
			}
		}
	}
	if !found {
		return false
	}
	// The inner goal left its cells holding the last solution it visited;
	// rebind them to the best one so targets and later goals that read
	// the same variables see the reported tuple.
	for i, c := range o.ArgVars {
		c.Set(bestArgs[i])
	}
	o.UtilityVar.Set(bestUtil)
	for i, target := range o.ArgTargets {
		if !target.Match(bestArgs[i]) {
			return false
		}
	}
	return o.UtilityTarget.Match(bestUtil)
}

func isBetter(candidate, best any, maximize bool) bool {
	cmp := compareOrdered(candidate, best)
	if maximize {
		return cmp > 0
	}
	return cmp < 0
}

// compareOrdered compares two scalar values, returning <0, 0, or >0. It
// supports the numeric and string kinds optimization utilities typically
// range over.
func compareOrdered(a, b any) int {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			default:
				return 0
			}
		}
	}
	panic("ted/call: Maximal/Minimal utility values must be comparable numeric or string values")
}
