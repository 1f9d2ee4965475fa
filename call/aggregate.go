package call

import (
	"github.com/ianhorswill/ted/pattern"
	"github.com/ianhorswill/ted/value"
)

// Aggregate folds an inner goal's solutions into a single accumulator:
// Count, Sum, or a custom fold. Per §4.4, it seeds the accumulator,
// resets the inner goal, iterates it to exhaustion folding the
// aggregated variable's current cell value into the accumulator, and
// matches the result against the output term (a Write target captures
// it). Produces exactly one solution unless a bound Target differs from
// the result, in which case it produces none.
type Aggregate struct {
	Inner         Call
	AggregatedVar *value.Cell
	Seed          any
	Fold          func(acc, v any) any
	Target        pattern.Op
	primed        bool
}

func (a *Aggregate) Reset() { a.primed = true }

func (a *Aggregate) Next() bool {
	if !a.primed {
		return false
	}
	a.primed = false
	acc := a.Seed
	a.Inner.Reset()
	for a.Inner.Next() {
		acc = a.Fold(acc, a.AggregatedVar.Value())
	}
	return a.Target.Match(acc)
}

// Count builds the Fold function for Count(g): one per solution.
func Count(acc, _ any) any {
	n, _ := acc.(int)
	return n + 1
}

// Sum builds the Fold function for Sum(v, g): the running numeric total.
func Sum(acc, v any) any {
	return addNumeric(acc, v)
}

func addNumeric(a, b any) any {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		if ai, ok := a.(int); ok {
			if bi, ok := b.(int); ok {
				return ai + bi
			}
		}
		return af + bf
	}
	panic("ted/call: Sum requires numeric values")
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
