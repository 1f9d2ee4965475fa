// Package exec implements the Rule Executor: the backtracking driver
// that runs one compiled rule.Rule's call chain to exhaustion, emitting
// the head pattern into the rule's owning table on every complete
// success.
package exec

import "github.com/ianhorswill/ted/rule"

// Run drives r's compiled body to exhaustion:
//
//	i = 0
//	calls[0].reset()
//	while i >= 0:
//	   if calls[i].nextSolution():
//	       if i == n-1: emit(); i stays (look for more solutions)
//	       else: i++; calls[i].reset()
//	   else:
//	       i--
//
// A rule with an empty body (a Fact) emits its head exactly once,
// unconditionally. After Run returns, every Value Cell the rule uses is
// in an unspecified state; call r.ResetCells() before the next Run.
func Run(r *rule.Rule) {
	n := len(r.Body)
	if n == 0 {
		r.Owner.Add(r.Head.AssembleRow())
		return
	}
	i := 0
	r.Body[0].Reset()
	for i >= 0 {
		if r.Body[i].Next() {
			if i == n-1 {
				r.Owner.Add(r.Head.AssembleRow())
			} else {
				i++
				r.Body[i].Reset()
			}
		} else {
			i--
		}
	}
}
