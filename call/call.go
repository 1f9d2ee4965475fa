// Package call implements the backtrackable Call: one compiled goal's
// iterator over its solutions, specialized to one of the access
// strategies the Mode Analyzer selects (row-set probe, key-index lookup,
// general-index walk, full scan) or to one of the control/aggregation
// primitives (negation, disjunction, functional evaluation, fold,
// optimization).
package call

// Call is a backtrackable iterator for one compiled goal.
//
// Reset prepares the call to produce its first solution; it is invoked
// when the call is entered from the left in a rule's call chain;
// backtracking into it from the right calls Next again without a Reset,
// so it resumes where it left off. Next attempts to
// produce the next solution, writing into any Value Cells bound by the
// call's Write operations as a side effect, and returns false once
// exhausted. Once Next returns false, it keeps returning false until the
// next Reset.
type Call interface {
	Reset()
	Next() bool
}
