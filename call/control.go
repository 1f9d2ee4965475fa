package call

// Negation succeeds exactly once, with no new bindings, iff its inner
// goal has no solution. Per §4.4: "the negated goal's call is reset and
// stepped once; if it succeeds, negation fails; otherwise negation
// succeeds once."
type Negation struct {
	Inner     Call
	consumed  bool
	succeeded bool
}

func (n *Negation) Reset() {
	n.consumed = false
}

func (n *Negation) Next() bool {
	if n.consumed {
		return false
	}
	n.consumed = true
	n.Inner.Reset()
	n.succeeded = !n.Inner.Next()
	return n.succeeded
}

// Disjunction tries Left's solutions first; once Left is exhausted, it
// resets Right and tries Right's solutions. Implicit conjunction (body
// order) needs no Call of its own — it's the chaining the Rule Executor
// performs directly over the compiled call slice.
type Disjunction struct {
	Left, Right Call
	onRight     bool
}

func (d *Disjunction) Reset() {
	d.onRight = false
	d.Left.Reset()
}

func (d *Disjunction) Next() bool {
	if !d.onRight {
		if d.Left.Next() {
			return true
		}
		d.onRight = true
		d.Right.Reset()
	}
	return d.Right.Next()
}
