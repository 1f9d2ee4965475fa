// Package value implements the Value Cell: a mutable, per-rule-activation
// slot holding the current binding of one logical variable.
//
// Cells are shared by reference: every Pattern built for a rule that
// mentions the same source-level variable is compiled against the same
// *Cell, so a Write performed by an early goal is visible to a Read
// performed by a later goal in the same body.
package value

import "fmt"

// Cell holds the current binding of a logical variable within one rule's
// activation frame. It is exclusively read and written by the rule's call
// chain during one evaluation; between evaluations it must be reset.
type Cell struct {
	value any
	bound bool
}

// NewCell returns an unbound cell.
func NewCell() *Cell {
	return &Cell{}
}

// Bound reports whether the cell currently holds a value.
func (c *Cell) Bound() bool {
	return c.bound
}

// Value returns the cell's current binding. Calling it on an unbound cell
// returns the zero value (nil); callers that care should check Bound first.
func (c *Cell) Value() any {
	return c.value
}

// Set binds the cell to v.
func (c *Cell) Set(v any) {
	c.value = v
	c.bound = true
}

// Reset clears the cell back to unbound, as required between rule
// invocations (the executor's contract leaves cells in an unspecified
// state after it returns).
func (c *Cell) Reset() {
	c.value = nil
	c.bound = false
}

func (c *Cell) String() string {
	if !c.bound {
		return "_"
	}
	return fmt.Sprintf("%v", c.value)
}
