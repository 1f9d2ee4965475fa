// Package rule implements rule bodies, the Mode Analyzer, and rule
// compilation: turning a declarative conjunction of goals into a
// compiled []call.Call chain plus the Value Cells it shares across
// activations.
package rule

// Var names a logical variable local to one rule. Two occurrences of a
// Var with the same Name, anywhere in the rule (head or body), refer to
// the same binding within one activation of that rule.
type Var struct{ Name string }

func (v Var) String() string { return v.Name }

// V is shorthand for Var{Name: name}.
func V(name string) Var { return Var{Name: name} }

// Term is either a Var, the wildcard Any, or any other Go value taken as
// a literal constant to compare columns against.
type Term = any

type wildcard struct{}

func (wildcard) String() string { return "_" }

// Any is the wildcard term: it matches any column value and binds
// nothing, compiling to pattern.Ignore.
var Any = wildcard{}
