package predicate

import "github.com/ianhorswill/ted/rule"

// Definition is the pure-macro predicate kind: re-exported from the
// rule package, where it lives alongside the Goal implementations its
// expansion needs direct access to.
type Definition = rule.Definition

// NewDefinition declares a definition over the given formal parameters.
func NewDefinition(name string, params ...rule.Var) *Definition {
	return rule.NewDefinition(name, params...)
}
