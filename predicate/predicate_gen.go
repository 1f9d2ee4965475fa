package predicate

// Predicate1..Predicate8 are thin, per-arity typed front-ends over
// TablePredicate's untyped Row ([]any) storage: one struct, one
// constructor and two methods per arity. The file is written by hand in
// a uniform per-arity shape; no generator for it exists in this module.

type Predicate1[A any] struct{ *TablePredicate }

func NewPredicate1[A any](name string, unique bool, c1 ColumnSpec) Predicate1[A] {
	return Predicate1[A]{NewTablePredicate(name, unique, c1)}
}

func (p Predicate1[A]) AddRow(a A) error { return p.TablePredicate.AddRow(a) }
func (p Predicate1[A]) Fact(a A) error   { return p.TablePredicate.Fact(a) }

type Predicate2[A, B any] struct{ *TablePredicate }

func NewPredicate2[A, B any](name string, unique bool, c1, c2 ColumnSpec) Predicate2[A, B] {
	return Predicate2[A, B]{NewTablePredicate(name, unique, c1, c2)}
}

func (p Predicate2[A, B]) AddRow(a A, b B) error { return p.TablePredicate.AddRow(a, b) }
func (p Predicate2[A, B]) Fact(a A, b B) error   { return p.TablePredicate.Fact(a, b) }

type Predicate3[A, B, C any] struct{ *TablePredicate }

func NewPredicate3[A, B, C any](name string, unique bool, c1, c2, c3 ColumnSpec) Predicate3[A, B, C] {
	return Predicate3[A, B, C]{NewTablePredicate(name, unique, c1, c2, c3)}
}

func (p Predicate3[A, B, C]) AddRow(a A, b B, c C) error { return p.TablePredicate.AddRow(a, b, c) }
func (p Predicate3[A, B, C]) Fact(a A, b B, c C) error   { return p.TablePredicate.Fact(a, b, c) }

type Predicate4[A, B, C, D any] struct{ *TablePredicate }

func NewPredicate4[A, B, C, D any](name string, unique bool, c1, c2, c3, c4 ColumnSpec) Predicate4[A, B, C, D] {
	return Predicate4[A, B, C, D]{NewTablePredicate(name, unique, c1, c2, c3, c4)}
}

func (p Predicate4[A, B, C, D]) AddRow(a A, b B, c C, d D) error {
	return p.TablePredicate.AddRow(a, b, c, d)
}
func (p Predicate4[A, B, C, D]) Fact(a A, b B, c C, d D) error {
	return p.TablePredicate.Fact(a, b, c, d)
}

type Predicate5[A, B, C, D, E any] struct{ *TablePredicate }

func NewPredicate5[A, B, C, D, E any](name string, unique bool, c1, c2, c3, c4, c5 ColumnSpec) Predicate5[A, B, C, D, E] {
	return Predicate5[A, B, C, D, E]{NewTablePredicate(name, unique, c1, c2, c3, c4, c5)}
}

func (p Predicate5[A, B, C, D, E]) AddRow(a A, b B, c C, d D, e E) error {
	return p.TablePredicate.AddRow(a, b, c, d, e)
}
func (p Predicate5[A, B, C, D, E]) Fact(a A, b B, c C, d D, e E) error {
	return p.TablePredicate.Fact(a, b, c, d, e)
}

type Predicate6[A, B, C, D, E, F any] struct{ *TablePredicate }

func NewPredicate6[A, B, C, D, E, F any](name string, unique bool, c1, c2, c3, c4, c5, c6 ColumnSpec) Predicate6[A, B, C, D, E, F] {
	return Predicate6[A, B, C, D, E, F]{NewTablePredicate(name, unique, c1, c2, c3, c4, c5, c6)}
}

func (p Predicate6[A, B, C, D, E, F]) AddRow(a A, b B, c C, d D, e E, f F) error {
	return p.TablePredicate.AddRow(a, b, c, d, e, f)
}
func (p Predicate6[A, B, C, D, E, F]) Fact(a A, b B, c C, d D, e E, f F) error {
	return p.TablePredicate.Fact(a, b, c, d, e, f)
}

type Predicate7[A, B, C, D, E, F, G any] struct{ *TablePredicate }

func NewPredicate7[A, B, C, D, E, F, G any](name string, unique bool, c1, c2, c3, c4, c5, c6, c7 ColumnSpec) Predicate7[A, B, C, D, E, F, G] {
	return Predicate7[A, B, C, D, E, F, G]{NewTablePredicate(name, unique, c1, c2, c3, c4, c5, c6, c7)}
}

func (p Predicate7[A, B, C, D, E, F, G]) AddRow(a A, b B, c C, d D, e E, f F, g G) error {
	return p.TablePredicate.AddRow(a, b, c, d, e, f, g)
}
func (p Predicate7[A, B, C, D, E, F, G]) Fact(a A, b B, c C, d D, e E, f F, g G) error {
	return p.TablePredicate.Fact(a, b, c, d, e, f, g)
}

type Predicate8[A, B, C, D, E, F, G, H any] struct{ *TablePredicate }

func NewPredicate8[A, B, C, D, E, F, G, H any](name string, unique bool, c1, c2, c3, c4, c5, c6, c7, c8 ColumnSpec) Predicate8[A, B, C, D, E, F, G, H] {
	return Predicate8[A, B, C, D, E, F, G, H]{NewTablePredicate(name, unique, c1, c2, c3, c4, c5, c6, c7, c8)}
}

func (p Predicate8[A, B, C, D, E, F, G, H]) AddRow(a A, b B, c C, d D, e E, f F, g G, h H) error {
	return p.TablePredicate.AddRow(a, b, c, d, e, f, g, h)
}
func (p Predicate8[A, B, C, D, E, F, G, H]) Fact(a A, b B, c C, d D, e E, f F, g G, h H) error {
	return p.TablePredicate.Fact(a, b, c, d, e, f, g, h)
}
