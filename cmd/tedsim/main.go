// Package main demonstrates the TED deductive database engine end to
// end, running the documented scenarios in sequence: ancestor closure,
// key-lookup-vs-scan equivalence, aggregation, maximal, per-tick
// accumulation, and column Set.
package main

import (
	"context"
	"fmt"

	"github.com/ianhorswill/ted/predicate"
	"github.com/ianhorswill/ted/program"
	"github.com/ianhorswill/ted/rule"
)

func main() {
	fmt.Println("=== TED Scenarios ===")
	fmt.Println()

	ancestorClosure()
	keyLookupVsScan()
	aggregation()
	maximal()
	perTickAccumulation()
	columnSet()
}

// ancestorClosure runs S1: Parent base facts, Ancestor derived by two
// rules (base case plus one step of recursion), recomputed in one
// tick.
func ancestorClosure() {
	fmt.Println("1. Ancestor Closure:")

	parent := predicate.NewTablePredicate("parent", true,
		predicate.Column("x", "", predicate.NoIndex),
		predicate.Column("y", "", predicate.NoIndex))
	for _, row := range [][2]string{{"alice", "bob"}, {"bob", "carol"}, {"carol", "dave"}} {
		must(parent.AddRow(row[0], row[1]))
	}

	ancestor := predicate.NewTablePredicate("ancestor", true,
		predicate.Column("x", "", predicate.NoIndex),
		predicate.Column("y", "", predicate.NoIndex))
	must(ancestor.If([]rule.Term{rule.V("X"), rule.V("Z")}, []rule.Goal{
		rule.Pred("parent", parent.Table, rule.V("X"), rule.V("Z")),
	}))
	// Drive the outer scan from ancestor (it grows mid-run), not from
	// the static parent table — otherwise a row derived earlier in this
	// same pass never feeds a later outer iteration.
	must(ancestor.If([]rule.Term{rule.V("X"), rule.V("Z")}, []rule.Goal{
		rule.Pred("ancestor", ancestor.Table, rule.V("X"), rule.V("Y")),
		rule.Pred("parent", parent.Table, rule.V("Y"), rule.V("Z")),
	}))

	prog := program.New([]*predicate.TablePredicate{ancestor, parent})
	must(prog.Tick(context.Background()))

	for _, row := range ancestor.Table.All() {
		fmt.Printf("   ancestor(%v, %v)\n", row[0], row[1])
	}
	fmt.Println()
}

// keyLookupVsScan runs S2: a key-indexed Emp(id,dept) table, queried
// both by key (single solution) and by a non-key column (a scan).
func keyLookupVsScan() {
	fmt.Println("2. Key Lookup vs. Scan:")

	emp := predicate.NewTablePredicate("emp", false,
		predicate.Column("id", 0, predicate.KeyIndexMode),
		predicate.Column("dept", "", predicate.NoIndex))
	must(emp.AddRow(1, "a"))
	must(emp.AddRow(2, "b"))
	must(emp.AddRow(3, "a"))

	byID := predicate.NewTablePredicate("dept_of_2", true, predicate.Column("dept", "", predicate.NoIndex))
	must(byID.If([]rule.Term{rule.V("D")}, []rule.Goal{
		rule.Pred("emp", emp.Table, 2, rule.V("D")),
	}))

	byDept := predicate.NewTablePredicate("ids_in_a", true, predicate.Column("id", 0, predicate.NoIndex))
	must(byDept.If([]rule.Term{rule.V("I")}, []rule.Goal{
		rule.Pred("emp", emp.Table, rule.V("I"), "a"),
	}))

	prog := program.New([]*predicate.TablePredicate{byID, byDept})
	must(prog.Tick(context.Background()))

	fmt.Printf("   emp(2, d) => d=%v\n", byID.Table.All()[0][0])
	var ids []any
	for _, row := range byDept.Table.All() {
		ids = append(ids, row[0])
	}
	fmt.Printf("   emp(i, \"a\") => i in %v\n", ids)
	fmt.Println()
}

// aggregation runs S3: Sale(month,amt) summed by month.
func aggregation() {
	fmt.Println("3. Aggregation:")

	sale := predicate.NewTablePredicate("sale", false,
		predicate.Column("month", "", predicate.GeneralIndexMode),
		predicate.Column("amt", 0, predicate.NoIndex))
	must(sale.AddRow("jan", 10))
	must(sale.AddRow("jan", 20))
	must(sale.AddRow("feb", 5))

	total := predicate.NewTablePredicate("total", true,
		predicate.Column("month", "", predicate.NoIndex),
		predicate.Column("amt", 0, predicate.NoIndex))
	must(total.If([]rule.Term{rule.V("M"), rule.V("Total")}, []rule.Goal{
		rule.Pred("sale", sale.Table, rule.V("M"), rule.Any),
		rule.Sum(rule.Pred("sale", sale.Table, rule.V("M"), rule.V("Amt")), rule.V("Amt"), rule.V("Total")),
	}))

	prog := program.New([]*predicate.TablePredicate{total})
	must(prog.Tick(context.Background()))

	for _, row := range total.Table.All() {
		fmt.Printf("   total(%v) = %v\n", row[0], row[1])
	}
	fmt.Println()
}

// maximal runs S4: Score(p,s) reduced to the highest-scoring p.
func maximal() {
	fmt.Println("4. Maximal:")

	score := predicate.NewTablePredicate("score", false,
		predicate.Column("p", "", predicate.NoIndex),
		predicate.Column("s", 0, predicate.NoIndex))
	must(score.AddRow("a", 3))
	must(score.AddRow("b", 7))
	must(score.AddRow("c", 7))

	best := predicate.NewTablePredicate("best", true, predicate.Column("p", "", predicate.NoIndex))
	must(best.If([]rule.Term{rule.V("P")}, []rule.Goal{
		rule.Maximal(
			rule.Pred("score", score.Table, rule.V("P"), rule.V("S")),
			[]rule.Var{rule.V("P")}, rule.V("S"),
			[]rule.Term{rule.V("P")}, rule.Any,
		),
	}))

	prog := program.New([]*predicate.TablePredicate{best})
	must(prog.Tick(context.Background()))

	fmt.Printf("   best => %v\n", best.Table.All()[0][0])
	fmt.Println()
}

// perTickAccumulation runs S5: Log accumulates NewEntries rows across
// two ticks.
func perTickAccumulation() {
	fmt.Println("5. Per-tick Accumulation:")

	newEntries := predicate.NewTablePredicate("new_entries", false, predicate.Column("msg", "", predicate.NoIndex))
	logTable := predicate.NewTablePredicate("log", false, predicate.Column("msg", "", predicate.NoIndex))
	logTable.Accumulates(newEntries)

	prog := program.New([]*predicate.TablePredicate{logTable, newEntries})

	must(newEntries.AddRow("x"))
	must(prog.Tick(context.Background()))
	newEntries.Table.Clear()
	must(newEntries.AddRow("y"))
	must(prog.Tick(context.Background()))

	for _, row := range logTable.Table.All() {
		fmt.Printf("   log: %v\n", row[0])
	}
	fmt.Println()
}

// columnSet runs S6: Pos(id,x) mutated in place via a Set updater
// relation.
func columnSet() {
	fmt.Println("6. Column Set:")

	pos := predicate.NewTablePredicate("pos", false,
		predicate.Column("id", 0, predicate.KeyIndexMode),
		predicate.Column("x", 0, predicate.NoIndex))
	must(pos.AddRow(1, 0))
	must(pos.AddRow(2, 0))

	posSet := predicate.NewTablePredicate("pos_set", false,
		predicate.Column("id", 0, predicate.NoIndex),
		predicate.Column("x", 0, predicate.NoIndex))
	must(posSet.AddRow(1, 5))
	must(posSet.AddRow(2, 9))

	pos.Set(posSet, 0, 1)

	prog := program.New([]*predicate.TablePredicate{pos})
	must(prog.Tick(context.Background()))

	for _, row := range pos.Table.All() {
		fmt.Printf("   pos(%v) = %v\n", row[0], row[1])
	}
	fmt.Println()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
