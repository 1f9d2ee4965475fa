package predicate_test

import (
	"testing"

	"github.com/ianhorswill/ted/predicate"
	"github.com/ianhorswill/ted/rule"
)

func TestAggregationSumByMonth(t *testing.T) {
	sale := predicate.NewPredicate2[string, int]("sale", false,
		predicate.Column("month", "", predicate.GeneralIndexMode),
		predicate.Column("amt", 0, predicate.NoIndex))
	sale.AddRow("jan", 10)
	sale.AddRow("jan", 20)
	sale.AddRow("feb", 5)

	total := predicate.NewPredicate2[string, int]("total", true,
		predicate.Column("month", "", predicate.NoIndex),
		predicate.Column("amt", 0, predicate.NoIndex))

	// The grouping variable M must be enumerated by a goal preceding the
	// aggregate; Sum itself folds a single (already-filtered) inner goal,
	// per §4.4's one-solution-per-activation contract.
	err := total.If([]rule.Term{rule.V("M"), rule.V("Total")}, []rule.Goal{
		rule.Pred("sale", sale.Table, rule.V("M"), rule.Any),
		rule.Sum(rule.Pred("sale", sale.Table, rule.V("M"), rule.V("Amt")), rule.V("Amt"), rule.V("Total")),
	})
	if err != nil {
		t.Fatalf("If: %v", err)
	}
	total.RunRules()

	got := map[string]int{}
	for _, row := range total.Table.All() {
		got[row[0].(string)] = row[1].(int)
	}
	want := map[string]int{"jan": 30, "feb": 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d totals, got %v", len(want), got)
	}
	for m, amt := range want {
		if got[m] != amt {
			t.Fatalf("month %s: expected %d, got %d", m, amt, got[m])
		}
	}
}

func TestAddRowAfterRuleErrors(t *testing.T) {
	base := predicate.NewTablePredicate("base", false, predicate.Column("x", 0, predicate.NoIndex))
	derived := predicate.NewTablePredicate("derived", false, predicate.Column("x", 0, predicate.NoIndex))
	if err := derived.If([]rule.Term{rule.V("X")}, []rule.Goal{
		rule.Pred("base", base.Table, rule.V("X")),
	}); err != nil {
		t.Fatalf("If: %v", err)
	}
	if err := derived.AddRow(1); err == nil {
		t.Fatal("expected AddRow on a Rules-mode predicate to fail")
	}
}

func TestRuleAfterDirectRowsErrors(t *testing.T) {
	base := predicate.NewTablePredicate("base", false, predicate.Column("x", 0, predicate.NoIndex))
	if err := base.AddRow(1); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if err := base.If([]rule.Term{rule.V("X")}, nil); err == nil {
		t.Fatal("expected If on a table with direct rows to fail")
	}
}

func TestSetUpdatesColumnViaKeyIndex(t *testing.T) {
	pos := predicate.NewPredicate2[int, int]("pos", false,
		predicate.Column("id", 0, predicate.KeyIndexMode),
		predicate.Column("x", 0, predicate.NoIndex))
	pos.AddRow(1, 0)
	pos.AddRow(2, 0)

	updates := predicate.NewPredicate2[int, int]("pos_set", false,
		predicate.Column("id", 0, predicate.NoIndex),
		predicate.Column("x", 0, predicate.NoIndex))
	updates.AddRow(1, 5)
	updates.AddRow(2, 9)

	pos.Set(updates.TablePredicate, 0, 1)
	if err := pos.RunBaseTable(); err != nil {
		t.Fatalf("RunBaseTable: %v", err)
	}

	got := map[int]int{}
	for _, row := range pos.Table.All() {
		got[row[0].(int)] = row[1].(int)
	}
	if got[1] != 5 || got[2] != 9 {
		t.Fatalf("expected {1:5, 2:9}, got %v", got)
	}
}

func TestOperatorModeClearsBeforeRun(t *testing.T) {
	src := predicate.NewPredicate1[int]("src", false, predicate.Column("x", 0, predicate.NoIndex))
	src.AddRow(1)
	src.AddRow(2)

	doubled := predicate.NewPredicate1[int]("doubled", false, predicate.Column("x", 0, predicate.NoIndex))
	doubled.UseOperator(func(p *predicate.TablePredicate) error {
		for _, row := range src.Table.All() {
			if _, _, err := p.Table.Add([]any{row[0].(int) * 2}); err != nil {
				return err
			}
		}
		return nil
	}, src.TablePredicate)

	if err := doubled.RunOperator(); err != nil {
		t.Fatalf("RunOperator (first): %v", err)
	}
	got := map[int]bool{}
	for _, row := range doubled.Table.All() {
		got[row[0].(int)] = true
	}
	if len(got) != 2 || !got[2] || !got[4] {
		t.Fatalf("expected {2, 4} after first run, got %v", got)
	}

	// A second run must see a freshly cleared table, not an
	// accumulation of the first run's rows plus the second's.
	if err := doubled.RunOperator(); err != nil {
		t.Fatalf("RunOperator (second): %v", err)
	}
	if doubled.Table.Len() != 2 {
		t.Fatalf("expected table cleared before second operator run, got %d rows", doubled.Table.Len())
	}
}

func TestRunOperatorWithoutProcedureErrors(t *testing.T) {
	p := predicate.NewTablePredicate("unconfigured", false, predicate.Column("x", 0, predicate.NoIndex))
	p.Mode = predicate.Operator
	if err := p.RunOperator(); err == nil {
		t.Fatal("expected RunOperator to error when no update procedure is configured")
	}
}
