package pricing

import (
	"math"
	"testing"

	"agencia_xpto/internal/domain/entities"
)

func TestBuildItems(t *testing.T) {
	t.Run("monthly item multiplies by term", func(t *testing.T) {
		items := BuildItems([]entities.ServiceLineItem{
			{ID: "s1", Type: "social_media", IsMonthly: true, Term: 3, Qty: 2, UnitValue: 100},
		})
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].Subtotal != 600 {
			t.Fatalf("expected subtotal 600, got %v", items[0].Subtotal)
		}
	})

	t.Run("one-time item ignores term", func(t *testing.T) {
		items := BuildItems([]entities.ServiceLineItem{
			{ID: "s1", Type: "video", IsMonthly: false, Term: 12, Qty: 4, UnitValue: 50},
		})
		if items[0].Subtotal != 200 {
			t.Fatalf("expected subtotal 200, got %v", items[0].Subtotal)
		}
		if items[0].Term != 1 {
			t.Fatalf("expected term forced to 1, got %d", items[0].Term)
		}
	})

	t.Run("monthly term defaults to 1", func(t *testing.T) {
		items := BuildItems([]entities.ServiceLineItem{
			{ID: "s1", Type: "video", IsMonthly: true, Qty: 1, UnitValue: 300},
		})
		if items[0].Term != 1 || items[0].Subtotal != 300 {
			t.Fatalf("unexpected item: %+v", items[0])
		}
	})

	t.Run("sorted by descending subtotal", func(t *testing.T) {
		items := BuildItems([]entities.ServiceLineItem{
			{ID: "small", Type: "a", Qty: 1, UnitValue: 10},
			{ID: "big", Type: "b", Qty: 1, UnitValue: 500},
			{ID: "mid", Type: "c", Qty: 1, UnitValue: 100},
		})
		if items[0].ID != "big" || items[1].ID != "mid" || items[2].ID != "small" {
			t.Fatalf("unexpected order: %+v", items)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []entities.ServiceLineItem{{ID: "s1", Type: "a", IsMonthly: true, Qty: 1, UnitValue: 10}}
		_ = BuildItems(in)
		if in[0].Term != 0 {
			t.Fatalf("input term mutated: %+v", in[0])
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := BuildItems(nil); len(got) != 0 {
			t.Fatalf("expected empty result, got %+v", got)
		}
	})
}

func TestGroupByType(t *testing.T) {
	items := BuildItems([]entities.ServiceLineItem{
		{ID: "a1", Type: "a", Qty: 1, UnitValue: 100},
		{ID: "b1", Type: "b", Qty: 1, UnitValue: 100},
		{ID: "a2", Type: "a", Qty: 1, UnitValue: 100},
	})
	grouped := GroupByType(items)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(grouped))
	}
	count := 0
	for _, list := range grouped {
		count += len(list)
	}
	if count != len(items) {
		t.Fatalf("partition lost items: %d != %d", count, len(items))
	}
	if len(grouped["a"]) != 2 || grouped["a"][0].ID != "a1" || grouped["a"][1].ID != "a2" {
		t.Fatalf("in-group order not preserved: %+v", grouped["a"])
	}
}

func TestTypeOrder(t *testing.T) {
	items := []QuotedItem{
		{ServiceLineItem: entities.ServiceLineItem{ID: "1", Type: "b"}},
		{ServiceLineItem: entities.ServiceLineItem{ID: "2", Type: "a"}},
		{ServiceLineItem: entities.ServiceLineItem{ID: "3", Type: "b"}},
	}
	order := TypeOrder(items)
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestTypeTotals(t *testing.T) {
	t.Run("per-type sums and overall", func(t *testing.T) {
		grouped := GroupByType(BuildItems([]entities.ServiceLineItem{
			{ID: "a1", Type: "a", Qty: 2, UnitValue: 100},
			{ID: "a2", Type: "a", Qty: 1, UnitValue: 50},
			{ID: "b1", Type: "b", IsMonthly: true, Term: 3, Qty: 1, UnitValue: 200},
		}))
		totals := TypeTotals(grouped)
		if totals["a"] != 250 {
			t.Fatalf("expected total a=250, got %v", totals["a"])
		}
		if totals["b"] != 600 {
			t.Fatalf("expected total b=600, got %v", totals["b"])
		}
		if totals[OverallKey] != 850 {
			t.Fatalf("expected overall=850, got %v", totals[OverallKey])
		}
	})

	t.Run("empty grouping yields zero overall", func(t *testing.T) {
		totals := TypeTotals(map[string][]QuotedItem{})
		if len(totals) != 1 || totals[OverallKey] != 0 {
			t.Fatalf("unexpected totals: %v", totals)
		}
	})
}

func TestInstallmentRanges(t *testing.T) {
	quote := func(services ...entities.ServiceLineItem) (map[string][]QuotedItem, map[string]float64) {
		grouped := GroupByType(BuildItems(services))
		return grouped, TypeTotals(grouped)
	}

	t.Run("single package splits balance evenly", func(t *testing.T) {
		grouped, totals := quote(entities.ServiceLineItem{ID: "s1", Type: "a", Qty: 1, UnitValue: 1200})
		ranges := InstallmentRanges(grouped, totals, map[string]entities.PaymentCondition{
			"a": {Entry: "R$ 200,00", Installments: 5},
		})
		if len(ranges) != 1 {
			t.Fatalf("expected 1 range, got %+v", ranges)
		}
		if ranges[0].From != 1 || ranges[0].To != 5 || ranges[0].Amount != 200 {
			t.Fatalf("unexpected range: %+v", ranges[0])
		}
	})

	t.Run("different installment counts produce a value step", func(t *testing.T) {
		grouped, totals := quote(
			entities.ServiceLineItem{ID: "a1", Type: "a", Qty: 1, UnitValue: 900},
			entities.ServiceLineItem{ID: "b1", Type: "b", Qty: 1, UnitValue: 1800},
		)
		ranges := InstallmentRanges(grouped, totals, map[string]entities.PaymentCondition{
			"a": {Installments: 3},
			"b": {Installments: 6},
		})
		if len(ranges) != 2 {
			t.Fatalf("expected 2 ranges, got %+v", ranges)
		}
		if ranges[0].From != 1 || ranges[0].To != 3 || ranges[0].Amount != 600 {
			t.Fatalf("unexpected first range: %+v", ranges[0])
		}
		if ranges[1].From != 4 || ranges[1].To != 6 || ranges[1].Amount != 300 {
			t.Fatalf("unexpected second range: %+v", ranges[1])
		}
	})

	t.Run("entry covering the total contributes nothing", func(t *testing.T) {
		grouped, totals := quote(entities.ServiceLineItem{ID: "s1", Type: "a", Qty: 1, UnitValue: 500})
		ranges := InstallmentRanges(grouped, totals, map[string]entities.PaymentCondition{
			"a": {Entry: 500.0, Installments: 10},
		})
		if len(ranges) != 0 {
			t.Fatalf("expected no ranges, got %+v", ranges)
		}
	})

	t.Run("zero installments contributes nothing", func(t *testing.T) {
		grouped, totals := quote(entities.ServiceLineItem{ID: "s1", Type: "a", Qty: 1, UnitValue: 500})
		ranges := InstallmentRanges(grouped, totals, map[string]entities.PaymentCondition{
			"a": {Installments: 0},
		})
		if len(ranges) != 0 {
			t.Fatalf("expected no ranges, got %+v", ranges)
		}
	})

	t.Run("missing condition contributes nothing", func(t *testing.T) {
		grouped, totals := quote(entities.ServiceLineItem{ID: "s1", Type: "a", Qty: 1, UnitValue: 500})
		if ranges := InstallmentRanges(grouped, totals, nil); len(ranges) != 0 {
			t.Fatalf("expected no ranges, got %+v", ranges)
		}
	})

	t.Run("sub-cent rounding noise still merges", func(t *testing.T) {
		// 1000/3 rounds to 333.33 per installment; package b contributes the
		// same value through a different split, so every month must merge.
		grouped, totals := quote(
			entities.ServiceLineItem{ID: "a1", Type: "a", Qty: 1, UnitValue: 1000},
			entities.ServiceLineItem{ID: "b1", Type: "b", Qty: 1, UnitValue: 999.99},
		)
		ranges := InstallmentRanges(grouped, totals, map[string]entities.PaymentCondition{
			"a": {Installments: 3},
			"b": {Installments: 3},
		})
		if len(ranges) != 1 {
			t.Fatalf("expected 1 merged range, got %+v", ranges)
		}
		if ranges[0].From != 1 || ranges[0].To != 3 {
			t.Fatalf("unexpected range bounds: %+v", ranges[0])
		}
		if math.Abs(ranges[0].Amount-666.66) > 0.011 {
			t.Fatalf("unexpected amount: %v", ranges[0].Amount)
		}
	})

	t.Run("pure function on repeated calls", func(t *testing.T) {
		grouped, totals := quote(
			entities.ServiceLineItem{ID: "a1", Type: "a", Qty: 1, UnitValue: 900},
			entities.ServiceLineItem{ID: "b1", Type: "b", Qty: 1, UnitValue: 1800},
		)
		conditions := map[string]entities.PaymentCondition{
			"a": {Installments: 3},
			"b": {Installments: 6},
		}
		first := InstallmentRanges(grouped, totals, conditions)
		second := InstallmentRanges(grouped, totals, conditions)
		if len(first) != len(second) {
			t.Fatalf("non-deterministic output: %+v vs %+v", first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("non-deterministic range %d: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"formatted brl string", "R$ 1.234,56", 1234.56},
		{"plain integer string", "1500", 1500},
		{"comma decimal", "99,9", 99.9},
		{"number passes through", 1234.56, 1234.56},
		{"int passes through", 200, 200},
		{"garbage", "abc", 0},
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"percent note", "50% na assinatura", 50},
		{"second comma ends the number", "1,2,3", 1.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseMoney(tc.in); got != tc.want {
				t.Fatalf("ParseMoney(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"int", 6, 6},
		{"float truncates", 6.9, 6},
		{"numeric string", "12", 12},
		{"string with suffix", "6x", 6},
		{"negative clamps", -3, 0},
		{"negative string clamps", "-3", 0},
		{"garbage", "muitas", 0},
		{"nil", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseCount(tc.in); got != tc.want {
				t.Fatalf("ParseCount(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestEntryTotal(t *testing.T) {
	total := EntryTotal(map[string]entities.PaymentCondition{
		"a": {Entry: "R$ 1.000,00"},
		"b": {Entry: 250.5},
		"c": {Entry: "sem entrada"},
	})
	if total != 1250.5 {
		t.Fatalf("expected 1250.5, got %v", total)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.56, "1.234,56"},
		{0, "0,00"},
		{20000, "20.000,00"},
		{999.9, "999,90"},
		{-150.25, "-150,25"},
		{1000000, "1.000.000,00"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := FormatBRL(1234.56); got != "R$ 1.234,56" {
		t.Fatalf("FormatBRL = %q", got)
	}
}
