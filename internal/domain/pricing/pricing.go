package pricing

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"agencia_xpto/internal/domain/entities"
)

// OverallKey is the reserved type-totals key holding the sum of every package.
const OverallKey = "overall"

// amountTolerance absorbs the sub-cent noise introduced by rounding each
// per-installment value to two decimals before accumulation.
const amountTolerance = 0.01

// QuotedItem is a ServiceLineItem annotated with its computed subtotal.
//
// Term is always resolved (>= 1) on the copy; the input item is never mutated.
type QuotedItem struct {
	entities.ServiceLineItem
	Subtotal float64 `json:"subtotal"`
}

// InstallmentRange says "installments From..To (inclusive) each cost Amount".
type InstallmentRange struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Amount float64 `json:"amount"`
}

// BuildItems computes each selected service's subtotal and returns the quoted
// list sorted by descending subtotal (presentation order; nothing downstream
// depends on it).
//
// subtotal = unitValue * qty * term, with term forced to 1 for one-time items
// and defaulted to 1 for monthly items without one.
func BuildItems(services []entities.ServiceLineItem) []QuotedItem {
	items := make([]QuotedItem, 0, len(services))
	for _, svc := range services {
		term := 1
		if svc.IsMonthly && svc.Term > 0 {
			term = svc.Term
		}
		it := QuotedItem{ServiceLineItem: svc}
		it.Term = term
		it.Subtotal = svc.UnitValue * svc.Qty * float64(term)
		items = append(items, it)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Subtotal > items[j].Subtotal
	})
	return items
}

// GroupByType partitions quoted items by their package type. Items of the same
// type keep their relative input order; types with no items are absent.
func GroupByType(items []QuotedItem) map[string][]QuotedItem {
	grouped := make(map[string][]QuotedItem)
	for _, it := range items {
		grouped[it.Type] = append(grouped[it.Type], it)
	}
	return grouped
}

// TypeOrder returns package types in first-encounter order, for callers that
// need a deterministic presentation sequence alongside the grouped map.
func TypeOrder(items []QuotedItem) []string {
	seen := make(map[string]bool)
	order := make([]string, 0)
	for _, it := range items {
		if !seen[it.Type] {
			seen[it.Type] = true
			order = append(order, it.Type)
		}
	}
	return order
}

// TypeTotals sums subtotals per package type and adds the reserved "overall"
// entry with the grand total. An empty grouping yields {overall: 0}.
func TypeTotals(grouped map[string][]QuotedItem) map[string]float64 {
	totals := make(map[string]float64, len(grouped)+1)
	overall := 0.0
	for typ, list := range grouped {
		sum := 0.0
		for _, it := range list {
			sum += it.Subtotal
		}
		totals[typ] = sum
		overall += sum
	}
	totals[OverallKey] = overall
	return totals
}

// InstallmentRanges merges the independently financed packages into one
// customer-facing schedule.
//
// For each package: balance = total - entry; when a positive balance is split
// into n installments, balance/n (rounded to two decimals) is accumulated into
// every installment index 1..n. Packages with no installment plan or a balance
// covered by the entry contribute nothing. The accumulated per-index amounts
// are then compressed into contiguous ranges of equal value (within
// amountTolerance).
func InstallmentRanges(grouped map[string][]QuotedItem, totals map[string]float64, conditions map[string]entities.PaymentCondition) []InstallmentRange {
	due := make(map[int]float64)
	for typ := range grouped {
		total := totals[typ]
		entry := ParseMoney(conditions[typ].Entry)
		count := ParseCount(conditions[typ].Installments)
		balance := total - entry
		if count <= 0 || balance <= 0 {
			continue
		}
		per := round2(balance / float64(count))
		for i := 1; i <= count; i++ {
			due[i] += per
		}
	}
	if len(due) == 0 {
		return nil
	}

	idx := make([]int, 0, len(due))
	for i := range due {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	ranges := make([]InstallmentRange, 0, len(idx))
	start := idx[0]
	prev := start
	amount := due[start]
	for _, n := range idx[1:] {
		if n != prev+1 || math.Abs(due[n]-amount) > amountTolerance {
			ranges = append(ranges, InstallmentRange{From: start, To: prev, Amount: amount})
			start = n
			amount = due[n]
		}
		prev = n
	}
	return append(ranges, InstallmentRange{From: start, To: prev, Amount: amount})
}

// EntryTotal sums the parsed down payments configured across all packages.
func EntryTotal(conditions map[string]entities.PaymentCondition) float64 {
	total := 0.0
	for _, cond := range conditions {
		total += ParseMoney(cond.Entry)
	}
	return total
}

// ParseMoney reads a monetary amount from whatever the wizard sent: a number,
// or a loosely formatted currency string ("R$ 1.234,56"). The string form keeps
// only digits and commas and treats the first comma as the decimal separator.
// Anything unparsable degrades to 0; it never fails.
func ParseMoney(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		return t
	case float32:
		return ParseMoney(float64(t))
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
		return moneyFromString(t.String())
	case string:
		return moneyFromString(t)
	default:
		return 0
	}
}

func moneyFromString(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Replace(b.String(), ",", ".", 1)
	// A second comma ends the numeric prefix ("1,2,3" reads as 1.2).
	if i := strings.IndexByte(cleaned, ','); i >= 0 {
		cleaned = cleaned[:i]
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseCount reads a non-negative installment count from a number or string.
// Fractions truncate, invalid input degrades to 0, negatives clamp to 0.
func ParseCount(v any) int {
	n := 0
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		n = int(t)
	case float32:
		return ParseCount(float64(t))
	case int:
		n = t
	case int64:
		n = int(t)
	case json.Number:
		return ParseCount(t.String())
	case string:
		n = countFromString(t)
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

func countFromString(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if end == 0 && (c == '-' || c == '+') {
			end++
			continue
		}
		break
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
