package templates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"agencia_xpto/internal/domain/pricing"
)

var (
	placeholderRe    = regexp.MustCompile(`\{\{\s*([A-Z0-9_]+)\s*\}\}`)
	isoDateRe        = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	formattedMoneyRe = regexp.MustCompile(`[.,]\d{2}$`)
)

// Interpolate replaces {{KEY}} placeholders in a clause template.
//
// Key prefixes drive formatting:
//   - DATA_*  => dd/mm/yyyy when the value is an ISO "yyyy-mm-dd" date
//   - VALOR_* => pt-BR money without the "R$" symbol (the prefix lives in the
//     clause text itself)
//
// Missing or nil values render as empty strings; a half-filled form must still
// produce a previewable document.
func Interpolate(template string, values map[string]any) string {
	if template == "" {
		return ""
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := placeholderRe.FindStringSubmatch(match)[1]
		value, ok := values[key]
		if !ok || value == nil {
			return ""
		}
		if strings.HasPrefix(key, "DATA_") {
			return dateText(value)
		}
		if strings.HasPrefix(key, "VALOR_") {
			return moneyText(value)
		}
		return fmt.Sprintf("%v", value)
	})
}

// InterpolateSlice interpolates each line and drops the ones left empty.
func InterpolateSlice(lines []string, values map[string]any) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := Interpolate(line, values); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// InterpolateMap interpolates every value of a clause map, keeping keys.
func InterpolateMap(clauses map[string]string, values map[string]any) map[string]string {
	out := make(map[string]string, len(clauses))
	for k, v := range clauses {
		out[k] = Interpolate(v, values)
	}
	return out
}

// dateText formats an ISO "yyyy-mm-dd" string as "dd/mm/yyyy". Anything else
// is passed through (dates can arrive pre-formatted from older forms).
func dateText(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	m := isoDateRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}

// moneyText formats a loose monetary value in pt-BR without the "R$" symbol.
// Values that already look formatted ("20.000,00") pass through untouched.
func moneyText(v any) string {
	if s, ok := v.(string); ok {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return ""
		}
		if formattedMoneyRe.MatchString(trimmed) || strings.Contains(trimmed, ".") {
			return trimmed
		}
		if f, err := strconv.ParseFloat(strings.Replace(trimmed, ",", ".", 1), 64); err == nil {
			return pricing.FormatAmount(f)
		}
		return trimmed
	}
	return pricing.FormatAmount(pricing.ParseMoney(v))
}

// diffDaysInclusive counts days between two ISO dates, both ends included.
// Invalid or missing dates fall back to 1 so VIGENCIA_DIAS never renders empty.
func diffDaysInclusive(startISO, endISO string) int {
	start, err1 := time.Parse("2006-01-02", startISO)
	end, err2 := time.Parse("2006-01-02", endISO)
	if err1 != nil || err2 != nil {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days <= 0 {
		return 1
	}
	return days
}
