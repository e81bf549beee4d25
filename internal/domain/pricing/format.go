package pricing

import (
	"fmt"
	"strconv"
)

// FormatAmount renders a value in the Brazilian convention without the
// currency symbol: thousands separated by dots, comma before two decimals
// ("1.234,56"). Document templates use it for VALOR_* placeholders, where the
// "R$" prefix belongs to the clause text.
func FormatAmount(v float64) string {
	neg := v < 0
	cents := int64(v*100 + 0.5)
	if neg {
		cents = int64(-v*100 + 0.5)
	}
	intPart := strconv.FormatInt(cents/100, 10)

	var grouped []byte
	for i, d := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	out := fmt.Sprintf("%s,%02d", grouped, cents%100)
	if neg {
		return "-" + out
	}
	return out
}

// FormatBRL renders a value as displayed currency ("R$ 1.234,56").
func FormatBRL(v float64) string {
	return "R$ " + FormatAmount(v)
}
