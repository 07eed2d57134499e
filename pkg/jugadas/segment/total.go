package segment

import (
	"github.com/jugadas/parser/pkg/jugadas/patterns"
	"github.com/shopspring/decimal"
)

// parseTotal extracts the declared amount from a total-line, if present.
func parseTotal(line string) (decimal.Decimal, bool) {
	m := patterns.ReTotal.FindStringSubmatch(line)
	if len(m) != 2 {
		return decimal.Decimal{}, false
	}
	amt, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amt, true
}
