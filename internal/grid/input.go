package grid

import (
	"strings"

	"github.com/shopspring/decimal"
)

var separators = strings.NewReplacer(",", "", "_", "", " ", "", "\u00a0", "", "\t", "")

// ParseAmount converts user-typed text into a cell value. Thousands
// separators are stripped; empty or non-numeric text yields zero.
func ParseAmount(text string) decimal.Decimal {
	cleaned := separators.Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return v
}
