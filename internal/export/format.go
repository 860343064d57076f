package export

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/model"
)

// FormatMoney rounds to a whole amount with thousands separators: "11,800".
func FormatMoney(v decimal.Decimal) string {
	return humanize.Comma(v.Round(0).IntPart())
}

// FormatPercent formats with one decimal place: "12.5%".
func FormatPercent(v decimal.Decimal) string {
	return v.StringFixed(1) + "%"
}

func (ln Line) format(v decimal.Decimal) string {
	if ln.Kind == KindPercent {
		return FormatPercent(v)
	}
	return FormatMoney(v)
}

// Display returns the formatted value for month m.
func (ln Line) Display(m model.Month) string {
	return ln.format(ln.Monthly[m])
}

// DisplayYearly returns the formatted yearly value.
func (ln Line) DisplayYearly() string {
	return ln.format(ln.Yearly)
}
