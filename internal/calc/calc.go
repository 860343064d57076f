// Package calc derives the P&L figures from a ledger. Every function is pure
// and recomputes from the ledger it is given; nothing is cached.
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/model"
)

// The VAT rate is fixed at 18%.
var (
	vatGross  = decimal.NewFromInt(118)
	vatShare  = decimal.NewFromInt(18)
	hundred   = decimal.NewFromInt(100)
	vatFactor = decimal.RequireFromString("1.18")
)

// VATPortion returns the VAT contained in a VAT-inclusive amount (18/118 of it).
func VATPortion(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(vatShare).Div(vatGross)
}

// StripVAT returns a VAT-inclusive amount without its VAT (100/118 of it).
func StripVAT(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(hundred).Div(vatGross)
}

// Series is a monthly figure plus its yearly total.
type Series struct {
	Monthly [model.NumMonths]decimal.Decimal
	Yearly  decimal.Decimal
}

// Month returns the value for m.
func (s Series) Month(m model.Month) decimal.Decimal {
	return s.Monthly[m]
}

func seriesOf(f func(m model.Month) decimal.Decimal) Series {
	var s Series
	for _, m := range model.Months() {
		s.Monthly[m] = f(m)
		s.Yearly = s.Yearly.Add(s.Monthly[m])
	}
	return s
}

// Percent returns num / den × 100, or zero when den is zero.
func Percent(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}

// RowTotal sums a row over the twelve months.
func RowTotal(r model.Row) decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Values {
		total = total.Add(c.Value)
	}
	return total
}

// SectionTotals sums every row of s per month. An empty section is all zeros.
func SectionTotals(s model.Section) Series {
	return seriesOf(func(m model.Month) decimal.Decimal {
		sum := decimal.Zero
		for _, r := range s.Rows {
			sum = sum.Add(r.Values[m].Value)
		}
		return sum
	})
}

// sectionMonth is the naive row sum of one section for one month.
func sectionMonth(l model.Ledger, id model.SectionID, m model.Month) decimal.Decimal {
	s, ok := l.Section(id)
	if !ok {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, r := range s.Rows {
		sum = sum.Add(r.Values[m].Value)
	}
	return sum
}

// Revenue is the monthly revenue total (VAT-inclusive).
func Revenue(l model.Ledger, m model.Month) decimal.Decimal {
	return sectionMonth(l, model.SectionRevenue, m)
}

// OPEX is the monthly operating expense total.
func OPEX(l model.Ledger, m model.Month) decimal.Decimal {
	return sectionMonth(l, model.SectionOPEX, m)
}

// COGS is the naive monthly cost of goods sold total.
func COGS(l model.Ledger, m model.Month) decimal.Decimal {
	return sectionMonth(l, model.SectionCOGS, m)
}

// GrossVAT is the VAT contained in the month's revenue. It is the only
// source of truth for row vat-1.
func GrossVAT(l model.Ledger, m model.Month) decimal.Decimal {
	return VATPortion(Revenue(l, m))
}

// VATRefunds is the stored value of row vat-2.
func VATRefunds(l model.Ledger, m model.Month) decimal.Decimal {
	s, ok := l.Section(model.SectionVAT)
	if !ok {
		return decimal.Zero
	}
	r, ok := s.Row(model.RowVATRefunds)
	if !ok {
		return decimal.Zero
	}
	return r.Values[m].Value
}

// VATNet is the VAT section total: gross VAT minus refunds.
func VATNet(l model.Ledger, m model.Month) decimal.Decimal {
	return GrossVAT(l, m).Sub(VATRefunds(l, m))
}

// RevenueAfterVATDeduction is revenue divided by 1.18.
func RevenueAfterVATDeduction(l model.Ledger, m model.Month) decimal.Decimal {
	return Revenue(l, m).Div(vatFactor)
}

// RevenueAfterVATRefunds adds the month's VAT refunds back onto revenue
// after VAT deduction.
func RevenueAfterVATRefunds(l model.Ledger, m model.Month) decimal.Decimal {
	return RevenueAfterVATDeduction(l, m).Add(VATRefunds(l, m))
}

// COGSExcludingVAT sums the cost rows for m, stripping VAT from cells
// marked as VAT-excluded.
func COGSExcludingVAT(l model.Ledger, m model.Month) decimal.Decimal {
	s, ok := l.Section(model.SectionCOGS)
	if !ok {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, r := range s.Rows {
		c := r.Values[m]
		if c.VATIncluded {
			sum = sum.Add(c.Value)
		} else {
			sum = sum.Add(StripVAT(c.Value))
		}
	}
	return sum
}

// GrossProfit is revenue after VAT deduction minus COGS excluding VAT.
func GrossProfit(l model.Ledger, m model.Month) decimal.Decimal {
	return RevenueAfterVATDeduction(l, m).Sub(COGSExcludingVAT(l, m))
}

// EBITDA is gross profit minus operating expenses.
func EBITDA(l model.Ledger, m model.Month) decimal.Decimal {
	return GrossProfit(l, m).Sub(OPEX(l, m))
}

// NetProfit equals EBITDA; no further deductions are modeled.
func NetProfit(l model.Ledger, m model.Month) decimal.Decimal {
	return EBITDA(l, m)
}
