package calc

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/model"
)

// Ratio is a percentage per month plus its yearly figure. The yearly figure
// is computed from yearly totals, not averaged from the months.
type Ratio struct {
	Monthly [model.NumMonths]decimal.Decimal
	Yearly  decimal.Decimal
}

// Metrics is the full set of derived P&L figures for a ledger.
type Metrics struct {
	Revenue                  Series
	GrossVAT                 Series
	VATRefunds               Series
	VATNet                   Series
	RevenueAfterVATDeduction Series
	RevenueAfterVATRefunds   Series
	COGS                     Series
	COGSExcludingVAT         Series
	GrossProfit              Series
	OPEX                     Series
	EBITDA                   Series
	NetProfit                Series

	GrossMarginPercent Ratio
	COGSPercent        Ratio
	NetMarginPercent   Ratio
	OPEXPercent        Ratio
}

// Derive computes every metric from the current state of l.
func Derive(l model.Ledger) Metrics {
	bind := func(f func(model.Ledger, model.Month) decimal.Decimal) Series {
		return seriesOf(func(m model.Month) decimal.Decimal { return f(l, m) })
	}

	mt := Metrics{
		Revenue:                  bind(Revenue),
		GrossVAT:                 bind(GrossVAT),
		VATRefunds:               bind(VATRefunds),
		VATNet:                   bind(VATNet),
		RevenueAfterVATDeduction: bind(RevenueAfterVATDeduction),
		RevenueAfterVATRefunds:   bind(RevenueAfterVATRefunds),
		COGS:                     bind(COGS),
		COGSExcludingVAT:         bind(COGSExcludingVAT),
		GrossProfit:              bind(GrossProfit),
		OPEX:                     bind(OPEX),
		EBITDA:                   bind(EBITDA),
		NetProfit:                bind(NetProfit),
	}

	mt.COGSPercent = ratioOf(mt.COGSExcludingVAT, mt.RevenueAfterVATDeduction)
	mt.GrossMarginPercent = grossMargin(mt.COGSPercent, mt.RevenueAfterVATDeduction)
	mt.NetMarginPercent = ratioOf(mt.NetProfit, mt.Revenue)
	mt.OPEXPercent = ratioOf(mt.OPEX, mt.Revenue)
	return mt
}

func ratioOf(num, den Series) Ratio {
	var r Ratio
	for _, m := range model.Months() {
		r.Monthly[m] = Percent(num.Monthly[m], den.Monthly[m])
	}
	r.Yearly = Percent(num.Yearly, den.Yearly)
	return r
}

// grossMargin is 100 − COGS %, and zero wherever revenue after VAT is zero.
func grossMargin(cogsPct Ratio, revenueAfterVAT Series) Ratio {
	margin := func(pct, rev decimal.Decimal) decimal.Decimal {
		if rev.IsZero() {
			return decimal.Zero
		}
		return hundred.Sub(pct)
	}

	var r Ratio
	for _, m := range model.Months() {
		r.Monthly[m] = margin(cogsPct.Monthly[m], revenueAfterVAT.Monthly[m])
	}
	r.Yearly = margin(cogsPct.Yearly, revenueAfterVAT.Yearly)
	return r
}
