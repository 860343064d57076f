// Package export flattens a ledger and its derived figures into ordered
// labeled lines for delimited-text and spreadsheet output.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/calc"
	"github.com/cleared-dev/pnl/internal/model"
)

// Kind classifies an export line.
type Kind string

const (
	KindRow     Kind = "row"     // one ledger row
	KindTotal   Kind = "total"   // section total
	KindMetric  Kind = "metric"  // derived monetary figure
	KindPercent Kind = "percent" // derived percentage
)

// Line is one output line: twelve monthly values and a yearly value.
// Values are kept at full precision; Display formats them.
type Line struct {
	Label   string
	Kind    Kind
	Section model.SectionID
	RowID   string // set for KindRow only
	Monthly [model.NumMonths]decimal.Decimal
	Yearly  decimal.Decimal
}

// Line labels for derived figures.
const (
	LabelRevenueAfterVAT     = "Revenue after VAT deduction"
	LabelRevenueAfterRefunds = "Revenue after VAT refunds"
	LabelCOGSExcludingVAT    = "COGS excluding VAT"
	LabelGrossProfit         = "Gross profit"
	LabelGrossMargin         = "Gross margin %"
	LabelCOGSPercent         = "COGS %"
	LabelEBITDA              = "EBITDA"
	LabelOPEXPercent         = "OPEX %"
	LabelNetProfit           = "Net profit"
	LabelNetMargin           = "Net margin %"
)

// TotalLabel is the label of a section's total line.
func TotalLabel(s model.Section) string {
	return "Total " + s.Name
}

// Serialize returns the export lines for l. For each section, in ledger
// order: its rows, its total, then the figures derived after it.
func Serialize(l model.Ledger) []Line {
	mt := calc.Derive(l)

	var lines []Line
	for _, s := range l.Sections {
		for _, r := range s.Rows {
			lines = append(lines, rowLine(l, s.ID, r))
		}

		switch s.ID {
		case model.SectionRevenue:
			lines = append(lines,
				seriesLine(TotalLabel(s), KindTotal, s.ID, mt.Revenue),
				seriesLine(LabelRevenueAfterVAT, KindMetric, s.ID, mt.RevenueAfterVATDeduction),
				seriesLine(LabelRevenueAfterRefunds, KindMetric, s.ID, mt.RevenueAfterVATRefunds),
			)
		case model.SectionVAT:
			lines = append(lines, seriesLine(TotalLabel(s), KindTotal, s.ID, mt.VATNet))
		case model.SectionCOGS:
			lines = append(lines,
				seriesLine(TotalLabel(s), KindTotal, s.ID, mt.COGS),
				seriesLine(LabelCOGSExcludingVAT, KindMetric, s.ID, mt.COGSExcludingVAT),
				seriesLine(LabelGrossProfit, KindMetric, s.ID, mt.GrossProfit),
				ratioLine(LabelGrossMargin, s.ID, mt.GrossMarginPercent),
				ratioLine(LabelCOGSPercent, s.ID, mt.COGSPercent),
			)
		case model.SectionOPEX:
			lines = append(lines,
				seriesLine(TotalLabel(s), KindTotal, s.ID, mt.OPEX),
				seriesLine(LabelEBITDA, KindMetric, s.ID, mt.EBITDA),
				ratioLine(LabelOPEXPercent, s.ID, mt.OPEXPercent),
				seriesLine(LabelNetProfit, KindMetric, s.ID, mt.NetProfit),
				ratioLine(LabelNetMargin, s.ID, mt.NetMarginPercent),
			)
		default:
			lines = append(lines, seriesLine(TotalLabel(s), KindTotal, s.ID, calc.SectionTotals(s)))
		}
	}
	return lines
}

func rowLine(l model.Ledger, sid model.SectionID, r model.Row) Line {
	line := Line{Label: r.Name, Kind: KindRow, Section: sid, RowID: r.ID}
	for _, m := range model.Months() {
		v := r.Values[m].Value
		if sid == model.SectionVAT && r.ID == model.RowGrossVAT {
			v = calc.GrossVAT(l, m)
		}
		line.Monthly[m] = v
		line.Yearly = line.Yearly.Add(v)
	}
	return line
}

func seriesLine(label string, kind Kind, sid model.SectionID, s calc.Series) Line {
	return Line{Label: label, Kind: kind, Section: sid, Monthly: s.Monthly, Yearly: s.Yearly}
}

func ratioLine(label string, sid model.SectionID, r calc.Ratio) Line {
	return Line{Label: label, Kind: KindPercent, Section: sid, Monthly: r.Monthly, Yearly: r.Yearly}
}
