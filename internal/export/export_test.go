package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/pnl/internal/grid"
	"github.com/cleared-dev/pnl/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleLedger(t *testing.T) model.Ledger {
	t.Helper()
	l := grid.NewLedger()
	var err error
	l, err = grid.UpdateCellValue(l, model.SectionRevenue, "revenue-1", model.Jan, dec("11800"))
	require.NoError(t, err)
	l, err = grid.UpdateCellValue(l, model.SectionCOGS, "cogs-1", model.Jan, dec("1180"))
	require.NoError(t, err)
	l, err = grid.UpdateCellVATFlag(l, model.SectionCOGS, "cogs-1", model.Jan, false)
	require.NoError(t, err)
	l, err = grid.UpdateCellValue(l, model.SectionOPEX, "opex-1", model.Jan, dec("4500"))
	require.NoError(t, err)
	return l
}

func findLine(t *testing.T, lines []Line, label string) Line {
	t.Helper()
	for _, ln := range lines {
		if ln.Label == label {
			return ln
		}
	}
	require.Failf(t, "line not found", "label %q", label)
	return Line{}
}

func TestSerialize_Order(t *testing.T) {
	l := grid.NewLedger()
	lines := Serialize(l)

	var labels []string
	for _, ln := range lines {
		labels = append(labels, ln.Label)
	}

	want := []string{
		"Product sales", "Service revenue", "Other income",
		"Total Revenue", LabelRevenueAfterVAT, LabelRevenueAfterRefunds,
		"Gross VAT", "VAT refunds", "Total VAT",
		"Raw materials", "Packaging", "Freight in", "Direct labor",
		"Total Cost of Goods Sold", LabelCOGSExcludingVAT, LabelGrossProfit, LabelGrossMargin, LabelCOGSPercent,
		"Salaries", "Rent", "Marketing", "Utilities", "Software", "Professional services",
		"Total Operating Expenses", LabelEBITDA, LabelOPEXPercent, LabelNetProfit, LabelNetMargin,
	}
	assert.Equal(t, want, labels)
}

func TestSerialize_Kinds(t *testing.T) {
	lines := Serialize(grid.NewLedger())

	assert.Equal(t, KindRow, lines[0].Kind)
	assert.Equal(t, "revenue-1", lines[0].RowID)
	assert.Equal(t, KindTotal, findLine(t, lines, "Total VAT").Kind)
	assert.Equal(t, KindMetric, findLine(t, lines, LabelEBITDA).Kind)
	assert.Equal(t, KindPercent, findLine(t, lines, LabelNetMargin).Kind)
	assert.Empty(t, findLine(t, lines, LabelGrossProfit).RowID)
}

func TestSerialize_AllZero(t *testing.T) {
	for _, ln := range Serialize(grid.NewLedger()) {
		want := "0"
		if ln.Kind == KindPercent {
			want = "0.0%"
		}
		for _, m := range model.Months() {
			assert.Equal(t, want, ln.Display(m), "%s %s", ln.Label, m)
			assert.True(t, ln.Monthly[m].IsZero(), "%s %s", ln.Label, m)
		}
		assert.Equal(t, want, ln.DisplayYearly(), ln.Label)
	}
}

func TestSerialize_Values(t *testing.T) {
	lines := Serialize(sampleLedger(t))

	check := func(label, jan, yearly string) {
		t.Helper()
		ln := findLine(t, lines, label)
		assert.True(t, dec(jan).Equal(ln.Monthly[model.Jan]), "%s jan: %s", label, ln.Monthly[model.Jan])
		assert.True(t, dec(yearly).Equal(ln.Yearly), "%s yearly: %s", label, ln.Yearly)
	}

	check("Product sales", "11800", "11800")
	check("Total Revenue", "11800", "11800")
	check(LabelRevenueAfterVAT, "10000", "10000")
	check(LabelRevenueAfterRefunds, "10180", "10180")
	check("Gross VAT", "1800", "1800")
	check("VAT refunds", "180", "180")
	check("Total VAT", "1620", "1620")
	check("Raw materials", "1180", "1180")
	check("Total Cost of Goods Sold", "1180", "1180")
	check(LabelCOGSExcludingVAT, "1000", "1000")
	check(LabelGrossProfit, "9000", "9000")
	check(LabelGrossMargin, "90", "90")
	check(LabelCOGSPercent, "10", "10")
	check("Total Operating Expenses", "4500", "4500")
	check(LabelEBITDA, "4500", "4500")
	check(LabelNetProfit, "4500", "4500")

	netMargin := findLine(t, lines, LabelNetMargin)
	assert.Equal(t, "38.1%", netMargin.DisplayYearly())
	assert.Equal(t, "0.0%", netMargin.Display(model.Feb))

	assert.Equal(t, "11,800", findLine(t, lines, "Total Revenue").DisplayYearly())
}

func TestSerialize_StaleGrossVAT(t *testing.T) {
	l := sampleLedger(t)
	l.Sections[1].Rows[0].Values[model.Jan] = model.NewCell(dec("1"))

	lines := Serialize(l)
	assert.True(t, dec("1800").Equal(findLine(t, lines, "Gross VAT").Monthly[model.Jan]))
	assert.True(t, dec("1620").Equal(findLine(t, lines, "Total VAT").Monthly[model.Jan]))
}

func TestSerialize_AddedRow(t *testing.T) {
	l, rowID, err := grid.AddRow(grid.NewLedger(), model.SectionOPEX)
	require.NoError(t, err)
	l, err = grid.RenameRow(l, model.SectionOPEX, rowID, "Insurance")
	require.NoError(t, err)

	lines := Serialize(l)
	ln := findLine(t, lines, "Insurance")
	assert.Equal(t, rowID, ln.RowID)
	assert.Equal(t, model.SectionOPEX, ln.Section)
}
