package grid

import (
	"github.com/cleared-dev/pnl/internal/id"
	"github.com/cleared-dev/pnl/internal/model"
)

// DefaultRowName is the display name of a freshly added row.
const DefaultRowName = "New row"

// NewLedger returns the default seeded ledger: every cell zero and VAT-included.
func NewLedger() model.Ledger {
	return model.Ledger{Sections: []model.Section{
		seedSection(model.SectionRevenue, "Revenue", "Product sales", "Service revenue", "Other income"),
		{
			ID:   model.SectionVAT,
			Name: "VAT",
			Rows: []model.Row{
				model.NewRow(model.RowGrossVAT, "Gross VAT"),
				model.NewRow(model.RowVATRefunds, "VAT refunds"),
			},
		},
		seedSection(model.SectionCOGS, "Cost of Goods Sold", "Raw materials", "Packaging", "Freight in", "Direct labor"),
		seedSection(model.SectionOPEX, "Operating Expenses", "Salaries", "Rent", "Marketing", "Utilities", "Software", "Professional services"),
	}}
}

func seedSection(sid model.SectionID, name string, rowNames ...string) model.Section {
	s := model.Section{ID: sid, Name: name, Rows: make([]model.Row, len(rowNames))}
	for i, rn := range rowNames {
		s.Rows[i] = model.NewRow(id.FormatRowID(string(sid), i+1), rn)
	}
	return s
}
