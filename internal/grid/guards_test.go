package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/pnl/internal/model"
)

func TestGuards(t *testing.T) {
	l := NewLedger()

	assert.True(t, CanEditValue(l, model.SectionRevenue, "revenue-1"))
	assert.True(t, CanEditValue(l, model.SectionVAT, model.RowVATRefunds))
	assert.False(t, CanEditValue(l, model.SectionVAT, model.RowGrossVAT))
	assert.False(t, CanEditValue(l, model.SectionCOGS, "missing"))

	assert.True(t, CanToggleVAT(l, model.SectionCOGS, "cogs-1"))
	assert.True(t, CanToggleVAT(l, model.SectionOPEX, "opex-1"))
	assert.False(t, CanToggleVAT(l, model.SectionRevenue, "revenue-1"))
	assert.False(t, CanToggleVAT(l, model.SectionVAT, model.RowVATRefunds))

	for _, sid := range []model.SectionID{model.SectionRevenue, model.SectionCOGS, model.SectionOPEX} {
		assert.True(t, CanAddRow(l, sid), sid)
		assert.True(t, CanReorder(l, sid), sid)
	}
	assert.False(t, CanAddRow(l, model.SectionVAT))
	assert.False(t, CanReorder(l, model.SectionVAT))
	assert.False(t, CanRemoveRow(l, model.SectionVAT, model.RowVATRefunds))

	assert.True(t, CanRemoveRow(l, model.SectionRevenue, "revenue-1"))
	l, _ = RemoveRow(l, model.SectionRevenue, "revenue-1")
	l, _ = RemoveRow(l, model.SectionRevenue, "revenue-2")
	assert.False(t, CanRemoveRow(l, model.SectionRevenue, "revenue-3"))
}

func TestActionsFor(t *testing.T) {
	l := NewLedger()

	tests := []struct {
		name  string
		sid   model.SectionID
		rowID string
		want  RowActions
	}{
		{"revenue row", model.SectionRevenue, "revenue-1", RowActions{Editable: true, Removable: true, Reorderable: true}},
		{"cost row", model.SectionCOGS, "cogs-1", RowActions{Editable: true, VATToggle: true, Removable: true, Reorderable: true}},
		{"gross VAT", model.SectionVAT, model.RowGrossVAT, RowActions{}},
		{"VAT refunds", model.SectionVAT, model.RowVATRefunds, RowActions{Editable: true}},
		{"unknown row", model.SectionOPEX, "opex-99", RowActions{}},
		{"unknown section", "tax", "tax-1", RowActions{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionsFor(l, tt.sid, tt.rowID))
		})
	}

	l, _ = RemoveRow(l, model.SectionRevenue, "revenue-1")
	l, _ = RemoveRow(l, model.SectionRevenue, "revenue-2")
	assert.False(t, ActionsFor(l, model.SectionRevenue, "revenue-3").Removable)
}
