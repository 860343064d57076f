package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/pnl/internal/model"
)

func TestNewLedger(t *testing.T) {
	l := NewLedger()
	assert.Empty(t, model.Validate(l))

	require.Len(t, l.Sections, 4)
	for i, sid := range model.SectionOrder {
		assert.Equal(t, sid, l.Sections[i].ID)
		assert.NotEmpty(t, l.Sections[i].Name)
	}

	assert.Equal(t, []string{model.RowGrossVAT, model.RowVATRefunds}, rowIDs(l, model.SectionVAT))
	assert.Equal(t, "cogs-1", rowIDs(l, model.SectionCOGS)[0])

	for _, s := range l.Sections {
		for _, r := range s.Rows {
			assert.NotEmpty(t, r.Name, "row %s missing name", r.ID)
			for _, c := range r.Values {
				assert.True(t, c.Value.IsZero(), "row %s", r.ID)
				assert.True(t, c.VATIncluded, "row %s", r.ID)
			}
		}
	}
}

func TestNewLedger_Independent(t *testing.T) {
	a := NewLedger()
	b := NewLedger()
	a.Sections[0].Rows[0].Name = "Changed"
	assert.Equal(t, "Product sales", b.Sections[0].Rows[0].Name)
}
