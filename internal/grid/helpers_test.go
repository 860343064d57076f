package grid

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/pnl/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want, got), msgAndArgs...)
	}
}

func cellAt(t *testing.T, l model.Ledger, sid model.SectionID, rowID string, m model.Month) model.Cell {
	t.Helper()
	s, ok := l.Section(sid)
	require.True(t, ok, "section %s", sid)
	r, ok := s.Row(rowID)
	require.True(t, ok, "row %s", rowID)
	return r.Values[m]
}

func refunds(t *testing.T, l model.Ledger, m model.Month) decimal.Decimal {
	t.Helper()
	return cellAt(t, l, model.SectionVAT, model.RowVATRefunds, m).Value
}

func rowIDs(l model.Ledger, sid model.SectionID) []string {
	s, _ := l.Section(sid)
	ids := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		ids[i] = r.ID
	}
	return ids
}

func mustValue(t *testing.T, l model.Ledger, sid model.SectionID, rowID string, m model.Month, v string) model.Ledger {
	t.Helper()
	out, err := UpdateCellValue(l, sid, rowID, m, dec(v))
	require.NoError(t, err)
	return out
}

func mustFlag(t *testing.T, l model.Ledger, sid model.SectionID, rowID string, m model.Month, included bool) model.Ledger {
	t.Helper()
	out, err := UpdateCellVATFlag(l, sid, rowID, m, included)
	require.NoError(t, err)
	return out
}
