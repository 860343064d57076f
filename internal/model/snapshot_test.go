package model

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTestdata(t *testing.T) {
	l, err := LoadFile("../../testdata/ledger-legacy.json")
	require.NoError(t, err)
	require.Len(t, l.Sections, 4)

	_, rev, ok := l.FindRow("revenue-1")
	require.True(t, ok)
	assert.True(t, rev.Values[Jan].Value.Equal(decimal.NewFromInt(11800)))
	assert.True(t, rev.Values[Jan].VATIncluded, "bare numbers are VAT-included")

	_, cogs, ok := l.FindRow("cogs-1")
	require.True(t, ok)
	assert.False(t, cogs.Values[Feb].VATIncluded)

	_, refunds, ok := l.FindRow(RowVATRefunds)
	require.True(t, ok)
	assert.True(t, refunds.Values[Feb].Value.Equal(decimal.NewFromInt(360)))
	assert.True(t, refunds.Values[Feb].VATIncluded)
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := testLedger()
	l.Sections[2].Rows[1].Values[Aug] = Cell{Value: decimal.RequireFromString("12.34"), VATIncluded: false}

	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, l))

	got, err := ReadLedger(&buf)
	require.NoError(t, err)
	require.Len(t, got.Sections, len(l.Sections))
	for i := range l.Sections {
		assert.Equal(t, l.Sections[i].ID, got.Sections[i].ID)
		require.Len(t, got.Sections[i].Rows, len(l.Sections[i].Rows))
		for j, r := range l.Sections[i].Rows {
			gr := got.Sections[i].Rows[j]
			assert.Equal(t, r.ID, gr.ID)
			assert.Equal(t, r.Name, gr.Name)
			for _, m := range Months() {
				assert.True(t, r.Values[m].Value.Equal(gr.Values[m].Value), "%s %s", r.ID, m)
				assert.Equal(t, r.Values[m].VATIncluded, gr.Values[m].VATIncluded, "%s %s", r.ID, m)
			}
		}
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, SaveFile(path, testLedger()))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, got.Sections, 4)
}

func TestReadLedger_Invalid(t *testing.T) {
	_, err := ReadLedger(strings.NewReader(`{"sections": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ledger")

	_, err = ReadLedger(strings.NewReader(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding ledger")
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
