package export

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	lines := Serialize(sampleLedger(t))

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, lines, "FY2025"))
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"FY2025"}, f.GetSheetList())

	head, err := f.GetCellValue("FY2025", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Item", head)

	rows, err := f.GetRows("FY2025")
	require.NoError(t, err)
	require.Len(t, rows, len(lines)+1)
	assert.Equal(t, "Product sales", rows[1][0])
}

func TestWriteXLSX_RawValues(t *testing.T) {
	lines := Serialize(sampleLedger(t))

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, lines, ""))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := DefaultSheetName
	for i, ln := range lines {
		if ln.Label != "Total Revenue" {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(2, i+2)
		v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, "11800", v)
	}
}

func TestWriteXLSX_LongSheetName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil, strings.Repeat("x", 40)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, strings.Repeat("x", 31), f.GetSheetList()[0])
}

func TestWriteXLSX_LongSheetNameMultibyte(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil, strings.Repeat("ש", 40)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got := f.GetSheetList()[0]
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ש", 31), got)
}
