package editlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		Session:   "cli",
		Action:    "update_cell_value",
		Section:   "cogs",
		RowID:     "cogs-1",
		Month:     "jan",
		Details:   "1,180",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "update_cell_value", entries[0].Action)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Action = "remove_row"
	e2.Month = ""
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "update_cell_value", entries[0].Action)
	assert.Equal(t, "remove_row", entries[1].Action)
	assert.Empty(t, entries[1].Month)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "edit-log.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestMarshalUnmarshal(t *testing.T) {
	e := testEntry()
	row := MarshalEntry(e)
	assert.Len(t, row, 7)
	assert.Equal(t, "2025-01-15T10:30:00Z", row[0])

	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.True(t, e.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, e.Session, got.Session)
	assert.Equal(t, e.RowID, got.RowID)
	assert.Equal(t, e.Details, got.Details)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 7 fields")
}

func TestWriteEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, []Entry{testEntry(), testEntry()}))

	entries, err := ReadEntries(&buf)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSelect(t *testing.T) {
	later := testTime.Add(time.Hour)
	entries := []Entry{
		testEntry(),
		{Timestamp: later, Session: "cli", Action: "add_row", Section: "opex", RowID: "opex-7"},
		{Timestamp: later, Session: "web", Action: "update_cell_value", Section: "revenue", RowID: "revenue-1", Month: "feb"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string // RowIDs
	}{
		{"empty filter", Filter{}, []string{"cogs-1", "opex-7", "revenue-1"}},
		{"action", Filter{Action: "update_cell_value"}, []string{"cogs-1", "revenue-1"}},
		{"session and section", Filter{Session: "cli", Section: "opex"}, []string{"opex-7"}},
		{"month ignores case", Filter{Month: "FEB"}, []string{"revenue-1"}},
		{"since is inclusive", Filter{Since: later}, []string{"opex-7", "revenue-1"}},
		{"no match", Filter{RowID: "cogs-9"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range Select(entries, tt.filter) {
				got = append(got, e.RowID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []string{"cli", "web"}, Sessions(entries))
}
