package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRowID(t *testing.T) {
	tests := []struct {
		prefix string
		seq    int
		want   string
	}{
		{"revenue", 1, "revenue-1"},
		{"cogs", 12, "cogs-12"},
		{"vat", 2, "vat-2"},
	}
	for _, tt := range tests {
		got := FormatRowID(tt.prefix, tt.seq)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseRowID(t *testing.T) {
	tests := []struct {
		input      string
		wantPrefix string
		wantSeq    int
	}{
		{"revenue-1", "revenue", 1},
		{"cogs-12", "cogs", 12},
		{"vat-2", "vat", 2},
		{"my-custom-7", "my-custom", 7},
	}
	for _, tt := range tests {
		prefix, seq, err := ParseRowID(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.wantPrefix, prefix)
		assert.Equal(t, tt.wantSeq, seq)
	}
}

func TestParseRowID_Errors(t *testing.T) {
	badInputs := []string{
		"",
		"cogs",
		"cogs-",
		"-3",
		"cogs-x",
		"cogs-0",
	}
	for _, input := range badInputs {
		_, _, err := ParseRowID(input)
		assert.Error(t, err, "expected error for input: %s", input)
	}
}

func TestNextRowID(t *testing.T) {
	tests := []struct {
		prefix   string
		existing []string
		want     string
	}{
		{"cogs", nil, "cogs-1"},
		{"cogs", []string{"cogs-1", "cogs-2"}, "cogs-3"},
		{"cogs", []string{"cogs-5", "cogs-2"}, "cogs-6"},
		{"opex", []string{"cogs-9", "opex-1", "legacy"}, "opex-2"},
	}
	for _, tt := range tests {
		got := NextRowID(tt.prefix, tt.existing)
		assert.Equal(t, tt.want, got, "existing: %v", tt.existing)
	}
}
