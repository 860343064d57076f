package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonths(t *testing.T) {
	ms := Months()
	require.Len(t, ms, NumMonths)
	assert.Equal(t, Jan, ms[0])
	assert.Equal(t, Dec, ms[11])
}

func TestMonthKeys(t *testing.T) {
	tests := []struct {
		m     Month
		key   string
		label string
	}{
		{Jan, "jan", "Jan"},
		{Jun, "jun", "Jun"},
		{Dec, "dec", "Dec"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.m.Key())
		assert.Equal(t, tt.label, tt.m.Label())
		assert.Equal(t, tt.key, tt.m.String())
	}
	assert.False(t, Month(12).Valid())
	assert.False(t, Month(-1).Valid())
}

func TestParseMonth(t *testing.T) {
	for _, m := range Months() {
		got, err := ParseMonth(m.Key())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMonth(" MAR ")
	require.NoError(t, err)
	assert.Equal(t, Mar, got)

	for _, bad := range []string{"", "march", "13", "ja"} {
		_, err := ParseMonth(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
