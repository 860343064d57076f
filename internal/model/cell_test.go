package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {
	c := NewCell(decimal.NewFromInt(5))
	assert.True(t, c.VATIncluded)
	assert.True(t, c.Value.Equal(decimal.NewFromInt(5)))
}

func TestCellUnmarshal(t *testing.T) {
	tests := []struct {
		input        string
		wantValue    string
		wantIncluded bool
	}{
		{`1180`, "1180", true},
		{`-25.5`, "-25.5", true},
		{`"300"`, "300", true},
		{`null`, "0", true},
		{`{"value": 1180, "vatIncluded": false}`, "1180", false},
		{`{"value": 42, "vatIncluded": true}`, "42", true},
		{`{"value": 7}`, "7", true},
		{`{}`, "0", true},
	}
	for _, tt := range tests {
		var c Cell
		require.NoError(t, json.Unmarshal([]byte(tt.input), &c), "input: %s", tt.input)
		assert.True(t, decimal.RequireFromString(tt.wantValue).Equal(c.Value), "value for %s: %s", tt.input, c.Value)
		assert.Equal(t, tt.wantIncluded, c.VATIncluded, "flag for %s", tt.input)
	}
}

func TestCellUnmarshal_Errors(t *testing.T) {
	for _, input := range []string{`"abc"`, `true`, `{"value": "x"}`, `[1]`} {
		var c Cell
		assert.Error(t, json.Unmarshal([]byte(input), &c), "input: %s", input)
	}
}

func TestCellMarshal(t *testing.T) {
	data, err := json.Marshal(Cell{Value: decimal.NewFromInt(1180), VATIncluded: false})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": "1180", "vatIncluded": false}`, string(data))

	var back Cell
	require.NoError(t, json.Unmarshal(data, &back))
	assert.False(t, back.VATIncluded)
	assert.True(t, back.Value.Equal(decimal.NewFromInt(1180)))
}
