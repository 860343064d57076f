package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Cell is one monetary value in one month of a row.
type Cell struct {
	Value       decimal.Decimal
	VATIncluded bool
}

// NewCell returns a VAT-included cell holding v.
func NewCell(v decimal.Decimal) Cell {
	return Cell{Value: v, VATIncluded: true}
}

type cellJSON struct {
	Value       decimal.Decimal `json:"value"`
	VATIncluded *bool           `json:"vatIncluded,omitempty"`
}

// MarshalJSON always writes the object form.
func (c Cell) MarshalJSON() ([]byte, error) {
	included := c.VATIncluded
	return json.Marshal(cellJSON{Value: c.Value, VATIncluded: &included})
}

// UnmarshalJSON accepts the object form or a legacy bare number. A bare
// number, or an object without the flag, is VAT-included.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = NewCell(decimal.Zero)
		return nil
	}

	if data[0] != '{' {
		var v decimal.Decimal
		if err := v.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("parsing cell value %s: %w", data, err)
		}
		*c = NewCell(v)
		return nil
	}

	var raw cellJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing cell: %w", err)
	}
	*c = NewCell(raw.Value)
	if raw.VATIncluded != nil {
		c.VATIncluded = *raw.VATIncluded
	}
	return nil
}
