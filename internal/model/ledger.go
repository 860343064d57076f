package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// SectionID identifies one of the four fixed ledger sections.
type SectionID string

const (
	SectionRevenue SectionID = "revenue"
	SectionVAT     SectionID = "vat"
	SectionCOGS    SectionID = "cogs"
	SectionOPEX    SectionID = "opex"
)

// SectionOrder is the fixed order of sections in every ledger.
var SectionOrder = []SectionID{SectionRevenue, SectionVAT, SectionCOGS, SectionOPEX}

// Fixed rows of the VAT section.
const (
	RowGrossVAT   = "vat-1" // computed from revenue, read-only
	RowVATRefunds = "vat-2" // written by users and by the refund rule
)

// Row is a named line of the grid with one cell per month.
type Row struct {
	ID     string
	Name   string
	Values [NumMonths]Cell
}

// NewRow returns a row whose cells are all zero and VAT-included.
func NewRow(id, name string) Row {
	r := Row{ID: id, Name: name}
	for i := range r.Values {
		r.Values[i] = NewCell(decimal.Zero)
	}
	return r
}

// Cell returns the cell for month m.
func (r Row) Cell(m Month) Cell {
	return r.Values[m]
}

type rowJSON struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Values map[string]Cell `json:"values"`
}

// monthCells orders the month keys by calendar when encoded.
type monthCells struct {
	Jan Cell `json:"jan"`
	Feb Cell `json:"feb"`
	Mar Cell `json:"mar"`
	Apr Cell `json:"apr"`
	May Cell `json:"may"`
	Jun Cell `json:"jun"`
	Jul Cell `json:"jul"`
	Aug Cell `json:"aug"`
	Sep Cell `json:"sep"`
	Oct Cell `json:"oct"`
	Nov Cell `json:"nov"`
	Dec Cell `json:"dec"`
}

// MarshalJSON writes values keyed by month ("jan".."dec"), in calendar order.
func (r Row) MarshalJSON() ([]byte, error) {
	v := r.Values
	return json.Marshal(struct {
		ID     string     `json:"id"`
		Name   string     `json:"name"`
		Values monthCells `json:"values"`
	}{
		ID:   r.ID,
		Name: r.Name,
		Values: monthCells{
			Jan: v[Jan], Feb: v[Feb], Mar: v[Mar], Apr: v[Apr], May: v[May], Jun: v[Jun],
			Jul: v[Jul], Aug: v[Aug], Sep: v[Sep], Oct: v[Oct], Nov: v[Nov], Dec: v[Dec],
		},
	})
}

// UnmarshalJSON reads values keyed by month. Missing months are zero and
// VAT-included; unknown keys are rejected.
func (r *Row) UnmarshalJSON(data []byte) error {
	var raw rowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	row := NewRow(raw.ID, raw.Name)
	for key, cell := range raw.Values {
		m, err := ParseMonth(key)
		if err != nil {
			return fmt.Errorf("row %q: %w", raw.ID, err)
		}
		row.Values[m] = cell
	}
	*r = row
	return nil
}

// Section is an ordered list of rows.
type Section struct {
	ID   SectionID `json:"id"`
	Name string    `json:"name"`
	Rows []Row     `json:"rows"`
}

// RowIndex returns the position of rowID, or -1.
func (s Section) RowIndex(rowID string) int {
	for i, r := range s.Rows {
		if r.ID == rowID {
			return i
		}
	}
	return -1
}

// Row returns the row with the given id.
func (s Section) Row(rowID string) (Row, bool) {
	i := s.RowIndex(rowID)
	if i < 0 {
		return Row{}, false
	}
	return s.Rows[i], true
}

// Ledger is the root aggregate: the four sections in fixed order.
type Ledger struct {
	Sections []Section `json:"sections"`
}

// SectionIndex returns the position of section id, or -1.
func (l Ledger) SectionIndex(id SectionID) int {
	for i, s := range l.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Section returns the section with the given id.
func (l Ledger) Section(id SectionID) (Section, bool) {
	i := l.SectionIndex(id)
	if i < 0 {
		return Section{}, false
	}
	return l.Sections[i], true
}

// FindRow locates a row anywhere in the ledger.
func (l Ledger) FindRow(rowID string) (SectionID, Row, bool) {
	for _, s := range l.Sections {
		if r, ok := s.Row(rowID); ok {
			return s.ID, r, true
		}
	}
	return "", Row{}, false
}

// Clone returns a deep copy. Edits on the copy never reach l.
func (l Ledger) Clone() Ledger {
	out := Ledger{Sections: make([]Section, len(l.Sections))}
	for i, s := range l.Sections {
		rows := make([]Row, len(s.Rows))
		copy(rows, s.Rows)
		out.Sections[i] = Section{ID: s.ID, Name: s.Name, Rows: rows}
	}
	return out
}
