// Package session is the surface a caller drives: one ledger, the queries
// over it, the edits against it and the export of it. A Session is not safe
// for concurrent use; Store hands out one per caller.
package session

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/calc"
	"github.com/cleared-dev/pnl/internal/editlog"
	"github.com/cleared-dev/pnl/internal/export"
	"github.com/cleared-dev/pnl/internal/grid"
	"github.com/cleared-dev/pnl/internal/model"
)

// Edit actions recorded in the history.
const (
	ActionUpdateValue = "update_cell_value"
	ActionUpdateVAT   = "update_cell_vat"
	ActionRename      = "rename_row"
	ActionAddRow      = "add_row"
	ActionRemoveRow   = "remove_row"
	ActionReorder     = "reorder_row"
)

// Session owns one ledger for the lifetime of a caller.
type Session struct {
	id      string
	ledger  model.Ledger
	history []editlog.Entry
	now     func() time.Time
}

// New starts a session over l. Computed rows are brought up to date first.
func New(id string, l model.Ledger) *Session {
	return &Session{id: id, ledger: grid.Normalize(l), now: time.Now}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Ledger returns the current ledger. Callers must not modify it.
func (s *Session) Ledger() model.Ledger { return s.ledger }

// History returns the edits applied so far, oldest first.
func (s *Session) History() []editlog.Entry {
	out := make([]editlog.Entry, len(s.history))
	copy(out, s.history)
	return out
}

// SectionTotals returns one section's monthly and yearly totals. The VAT
// section total is gross VAT minus refunds.
func (s *Session) SectionTotals(sid model.SectionID) (calc.Series, bool) {
	sec, ok := s.ledger.Section(sid)
	if !ok {
		return calc.Series{}, false
	}
	if sid == model.SectionVAT {
		return calc.Derive(s.ledger).VATNet, true
	}
	return calc.SectionTotals(sec), true
}

// RowTotal returns the yearly total of a row anywhere in the ledger.
func (s *Session) RowTotal(rowID string) (decimal.Decimal, bool) {
	_, r, ok := s.ledger.FindRow(rowID)
	if !ok {
		return decimal.Zero, false
	}
	return calc.RowTotal(r), true
}

// RowActions reports which edits are enabled for a row.
func (s *Session) RowActions(sid model.SectionID, rowID string) grid.RowActions {
	return grid.ActionsFor(s.ledger, sid, rowID)
}

// CanAddRow reports whether rows can be added to the section.
func (s *Session) CanAddRow(sid model.SectionID) bool {
	return grid.CanAddRow(s.ledger, sid)
}

// Metrics derives every P&L figure from the current ledger.
func (s *Session) Metrics() calc.Metrics {
	return calc.Derive(s.ledger)
}

// Serialize returns the export lines for the current ledger.
func (s *Session) Serialize() []export.Line {
	return export.Serialize(s.ledger)
}

func (s *Session) apply(l model.Ledger, err error, e editlog.Entry) error {
	if err != nil {
		return err
	}
	s.ledger = l
	e.Timestamp = s.now().UTC()
	e.Session = s.id
	s.history = append(s.history, e)
	return nil
}

// UpdateCellValue sets a cell's value.
func (s *Session) UpdateCellValue(sid model.SectionID, rowID string, m model.Month, v decimal.Decimal) error {
	l, err := grid.UpdateCellValue(s.ledger, sid, rowID, m, v)
	return s.apply(l, err, editlog.Entry{
		Action: ActionUpdateValue, Section: string(sid), RowID: rowID, Month: m.Key(), Details: v.String(),
	})
}

// SetCellText sets a cell's value from user-typed text. The history records
// the value as stored.
func (s *Session) SetCellText(sid model.SectionID, rowID string, m model.Month, text string) error {
	l, err := grid.UpdateCellText(s.ledger, sid, rowID, m, text)
	var details string
	if err == nil {
		if _, r, ok := l.FindRow(rowID); ok {
			details = r.Values[m].Value.String()
		}
	}
	return s.apply(l, err, editlog.Entry{
		Action: ActionUpdateValue, Section: string(sid), RowID: rowID, Month: m.Key(), Details: details,
	})
}

// UpdateCellVATFlag sets whether a cost cell includes VAT.
func (s *Session) UpdateCellVATFlag(sid model.SectionID, rowID string, m model.Month, included bool) error {
	l, err := grid.UpdateCellVATFlag(s.ledger, sid, rowID, m, included)
	details := "excluded"
	if included {
		details = "included"
	}
	return s.apply(l, err, editlog.Entry{
		Action: ActionUpdateVAT, Section: string(sid), RowID: rowID, Month: m.Key(), Details: details,
	})
}

// RenameRow changes a row's display name.
func (s *Session) RenameRow(sid model.SectionID, rowID, name string) error {
	l, err := grid.RenameRow(s.ledger, sid, rowID, name)
	return s.apply(l, err, editlog.Entry{Action: ActionRename, Section: string(sid), RowID: rowID, Details: name})
}

// AddRow appends a row and returns its ID.
func (s *Session) AddRow(sid model.SectionID) (string, error) {
	l, rowID, err := grid.AddRow(s.ledger, sid)
	err = s.apply(l, err, editlog.Entry{Action: ActionAddRow, Section: string(sid), RowID: rowID})
	if err != nil {
		return "", err
	}
	return rowID, nil
}

// RemoveRow deletes a row.
func (s *Session) RemoveRow(sid model.SectionID, rowID string) error {
	l, err := grid.RemoveRow(s.ledger, sid, rowID)
	return s.apply(l, err, editlog.Entry{Action: ActionRemoveRow, Section: string(sid), RowID: rowID})
}

// ReorderRow moves a row before another row of the same section.
func (s *Session) ReorderRow(sid model.SectionID, movingID, beforeID string) error {
	l, err := grid.ReorderRow(s.ledger, sid, movingID, beforeID)
	details := "before " + beforeID
	if beforeID == "" {
		details = "to end"
	}
	return s.apply(l, err, editlog.Entry{Action: ActionReorder, Section: string(sid), RowID: movingID, Details: details})
}
