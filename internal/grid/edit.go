// Package grid implements the edits a user can make to a ledger. Every
// operation takes a ledger and returns a new one; the argument is never
// modified. A rejected edit returns the argument itself and an error for
// which IsNoOp is true.
package grid

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/id"
	"github.com/cleared-dev/pnl/internal/model"
)

// locate returns the section and row positions for a target.
func locate(l model.Ledger, sid model.SectionID, rowID string) (si, ri int, err error) {
	si = l.SectionIndex(sid)
	if si < 0 {
		return -1, -1, fmt.Errorf("%w: %s", ErrUnknownSection, sid)
	}
	ri = l.Sections[si].RowIndex(rowID)
	if ri < 0 {
		return si, -1, fmt.Errorf("%w: %s in %s", ErrUnknownRow, rowID, sid)
	}
	return si, ri, nil
}

func checkValueEdit(l model.Ledger, sid model.SectionID, rowID string, m model.Month) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, int(m))
	}
	if _, _, err := locate(l, sid, rowID); err != nil {
		return err
	}
	if sid == model.SectionVAT && rowID == model.RowGrossVAT {
		return fmt.Errorf("%w: %s", ErrReadOnlyRow, rowID)
	}
	return nil
}

func checkFlagEdit(l model.Ledger, sid model.SectionID, rowID string, m model.Month) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, int(m))
	}
	if _, _, err := locate(l, sid, rowID); err != nil {
		return err
	}
	if sid == model.SectionRevenue || sid == model.SectionVAT {
		return fmt.Errorf("%w: %s", ErrVATFlagLocked, sid)
	}
	return nil
}

func checkStructural(l model.Ledger, sid model.SectionID) error {
	if l.SectionIndex(sid) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSection, sid)
	}
	if sid == model.SectionVAT {
		return fmt.Errorf("%w: %s", ErrFixedSection, sid)
	}
	return nil
}

func checkRemove(l model.Ledger, sid model.SectionID, rowID string) error {
	if err := checkStructural(l, sid); err != nil {
		return err
	}
	si, _, err := locate(l, sid, rowID)
	if err != nil {
		return err
	}
	if len(l.Sections[si].Rows) <= 1 {
		return fmt.Errorf("%w: %s", ErrLastRow, rowID)
	}
	return nil
}

// UpdateCellValue sets the value of one cell, keeping its VAT flag. Writing
// to vat-1 is rejected. An edit to a VAT-excluded cost cell moves 18/118 of
// the difference into vat-2 for the same month.
func UpdateCellValue(l model.Ledger, sid model.SectionID, rowID string, m model.Month, v decimal.Decimal) (model.Ledger, error) {
	if err := checkValueEdit(l, sid, rowID, m); err != nil {
		return l, err
	}
	si, ri, _ := locate(l, sid, rowID)

	out := l.Clone()
	cell := &out.Sections[si].Rows[ri].Values[m]
	ch := cellChange{Section: sid, RowID: rowID, Month: m, Before: *cell}
	cell.Value = v
	if sid == model.SectionVAT && rowID == model.RowVATRefunds {
		cell.Value = floorZero(v)
	}
	ch.After = *cell

	settle(&out, ch)
	return out, nil
}

// UpdateCellText parses user input with ParseAmount and applies it.
func UpdateCellText(l model.Ledger, sid model.SectionID, rowID string, m model.Month, text string) (model.Ledger, error) {
	return UpdateCellValue(l, sid, rowID, m, ParseAmount(text))
}

// UpdateCellVATFlag changes whether a cost cell includes VAT. Setting the
// flag it already has changes nothing.
func UpdateCellVATFlag(l model.Ledger, sid model.SectionID, rowID string, m model.Month, included bool) (model.Ledger, error) {
	if err := checkFlagEdit(l, sid, rowID, m); err != nil {
		return l, err
	}
	si, ri, _ := locate(l, sid, rowID)
	if l.Sections[si].Rows[ri].Values[m].VATIncluded == included {
		return l, nil
	}

	out := l.Clone()
	cell := &out.Sections[si].Rows[ri].Values[m]
	ch := cellChange{Section: sid, RowID: rowID, Month: m, Before: *cell}
	cell.VATIncluded = included
	ch.After = *cell

	settle(&out, ch)
	return out, nil
}

// RenameRow changes a row's display name.
func RenameRow(l model.Ledger, sid model.SectionID, rowID, name string) (model.Ledger, error) {
	si, ri, err := locate(l, sid, rowID)
	if err != nil {
		return l, err
	}
	out := l.Clone()
	out.Sections[si].Rows[ri].Name = name
	return out, nil
}

// AddRow appends a zero-valued row to a section and returns its ID.
func AddRow(l model.Ledger, sid model.SectionID) (model.Ledger, string, error) {
	if err := checkStructural(l, sid); err != nil {
		return l, "", err
	}
	si := l.SectionIndex(sid)

	existing := make([]string, len(l.Sections[si].Rows))
	for i, r := range l.Sections[si].Rows {
		existing[i] = r.ID
	}
	rowID := id.NextRowID(string(sid), existing)

	out := l.Clone()
	out.Sections[si].Rows = append(out.Sections[si].Rows, model.NewRow(rowID, DefaultRowName))
	return out, rowID, nil
}

// RemoveRow deletes a row. The last row of a section cannot be removed.
func RemoveRow(l model.Ledger, sid model.SectionID, rowID string) (model.Ledger, error) {
	if err := checkRemove(l, sid, rowID); err != nil {
		return l, err
	}
	si, ri, _ := locate(l, sid, rowID)

	out := l.Clone()
	rows := out.Sections[si].Rows
	out.Sections[si].Rows = append(rows[:ri:ri], rows[ri+1:]...)
	settle(&out)
	return out, nil
}

// ReorderRow moves a row so that it sits directly before beforeID, or at
// the end when beforeID is empty. Both rows must belong to sid.
func ReorderRow(l model.Ledger, sid model.SectionID, movingID, beforeID string) (model.Ledger, error) {
	if err := checkStructural(l, sid); err != nil {
		return l, err
	}
	si, from, err := locate(l, sid, movingID)
	if err != nil {
		return l, err
	}
	if movingID == beforeID {
		return l, nil
	}
	if beforeID != "" && l.Sections[si].RowIndex(beforeID) < 0 {
		if other, _, ok := l.FindRow(beforeID); ok {
			return l, fmt.Errorf("%w: %s is in %s", ErrCrossSection, beforeID, other)
		}
		return l, fmt.Errorf("%w: %s in %s", ErrUnknownRow, beforeID, sid)
	}

	src := l.Sections[si].Rows
	moving := src[from]
	rows := make([]model.Row, 0, len(src))
	for i, r := range src {
		if i == from {
			continue
		}
		if r.ID == beforeID {
			rows = append(rows, moving)
		}
		rows = append(rows, r)
	}
	if beforeID == "" {
		rows = append(rows, moving)
	}

	out := l.Clone()
	out.Sections[si].Rows = rows
	return out, nil
}
