package grid

import "github.com/cleared-dev/pnl/internal/model"

// CanEditValue reports whether UpdateCellValue would be accepted for the row.
func CanEditValue(l model.Ledger, sid model.SectionID, rowID string) bool {
	return checkValueEdit(l, sid, rowID, model.Jan) == nil
}

// CanToggleVAT reports whether UpdateCellVATFlag would be accepted for the row.
func CanToggleVAT(l model.Ledger, sid model.SectionID, rowID string) bool {
	return checkFlagEdit(l, sid, rowID, model.Jan) == nil
}

// CanAddRow reports whether AddRow would be accepted.
func CanAddRow(l model.Ledger, sid model.SectionID) bool {
	return checkStructural(l, sid) == nil
}

// CanRemoveRow reports whether RemoveRow would be accepted.
func CanRemoveRow(l model.Ledger, sid model.SectionID, rowID string) bool {
	return checkRemove(l, sid, rowID) == nil
}

// CanReorder reports whether rows of the section can be dragged.
func CanReorder(l model.Ledger, sid model.SectionID) bool {
	return checkStructural(l, sid) == nil
}

// RowActions is the enabled state of each per-row edit. Callers render a
// false field as a disabled control.
type RowActions struct {
	Editable    bool
	VATToggle   bool
	Removable   bool
	Reorderable bool
}

// ActionsFor evaluates every guard for one row.
// An unknown row has every action disabled.
func ActionsFor(l model.Ledger, sid model.SectionID, rowID string) RowActions {
	if _, _, err := locate(l, sid, rowID); err != nil {
		return RowActions{}
	}
	return RowActions{
		Editable:    CanEditValue(l, sid, rowID),
		VATToggle:   CanToggleVAT(l, sid, rowID),
		Removable:   CanRemoveRow(l, sid, rowID),
		Reorderable: CanReorder(l, sid),
	}
}
