package grid

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/pnl/internal/calc"
	"github.com/cleared-dev/pnl/internal/model"
)

// cellChange records one cell before and after a mutation.
type cellChange struct {
	Section model.SectionID
	RowID   string
	Month   model.Month
	Before  model.Cell
	After   model.Cell
}

// refundDelta is the VAT refund rule: how far a change to a cost cell moves
// vat-2 for the same month. Revenue and VAT cells never move it.
//
// A flag flip on a positive value moves the VAT it contains (18/118 of the
// value before the flip) into or out of the refunds. A value change on a
// VAT-excluded cell moves 18/118 of the difference. A value change on a
// VAT-included cell moves nothing.
func refundDelta(ch cellChange) decimal.Decimal {
	if ch.Section == model.SectionRevenue || ch.Section == model.SectionVAT {
		return decimal.Zero
	}

	if ch.Before.VATIncluded != ch.After.VATIncluded {
		if !ch.Before.Value.IsPositive() {
			return decimal.Zero
		}
		amount := calc.VATPortion(ch.Before.Value)
		if ch.After.VATIncluded {
			return amount.Neg()
		}
		return amount
	}

	if ch.After.VATIncluded {
		return decimal.Zero
	}
	return calc.VATPortion(ch.After.Value.Sub(ch.Before.Value))
}

// settle runs the side effects of the given changes on l, in order: the
// refund rule first, then the gross VAT row is rebuilt from revenue. It is
// the only place one row's edit writes to another row.
func settle(l *model.Ledger, changes ...cellChange) {
	for _, ch := range changes {
		delta := refundDelta(ch)
		if delta.IsZero() {
			continue
		}
		refunds := refundCell(l, ch.Month)
		if refunds == nil {
			continue
		}
		refunds.Value = floorZero(refunds.Value.Add(delta))
	}
	syncGrossVAT(l)
}

// syncGrossVAT overwrites every vat-1 cell with the VAT contained in the
// current revenue for that month.
func syncGrossVAT(l *model.Ledger) {
	si := l.SectionIndex(model.SectionVAT)
	if si < 0 {
		return
	}
	ri := l.Sections[si].RowIndex(model.RowGrossVAT)
	if ri < 0 {
		return
	}
	row := &l.Sections[si].Rows[ri]
	for _, m := range model.Months() {
		row.Values[m] = model.NewCell(calc.GrossVAT(*l, m))
	}
}

func refundCell(l *model.Ledger, m model.Month) *model.Cell {
	si := l.SectionIndex(model.SectionVAT)
	if si < 0 {
		return nil
	}
	ri := l.Sections[si].RowIndex(model.RowVATRefunds)
	if ri < 0 {
		return nil
	}
	return &l.Sections[si].Rows[ri].Values[m]
}

func floorZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// floorRefunds clamps every negative vat-2 cell to zero.
func floorRefunds(l *model.Ledger) {
	for _, m := range model.Months() {
		if c := refundCell(l, m); c != nil {
			c.Value = floorZero(c.Value)
		}
	}
}

// Normalize returns a copy of l with the computed rows brought up to date
// and negative refunds floored at zero. Use it on ledgers that did not come
// through the edit operations.
func Normalize(l model.Ledger) model.Ledger {
	out := l.Clone()
	floorRefunds(&out)
	settle(&out)
	return out
}
