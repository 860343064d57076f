package grid

import "errors"

// Rejections. An operation that returns one of these leaves the ledger
// unchanged; callers render them as disabled actions, not failures.
var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownRow     = errors.New("unknown row")
	ErrInvalidMonth   = errors.New("invalid month")
	ErrReadOnlyRow    = errors.New("row is computed and read-only")
	ErrFixedSection   = errors.New("section rows are fixed")
	ErrVATFlagLocked  = errors.New("VAT treatment cannot be changed in this section")
	ErrLastRow        = errors.New("cannot remove the last row of a section")
	ErrCrossSection   = errors.New("rows can only move within their own section")
)

var noOps = []error{
	ErrUnknownSection,
	ErrUnknownRow,
	ErrInvalidMonth,
	ErrReadOnlyRow,
	ErrFixedSection,
	ErrVATFlagLocked,
	ErrLastRow,
	ErrCrossSection,
}

// IsNoOp reports whether err is an expected rejection of an edit.
func IsNoOp(err error) bool {
	for _, target := range noOps {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
