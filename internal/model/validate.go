package model

import "fmt"

// ValidationError describes a single structural violation in a ledger.
type ValidationError struct {
	Section     SectionID
	RowID       string
	Description string
}

func (e ValidationError) Error() string {
	switch {
	case e.RowID != "":
		return fmt.Sprintf("section %s, row %s: %s", e.Section, e.RowID, e.Description)
	case e.Section != "":
		return fmt.Sprintf("section %s: %s", e.Section, e.Description)
	default:
		return e.Description
	}
}

// Validate checks the structural invariants of a ledger:
//
//  1. exactly four sections, in the order revenue, vat, cogs, opex
//  2. the vat section holds exactly vat-1 then vat-2
//  3. every other section holds at least one row
//  4. row ids are non-empty and unique within their section
func Validate(l Ledger) []ValidationError {
	var errs []ValidationError

	if len(l.Sections) != len(SectionOrder) {
		errs = append(errs, ValidationError{
			Description: fmt.Sprintf("expected %d sections, got %d", len(SectionOrder), len(l.Sections)),
		})
	}
	for i, s := range l.Sections {
		if i < len(SectionOrder) && s.ID != SectionOrder[i] {
			errs = append(errs, ValidationError{
				Section:     s.ID,
				Description: fmt.Sprintf("position %d must be section %s", i, SectionOrder[i]),
			})
		}

		seen := make(map[string]bool, len(s.Rows))
		for _, r := range s.Rows {
			if r.ID == "" {
				errs = append(errs, ValidationError{Section: s.ID, Description: "row with empty id"})
				continue
			}
			if seen[r.ID] {
				errs = append(errs, ValidationError{Section: s.ID, RowID: r.ID, Description: "duplicate row id"})
			}
			seen[r.ID] = true
		}

		if s.ID == SectionVAT {
			if len(s.Rows) != 2 || s.Rows[0].ID != RowGrossVAT || s.Rows[1].ID != RowVATRefunds {
				errs = append(errs, ValidationError{
					Section:     s.ID,
					Description: fmt.Sprintf("must contain exactly rows %s and %s", RowGrossVAT, RowVATRefunds),
				})
			}
			continue
		}
		if len(s.Rows) == 0 {
			errs = append(errs, ValidationError{Section: s.ID, Description: "section has no rows"})
		}
	}
	return errs
}
