package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/pnl/internal/model"
)

const (
	numFields = model.NumMonths + 2
	colLabel  = 0
	colFirst  = 1
	colYearly = numFields - 1
)

// Header returns the CSV header: label, the twelve months, total.
func Header() []string {
	row := make([]string, numFields)
	row[colLabel] = "Item"
	for _, m := range model.Months() {
		row[colFirst+int(m)] = m.Label()
	}
	row[colYearly] = "Total"
	return row
}

// MarshalLine converts a Line to a CSV row. With raw set, values are written
// at full precision instead of display format.
func MarshalLine(ln Line, raw bool) []string {
	row := make([]string, numFields)
	row[colLabel] = ln.Label
	for _, m := range model.Months() {
		if raw {
			row[colFirst+int(m)] = ln.Monthly[m].String()
		} else {
			row[colFirst+int(m)] = ln.Display(m)
		}
	}
	if raw {
		row[colYearly] = ln.Yearly.String()
	} else {
		row[colYearly] = ln.DisplayYearly()
	}
	return row
}

// WriteCSV writes lines with a header row.
func WriteCSV(w io.Writer, lines []Line, raw bool) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, ln := range lines {
		if err := cw.Write(MarshalLine(ln, raw)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
