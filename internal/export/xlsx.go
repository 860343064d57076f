package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/pnl/internal/model"
)

// DefaultSheetName is used when no sheet name is configured.
const DefaultSheetName = "P&L"

const maxSheetName = 31

// WriteXLSX writes lines as a single-sheet workbook. Cells hold the numeric
// values; thousands separators and percent signs come from number formats.
func WriteXLSX(w io.Writer, lines []Line, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Excel caps sheet names at 31 characters.
	if r := []rune(sheetName); len(r) > maxSheetName {
		sheetName = string(r[:maxSheetName])
	}
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 32); err != nil {
		return fmt.Errorf("set label width: %w", err)
	}
	last, err := excelize.ColumnNumberToName(numFields)
	if err != nil {
		return fmt.Errorf("last column: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", last, 12); err != nil {
		return fmt.Errorf("set value width: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	moneyFmt := "#,##0"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return fmt.Errorf("create money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create total style: %w", err)
	}
	pctFmt := `0.0"%"`
	pctStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt, Font: &excelize.Font{Italic: true}})
	if err != nil {
		return fmt.Errorf("create percent style: %w", err)
	}

	for i, h := range Header() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", last+"1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, ln := range lines {
		rowNum := i + 2
		label, _ := excelize.CoordinatesToCellName(colLabel+1, rowNum)
		if err := f.SetCellValue(sheetName, label, ln.Label); err != nil {
			return fmt.Errorf("write label row %d: %w", rowNum, err)
		}

		for _, m := range model.Months() {
			cell, _ := excelize.CoordinatesToCellName(colFirst+int(m)+1, rowNum)
			if err := f.SetCellValue(sheetName, cell, ln.Monthly[m].InexactFloat64()); err != nil {
				return fmt.Errorf("write %s: %w", cell, err)
			}
		}
		total, _ := excelize.CoordinatesToCellName(colYearly+1, rowNum)
		if err := f.SetCellValue(sheetName, total, ln.Yearly.InexactFloat64()); err != nil {
			return fmt.Errorf("write %s: %w", total, err)
		}

		style := moneyStyle
		switch ln.Kind {
		case KindPercent:
			style = pctStyle
		case KindTotal:
			style = totalStyle
		}
		first, _ := excelize.CoordinatesToCellName(colFirst+1, rowNum)
		if err := f.SetCellStyle(sheetName, first, total, style); err != nil {
			return fmt.Errorf("style row %d: %w", rowNum, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return fmt.Errorf("freeze panes: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
