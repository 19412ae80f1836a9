// Package renderer turns an assembled accrual report into its two output
// forms: the styled xlsx workbook handed to accounting, and a markdown
// summary for the terminal.
package renderer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/etnz/accrual"
)

// sheetName is the single worksheet of the output workbook.
const sheetName = "Accruals"

// headers is the contractual column layout. Columns D and F are spacers and
// H carries the untruncated journal entry; all three are hidden.
var headers = []string{
	"GL Account #",
	"Amount",
	"Vendor",
	"",
	"Ref PO / Invoice",
	"",
	"Description",
	"JE Entry",
	"JE Entry (30 chars)",
}

var hiddenColumns = []string{"D", "F", "H"}

var columnWidths = map[string]float64{
	"A": 15, "B": 12, "C": 25, "D": 3, "E": 30, "F": 3, "G": 35, "H": 35, "I": 35,
}

const currencyFormat = "$#,##0.00"

// styles holds the resolved style IDs of one workbook.
type styles struct {
	header      int
	text        [2]int // [light, white]
	amount      [2]int // [light, white], currency format
	totalText   int
	totalAmount int
}

// Write renders the report and saves it at path.
func Write(rep *accrual.Report, path string) error {
	f, err := Build(rep)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// WriteTo renders the report into w.
func WriteTo(rep *accrual.Report, w io.Writer) error {
	f, err := Build(rep)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// Build renders the report into an in-memory workbook: one header row, one
// row per record with alternating fills restarting on each GL-account group,
// and a final TOTAL row. The caller owns the returned file.
func Build(rep *accrual.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, err
	}
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot create report styles: %w", err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetCellStyle(sheetName, "A1", "I1", st.header)

	row := 2
	for _, group := range rep.Groups() {
		for i, rec := range group {
			if err := writeRecord(f, st, row, i, rec); err != nil {
				f.Close()
				return nil, err
			}
			row++
		}
	}

	if err := writeTotal(f, st, row, rep.Total); err != nil {
		f.Close()
		return nil, err
	}

	if err := decorate(f, row); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// writeRecord writes one record at the given sheet row. nth is the record's
// index within its GL group and drives the alternating fill.
func writeRecord(f *excelize.File, st styles, row, nth int, rec accrual.Record) error {
	shade := nth % 2 // 0 light, 1 white

	values := []interface{}{
		rec.GLAccount,
		rec.Amount.AsFloat(),
		rec.Vendor,
		"",
		rec.Reference,
		"",
		rec.Description,
		rec.JournalEntry,
		rec.JournalEntry30,
	}
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}

	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(values), row)
	if err := f.SetCellStyle(sheetName, first, last, st.text[shade]); err != nil {
		return err
	}
	amount, _ := excelize.CoordinatesToCellName(2, row)
	return f.SetCellStyle(sheetName, amount, amount, st.amount[shade])
}

func writeTotal(f *excelize.File, st styles, row int, total accrual.Money) error {
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	if err := f.SetCellValue(sheetName, first, "TOTAL"); err != nil {
		return err
	}
	amount, _ := excelize.CoordinatesToCellName(2, row)
	if err := f.SetCellValue(sheetName, amount, total.AsFloat()); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, first, last, st.totalText); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, amount, amount, st.totalAmount)
}

// decorate applies the workbook chrome: widths, hidden columns, frozen
// header, filter and print setup. lastRow is the TOTAL row.
func decorate(f *excelize.File, lastRow int) error {
	for col, width := range columnWidths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}
	for _, col := range hiddenColumns {
		if err := f.SetColVisible(sheetName, col, false); err != nil {
			return err
		}
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	if err := f.AutoFilter(sheetName, fmt.Sprintf("A1:I%d", lastRow), nil); err != nil {
		return err
	}

	landscape := "landscape"
	letter := 1
	fitWidth, fitHeight := 1, 0
	if err := f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Orientation: &landscape,
		Size:        &letter,
		FitToWidth:  &fitWidth,
		FitToHeight: &fitHeight,
	}); err != nil {
		return err
	}
	side, top := 0.25, 0.75
	return f.SetPageMargins(sheetName, &excelize.PageLayoutMarginsOptions{
		Left: &side, Right: &side, Top: &top, Bottom: &top,
	})
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	numFmt := currencyFormat
	thin := func(color string) []excelize.Border {
		return []excelize.Border{
			{Type: "left", Color: color, Style: 1},
			{Type: "right", Color: color, Style: 1},
			{Type: "top", Color: color, Style: 1},
			{Type: "bottom", Color: color, Style: 1},
		}
	}
	medium := []excelize.Border{
		{Type: "left", Color: "4472C4", Style: 2},
		{Type: "right", Color: "4472C4", Style: 2},
		{Type: "top", Color: "4472C4", Style: 2},
		{Type: "bottom", Color: "4472C4", Style: 2},
	}
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 11, Bold: true, Color: "FFFFFF"},
		Fill:      fill("4472C4"),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thin("FFFFFF"),
	})
	if err != nil {
		return st, err
	}

	for shade, color := range []string{"F2F2F2", "FFFFFF"} {
		st.text[shade], err = f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: "Calibri", Size: 10},
			Fill:      fill(color),
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			Border:    thin("D9D9D9"),
		})
		if err != nil {
			return st, err
		}
		st.amount[shade], err = f.NewStyle(&excelize.Style{
			Font:         &excelize.Font{Family: "Calibri", Size: 10},
			Fill:         fill(color),
			Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
			Border:       thin("D9D9D9"),
			CustomNumFmt: &numFmt,
		})
		if err != nil {
			return st, err
		}
	}

	st.totalText, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 11, Bold: true},
		Fill:      fill("D9E1F2"),
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    medium,
	})
	if err != nil {
		return st, err
	}
	st.totalAmount, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Size: 11, Bold: true},
		Fill:         fill("D9E1F2"),
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       medium,
		CustomNumFmt: &numFmt,
	})
	return st, err
}
