package accrual

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultExcludedSheets are the summary sheets of a checkbook workbook that
// hold no transactions and are never scanned.
var DefaultExcludedSheets = []string{"Summary", "Non-Eng ACTIVE", "Non-Eng CLEARED"}

// Row is one raw checkbook row: an ordered list of untyped cell values.
type Row []string

// Fixed column layout of a transaction row.
const (
	colVendor = iota
	colAmount
	colPONumber
	colPODate
	colDelivery
	colReceived
	colInvoice
	colCleared
	colDescription

	rowWidth // minimum width of a transaction row
)

func (r Row) cell(i int) string {
	if i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

// Sheet is one cost-center sheet of a checkbook: its GL account identity from
// the header row, and every raw row below it in sheet order.
type Sheet struct {
	Name          string
	GLAccount     string
	GLDescription string
	Rows          []Row
}

// Checkbook is the transactional content of a checkbook workbook, one Sheet
// per cost center, in workbook order.
type Checkbook struct {
	Sheets []Sheet
}

// OpenCheckbook reads the checkbook workbook at path, skipping the excluded
// sheet names (DefaultExcludedSheets when excluded is nil).
//
// An unreadable file is a fatal error. A sheet that cannot be scanned is
// logged and skipped, and reading continues with the next one.
func OpenCheckbook(path string, excluded []string) (*Checkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open checkbook %q: %w", path, err)
	}
	defer f.Close()
	return ReadCheckbook(f, excluded)
}

// NewCheckbook reads a checkbook workbook from r. See OpenCheckbook.
func NewCheckbook(r io.Reader, excluded []string) (*Checkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read checkbook: %w", err)
	}
	defer f.Close()
	return ReadCheckbook(f, excluded)
}

// ReadCheckbook scans an open workbook into a Checkbook.
func ReadCheckbook(f *excelize.File, excluded []string) (*Checkbook, error) {
	if excluded == nil {
		excluded = DefaultExcludedSheets
	}
	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		skip[name] = true
	}

	cb := &Checkbook{}
	for _, name := range f.GetSheetList() {
		if skip[name] {
			log.Printf("skipping sheet %q", name)
			continue
		}
		sheet, err := readSheet(f, name)
		if err != nil {
			log.Printf("skipping unreadable sheet %q: %v", name, err)
			continue
		}
		cb.Sheets = append(cb.Sheets, sheet)
	}
	return cb, nil
}

func readSheet(f *excelize.File, name string) (Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return Sheet{}, err
	}

	sheet := Sheet{Name: name, GLAccount: "Unknown", GLDescription: "Unknown"}

	// The sheet header: row 0 column 0 holds the account description,
	// column 1 the account code.
	if len(rows) > 0 {
		header := Row(rows[0])
		if v := header.cell(0); v != "" {
			sheet.GLDescription = v
		}
		if v := header.cell(1); v != "" {
			sheet.GLAccount = v
		}
	}

	// Hand-maintained sheets are ragged: month markers occupy a single cell,
	// transaction rows nine or more. Pad every row to the widest one so that
	// positional access behaves like a rectangular grid.
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	sheet.Rows = make([]Row, 0, len(rows))
	for _, r := range rows {
		row := make(Row, width)
		copy(row, r)
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}
