package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/date"
)

func sampleReport() *accrual.Report {
	sheet := accrual.Sheet{Name: "Engineering", GLAccount: "610100", GLDescription: "Engineering Supplies"}
	other := accrual.Sheet{Name: "Facilities", GLAccount: "620000", GLDescription: "Facilities"}
	records := []accrual.Record{
		accrual.NewRecord(sheet, accrual.Candidate{
			Vendor: "Acme Corp (rebate)", Amount: accrual.M(150, "USD"), PONumber: "PO100",
			PODate: "1/2/2025", Invoice: "", Month: "JANUARY",
		}, "Widgets"),
		accrual.NewRecord(sheet, accrual.Candidate{
			Vendor: "Beta LLC", Amount: accrual.M(25.50, "USD"), PONumber: "PO101",
			PODate: "1/10/2025", Invoice: "INV-9", Month: "JANUARY",
		}, "INVINV-9"),
		accrual.NewRecord(other, accrual.Candidate{
			Vendor: "Globex", Amount: accrual.M(99.95, "USD"), PONumber: "PO200",
			PODate: "2/1/2025", Month: "FEBRUARY",
		}, "Cleaning Service"),
	}
	return accrual.NewReport(records)
}

func TestWriteTo_Roundtrip(t *testing.T) {
	rep := sampleReport()

	var buf bytes.Buffer
	if err := WriteTo(rep, &buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != sheetName {
		t.Fatalf("sheets = %v, want [%s]", got, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	// header + 3 records + TOTAL
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	for i, h := range headers {
		if h == "" {
			continue
		}
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
}

func TestBuild_RecordCells(t *testing.T) {
	f, err := Build(sampleReport())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheetName, cell)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	if get("A2") != "610100" {
		t.Errorf("A2 = %q, want 610100", get("A2"))
	}
	if get("C2") != "Acme Corp" {
		t.Errorf("C2 = %q, want parenthetical stripped", get("C2"))
	}
	if get("E3") != "PO101 INV-9" {
		t.Errorf("E3 = %q, want PO101 INV-9", get("E3"))
	}
	if get("G4") != "Cleaning Service" {
		t.Errorf("G4 = %q", get("G4"))
	}
	if get("H2") != "PO100 Widgets" {
		t.Errorf("H2 = %q, want the full journal entry", get("H2"))
	}
}

func TestBuild_TotalRow(t *testing.T) {
	f, err := Build(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue(sheetName, "A5"); v != "TOTAL" {
		t.Errorf("A5 = %q, want TOTAL", v)
	}
	v, _ := f.GetCellValue(sheetName, "B5")
	if !strings.Contains(v, "275.45") {
		t.Errorf("B5 = %q, want the grand total 275.45", v)
	}
}

func TestBuild_HiddenColumns(t *testing.T) {
	f, err := Build(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for _, col := range hiddenColumns {
		visible, err := f.GetColVisible(sheetName, col)
		if err != nil {
			t.Fatal(err)
		}
		if visible {
			t.Errorf("column %s should be hidden", col)
		}
	}
	visible, err := f.GetColVisible(sheetName, "B")
	if err != nil {
		t.Fatal(err)
	}
	if !visible {
		t.Errorf("column B should stay visible")
	}
}

func TestBuild_EmptyReport(t *testing.T) {
	f, err := Build(accrual.NewReport(nil))
	if err != nil {
		t.Fatalf("Build() on an empty report error = %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue(sheetName, "A2"); v != "TOTAL" {
		t.Errorf("A2 = %q, want TOTAL directly under the header", v)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	rep := sampleReport()
	policy := accrual.NewPolicy(date.New(2025, time.March, 20))

	md := SummaryMarkdown(rep, policy)
	for _, want := range []string{
		"# Accrual Summary",
		"3 transactions",
		"| 610100 |",
		"| 620000 |",
		"$275.45",
		"February",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q:\n%s", want, md)
		}
	}
}

func TestNothingMarkdown(t *testing.T) {
	policy := accrual.NewPolicy(date.New(2025, time.January, 20))
	md := NothingMarkdown(policy)
	if !strings.Contains(md, "# No Accruals Found") {
		t.Errorf("missing heading:\n%s", md)
	}
	if !strings.Contains(md, "JANUARY") {
		t.Errorf("criteria should name the month window:\n%s", md)
	}
}
