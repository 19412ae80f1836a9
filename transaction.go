package accrual

import (
	"regexp"
	"strings"

	"github.com/etnz/accrual/date"
	"github.com/etnz/accrual/describe"
)

// journalEntryLen caps the truncated journal-entry label. It is deliberately
// stricter than the description bound: the target accounting system rejects
// longer entry names.
const journalEntryLen = 30

// parentheticalRe matches trailing annotations in vendor names, like
// "Acme Corp (rebate)".
var parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)`)

// Record is one outstanding purchase obligation, ready for the report.
// A Record is built once per accepted row and never mutated.
type Record struct {
	GLAccount    string
	Amount       Money
	Vendor       string // parenthetical suffixes stripped
	PONumber     string
	Invoice      string // "" when the row has none
	Reference    string // PO number, plus the invoice when present
	Description  string // normalized, at most describe.MaxLen characters
	JournalEntry string // "<PO> <description>"
	JournalEntry30 string // JournalEntry capped at journalEntryLen
	PODate       string
	DeliveryDate string
	ReceivedDate string
	SheetName    string
	Month        string // month section of the source row, may be ""

	poDay date.Date // parsed PODate, zero when unparseable; sort key only
}

// NewRecord assembles the accrual record for an accepted candidate row of the
// given sheet, with its already-normalized description.
func NewRecord(sheet Sheet, c Candidate, description string) Record {
	vendor := strings.TrimSpace(parentheticalRe.ReplaceAllString(c.Vendor, ""))

	reference := c.PONumber
	invoice := strings.TrimSpace(c.Invoice)
	if strings.EqualFold(invoice, "nan") {
		invoice = ""
	}
	if invoice != "" {
		reference += " " + invoice
	}

	entry := strings.TrimSpace(c.PONumber + " " + description)

	poDay, err := date.Parse(c.PODate)
	if err != nil {
		poDay = date.Date{} // unparseable dates sort first, in input order
	}

	return Record{
		GLAccount:      sheet.GLAccount,
		Amount:         c.Amount,
		Vendor:         vendor,
		PONumber:       c.PONumber,
		Invoice:        invoice,
		Reference:      reference,
		Description:    description,
		JournalEntry:   entry,
		JournalEntry30: describe.Ellipsis(entry, journalEntryLen),
		PODate:         c.PODate,
		DeliveryDate:   c.Delivery,
		ReceivedDate:   c.Received,
		SheetName:      sheet.Name,
		Month:          c.Month,
		poDay:          poDay,
	}
}
