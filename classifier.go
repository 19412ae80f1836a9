package accrual

import "strings"

// structuralMarkers are first-cell values of header, total and balance rows.
// They carry no transaction and do not change the month context.
var structuralMarkers = map[string]bool{
	"VENDOR":  true,
	"TOTAL":   true,
	"BALANCE": true,
}

// Candidate is a transaction row accepted by the classifier, with its cells
// split out and its amount parsed, ready for the record builder.
type Candidate struct {
	Vendor      string // raw vendor cell, parentheticals not yet stripped
	Amount      Money
	PONumber    string
	PODate      string
	Delivery    string
	Received    string
	Invoice     string
	Description string
	Month       string // month section the row belongs to, "" before any marker
}

// classifierState enumerates the per-sheet scanning states.
type classifierState int

const (
	noMonthYet classifierState = iota // no month marker seen so far
	inMonth                          // inside the section named by Classifier.month
)

// Classifier scans one sheet's rows in order and picks out accrual
// candidates.
//
// It is a small state machine: month-marker rows move it into the named month
// section, and every subsequent transaction row is judged against that
// section and the cutoff policy. State is scoped to a single sheet; use a
// fresh Classifier per sheet.
type Classifier struct {
	policy Policy
	state  classifierState
	month  string
}

// NewClassifier returns a Classifier at the start of a sheet.
func NewClassifier(policy Policy) *Classifier {
	return &Classifier{policy: policy}
}

// Month returns the current month section label, or "" before any marker.
func (c *Classifier) Month() string { return c.month }

// Next consumes the next row of the sheet. It returns the accepted candidate
// and true, or false for every row that produces no record: markers, headers,
// and rows failing any inclusion rule. Rejection is silent; a sheet yielding
// nothing is normal.
func (c *Classifier) Next(row Row) (Candidate, bool) {
	// Structurally invalid rows are dropped before anything else.
	if len(row) < rowWidth {
		return Candidate{}, false
	}
	first := row.cell(colVendor)
	if first == "" {
		return Candidate{}, false
	}

	if label, ok := MonthLabel(first); ok {
		c.state = inMonth
		c.month = label
		return Candidate{}, false
	}

	if structuralMarkers[strings.ToUpper(first)] || strings.EqualFold(first, "nan") {
		return Candidate{}, false
	}

	// The remaining inclusion rules are independent business rules, checked
	// one by one. Rows seen before the first month marker are not filtered
	// by month.
	if c.state == inMonth && !c.policy.Includes(c.month) {
		return Candidate{}, false
	}

	amount, err := ParseAmount(row.cell(colAmount))
	if err != nil || amount.IsZero() {
		return Candidate{}, false
	}

	po := row.cell(colPONumber)
	if po == "" || strings.EqualFold(po, "nan") {
		return Candidate{}, false
	}

	if strings.ToUpper(row.cell(colCleared)) == "Y" {
		return Candidate{}, false
	}

	return Candidate{
		Vendor:      first,
		Amount:      amount,
		PONumber:    po,
		PODate:      row.cell(colPODate),
		Delivery:    row.cell(colDelivery),
		Received:    row.cell(colReceived),
		Invoice:     row.cell(colInvoice),
		Description: row.cell(colDescription),
		Month:       c.month,
	}, true
}
