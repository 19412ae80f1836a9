package accrual

import (
	"strings"
	"time"

	"github.com/etnz/accrual/date"
)

// monthNames are the section markers found in checkbook sheets, in calendar order.
var monthNames = []string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

// MonthLabel returns the canonical (upper-case) month label for a cell value,
// and whether the cell is a month marker at all. Matching is case-insensitive.
func MonthLabel(cell string) (string, bool) {
	up := strings.ToUpper(strings.TrimSpace(cell))
	for _, m := range monthNames {
		if up == m {
			return m, true
		}
	}
	return "", false
}

// Policy is the time-cutoff policy of a run: the ordered set of month sections
// eligible for accrual, derived once from the run date.
//
// Before the 15th of the month the window ends at the previous month, from the
// 15th on it includes the current month. A run in early January therefore
// closes out the prior December.
type Policy struct {
	On     date.Date
	Cutoff time.Month
	months []string
}

// NewPolicy derives the cutoff policy for a run dated on.
func NewPolicy(on date.Date) Policy {
	cutoff := int(on.Month())
	if on.Day() < 15 {
		cutoff--
	}
	if cutoff <= 0 {
		cutoff = 12 // January wraps back to December
	}
	return Policy{On: on, Cutoff: time.Month(cutoff), months: monthNames[:cutoff]}
}

// Months returns the eligible month labels, January through the cutoff month.
func (p Policy) Months() []string { return p.months }

// Includes reports whether the month label belongs to the eligible window.
func (p Policy) Includes(label string) bool {
	up := strings.ToUpper(strings.TrimSpace(label))
	for _, m := range p.months {
		if m == up {
			return true
		}
	}
	return false
}
