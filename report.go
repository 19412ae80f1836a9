package accrual

import (
	"sort"
)

// AccountTotal is the accrued subtotal of one GL account.
type AccountTotal struct {
	GLAccount string
	Total     Money
}

// Report is the assembled accrual report: records sorted and grouped by GL
// account, the exact grand total, and the per-account subtotal summary.
//
// A Report is a derived view, fully rebuilt from the record set on each run.
type Report struct {
	Records  []Record       // sorted by (GL account, vendor, PO date)
	Total    Money          // exact decimal sum of all record amounts
	Accounts []AccountTotal // per-account subtotals, largest first
}

// NewReport sorts, groups and totals the extracted records.
//
// The sort is stable: records tied on (GL account, vendor, PO date) keep
// their extraction order, so the report does not depend on how the records
// were produced.
func NewReport(records []Record) *Report {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.GLAccount != b.GLAccount {
			return a.GLAccount < b.GLAccount
		}
		if a.Vendor != b.Vendor {
			return a.Vendor < b.Vendor
		}
		return a.poDay.Before(b.poDay)
	})

	total := M(0, ReportingCurrency)
	byAccount := make(map[string]Money)
	for _, r := range sorted {
		total = total.Add(r.Amount)
		byAccount[r.GLAccount] = byAccount[r.GLAccount].Add(r.Amount)
	}

	accounts := make([]AccountTotal, 0, len(byAccount))
	for gl, sum := range byAccount {
		accounts = append(accounts, AccountTotal{GLAccount: gl, Total: sum})
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		if !accounts[i].Total.Equal(accounts[j].Total) {
			return accounts[j].Total.LessThan(accounts[i].Total)
		}
		return accounts[i].GLAccount < accounts[j].GLAccount
	})

	return &Report{Records: sorted, Total: total, Accounts: accounts}
}

// Groups splits the sorted records into runs sharing a GL account, in report
// order. Grouping is presentational: it drives alternating row styling, not
// semantics.
func (r *Report) Groups() [][]Record {
	var groups [][]Record
	for i := 0; i < len(r.Records); {
		j := i
		for j < len(r.Records) && r.Records[j].GLAccount == r.Records[i].GLAccount {
			j++
		}
		groups = append(groups, r.Records[i:j])
		i = j
	}
	return groups
}
