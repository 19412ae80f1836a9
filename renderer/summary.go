package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/accrual"
)

// SummaryMarkdown renders the per-GL-account subtotal summary of a report as
// markdown, largest accounts first.
func SummaryMarkdown(rep *accrual.Report, policy accrual.Policy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Accrual Summary\n\n")
	fmt.Fprintf(&b, "Run date %s, including months through %s.\n\n", policy.On, policy.Cutoff)
	fmt.Fprintf(&b, "%d transactions, grand total **%s**.\n\n", len(rep.Records), rep.Total)

	fmt.Fprintf(&b, "| GL Account | Amount |\n")
	fmt.Fprintf(&b, "|---|---:|\n")
	for _, a := range rep.Accounts {
		fmt.Fprintf(&b, "| %s | %s |\n", a.GLAccount, a.Total)
	}
	fmt.Fprintf(&b, "| **TOTAL** | **%s** |\n", rep.Total)

	return b.String()
}

// NothingMarkdown renders the informational "nothing to accrue" outcome with
// the inclusion criteria that were applied.
func NothingMarkdown(policy accrual.Policy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# No Accruals Found\n\n")
	fmt.Fprintf(&b, "No uncleared transactions qualified on %s. A row is accrued when all of:\n\n", policy.On)
	fmt.Fprintf(&b, "- vendor name present\n")
	fmt.Fprintf(&b, "- amount is a non-zero number\n")
	fmt.Fprintf(&b, "- PO number present\n")
	fmt.Fprintf(&b, "- cleared flag is not \"Y\"\n")
	months := policy.Months()
	fmt.Fprintf(&b, "- month section within %s through %s\n", months[0], months[len(months)-1])

	return b.String()
}
