package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/describe"
	"github.com/etnz/accrual/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	checkbook string
	date      string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the accrual totals per GL account, without writing a report" }
func (*summaryCmd) Usage() string {
	return `acg summary -checkbook <file.xlsx> [-d <date>]

  Extracts the accruals and prints the per-GL-account subtotal summary.
  Descriptions use the local rewrite only: they do not change the totals and
  skipping the model keeps the summary instant and offline.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.checkbook, "checkbook", "", "Checkbook workbook to read.")
	f.StringVar(&c.date, "d", "", "Run date deciding the month window (defaults to today).")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := runDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing run date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.checkbook == "" {
		fmt.Fprintln(os.Stderr, "Error: no checkbook file given.")
		return subcommands.ExitUsageError
	}

	cb, err := accrual.OpenCheckbook(c.checkbook, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	policy := accrual.NewPolicy(on)
	extractor := accrual.NewExtractor(policy, describe.NewService(nil))
	records := extractor.Extract(ctx, cb)
	if len(records) == 0 {
		printMarkdown(renderer.NothingMarkdown(policy))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SummaryMarkdown(accrual.NewReport(records), policy))
	return subcommands.ExitSuccess
}
