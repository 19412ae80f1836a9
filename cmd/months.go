package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/accrual"
	"github.com/google/subcommands"
)

// monthsCmd holds the flags for the 'months' subcommand.
type monthsCmd struct {
	date string
}

func (*monthsCmd) Name() string     { return "months" }
func (*monthsCmd) Synopsis() string { return "show the month window a run date would include" }
func (*monthsCmd) Usage() string {
	return `acg months [-d <date>]

  Prints the month sections eligible for accrual on the given run date.
  Before the 15th the window stops at the previous month; a run in early
  January still closes out the prior December.
`
}

func (c *monthsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Run date to inspect (defaults to today).")
}

func (c *monthsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := runDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing run date: %v\n", err)
		return subcommands.ExitUsageError
	}
	policy := accrual.NewPolicy(on)
	fmt.Printf("Run date %s includes: %s\n", on, strings.Join(policy.Months(), ", "))
	return subcommands.ExitSuccess
}
