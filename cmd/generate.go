package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/renderer"
	"github.com/google/subcommands"
)

// generateCmd holds the flags for the 'generate' subcommand.
type generateCmd struct {
	checkbook  string
	output     string
	date       string
	offline    bool
	licenseURL string
	licenseKey string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate the accrual report workbook from a checkbook" }
func (*generateCmd) Usage() string {
	return `acg generate -checkbook <file.xlsx> [-o <report.xlsx>] [-d <date>] [-offline]

  Extracts every uncleared purchase from the checkbook workbook, within the
  month window derived from the run date, and writes the styled accrual
  report. The GL account summary is printed on completion.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.checkbook, "checkbook", "", "Checkbook workbook to read (defaults to the last one used).")
	f.StringVar(&c.output, "o", "", "Report file to write (defaults to Accrual_Prelim_<date>_<time>.xlsx in the last output directory).")
	f.StringVar(&c.date, "d", "", "Run date deciding the month window (defaults to today).")
	f.BoolVar(&c.offline, "offline", false, "Skip the remote enablement check.")
	f.StringVar(&c.licenseURL, "license-url", os.Getenv("ACCRUAL_LICENSE_URL"), "Enablement record address.")
	f.StringVar(&c.licenseKey, "license-key", os.Getenv("ACCRUAL_LICENSE_KEY"), "Enablement record access key.")
}

func (c *generateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := runDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing run date: %v\n", err)
		return subcommands.ExitUsageError
	}

	settings := loadSettings()
	checkbook := c.checkbook
	if checkbook == "" {
		fmt.Fprintf(os.Stderr, "Error: no checkbook file given (last one was in %s)\n", settings.LastCheckbookDir)
		return subcommands.ExitUsageError
	}
	output := c.output
	if output == "" {
		output = filepath.Join(settings.LastOutputDir, defaultOutputName(time.Now()))
	}

	if !c.offline {
		if c.licenseURL == "" {
			fmt.Fprintln(os.Stderr, "Error: no license server configured; set ACCRUAL_LICENSE_URL or pass -offline.")
			return subcommands.ExitUsageError
		}
		if err := accrual.CheckLicense(ctx, c.licenseURL, c.licenseKey); err != nil {
			if errors.Is(err, accrual.ErrDisabled) {
				fmt.Fprintln(os.Stderr, "Access denied: service has been disabled by administrator.")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return subcommands.ExitFailure
		}
	}

	cb, err := accrual.OpenCheckbook(checkbook, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	policy := accrual.NewPolicy(on)
	months := policy.Months()
	fmt.Fprintf(os.Stderr, "Run date %s, including months through %s.\n", on, months[len(months)-1])

	extractor := accrual.NewExtractor(policy, newDescriber(ctx))
	records := extractor.Extract(ctx, cb)
	if len(records) == 0 {
		printMarkdown(renderer.NothingMarkdown(policy))
		return subcommands.ExitSuccess
	}

	report := accrual.NewReport(records)
	if err := renderer.Write(report, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", output, err)
		return subcommands.ExitFailure
	}

	rememberRun(&settings, checkbook, output, time.Now().Format(time.RFC3339))
	saveSettings(settings)

	fmt.Fprintf(os.Stderr, "Accrual report saved to %s\n", output)
	printMarkdown(renderer.SummaryMarkdown(report, policy))
	return subcommands.ExitSuccess
}

// defaultOutputName is the conventional report file name for a run started
// at now, like "Accrual_Prelim_08_28_2026_02_15pm.xlsx".
func defaultOutputName(now time.Time) string {
	return fmt.Sprintf("Accrual_Prelim_%s_%s.xlsx",
		now.Format("01_02_2006"),
		strings.ToLower(now.Format("03_04PM")))
}
