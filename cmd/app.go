// Package cmd implements the CLI application that turns a checkbook workbook
// into an accrual report.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/accrual"
	"github.com/etnz/accrual/date"
	"github.com/etnz/accrual/describe"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&generateCmd{}, "report")
	c.Register(&summaryCmd{}, "report")
	c.Register(&monthsCmd{}, "report")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var settingsFile = flag.String("settings", accrual.DefaultSettingsFile, "Path to the settings file remembering recent locations")

// runDate resolves the run clock from a -d flag value, defaulting to today.
func runDate(flagValue string) (date.Date, error) {
	if flagValue == "" {
		return date.Today(), nil
	}
	return date.Parse(flagValue)
}

// newDescriber builds the description service. With a Gemini API key in the
// environment it is model-backed, otherwise it runs on the local rewrite
// only.
func newDescriber(ctx context.Context) *describe.Service {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "No Gemini API key found, descriptions use the local rewrite only.")
		return describe.NewService(nil)
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot initialize Gemini client (%v), descriptions use the local rewrite only.\n", err)
		return describe.NewService(nil)
	}
	return describe.NewService(describe.NewGemini(client))
}
