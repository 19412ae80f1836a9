package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/accrual/docs"
	"github.com/google/subcommands"
)

// topicCmd holds the flags for the 'topic' subcommand.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "print a documentation topic" }
func (*topicCmd) Usage() string {
	return `acg topic [<name> ...]

  Prints the given documentation topics, or the list of available topics
  when called without arguments. Use '*' to print them all.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		names, err := docs.Topics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Available topics: %s\n", strings.Join(names, ", "))
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	for _, name := range f.Args() {
		content, err := docs.Topic(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
