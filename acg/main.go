package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/accrual/cmd"
	"github.com/etnz/accrual/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Pick up GEMINI_API_KEY and the license settings from a local .env, if any.
	godotenv.Load()

	name := path.Base(os.Args[0])
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion tree of the CLI.
func completion() *complete.Command {
	workbooks := predict.Files("*.xlsx")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"generate": {Flags: map[string]complete.Predictor{
				"checkbook":   workbooks,
				"o":           workbooks,
				"d":           predict.Nothing,
				"offline":     predict.Nothing,
				"license-url": predict.Nothing,
				"license-key": predict.Nothing,
			}},
			"summary": {Flags: map[string]complete.Predictor{
				"checkbook": workbooks,
				"d":         predict.Nothing,
			}},
			"months": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
			}},
			"topic": {Args: predict.Set(topicNames())},
		},
		Flags: map[string]complete.Predictor{
			"settings": predict.Files("*.json"),
		},
	}
}

// topicNames lists the documentation topics for shell completion.
func topicNames() []string {
	names, _ := docs.Topics()
	return names
}
