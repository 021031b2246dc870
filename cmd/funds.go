package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fundoverlap/renderer"
	"github.com/google/subcommands"
)

// fundsCmd holds the flags for the 'funds' subcommand.
type fundsCmd struct {
	fund string
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list the funds of the dataset" }
func (*fundsCmd) Usage() string {
	return `mfo funds [-f <fund>]

  Lists the funds of the dataset with their number of stocks, or the stocks
  of a single fund.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "name of the fund to display")
}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(stderr, "Usage: mfo funds [-f <fund>]")
		return subcommands.ExitUsageError
	}

	cfg, log, err := Setup()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	funds := LoadFunds(cfg, log)

	if c.fund == "" {
		printMarkdown(renderer.FundsMarkdown(funds.All()))
		return subcommands.ExitSuccess
	}

	fund, ok := funds.Lookup(c.fund)
	if !ok {
		fmt.Fprintf(stderr, "Error: fund %q not found in %s\n", c.fund, cfg.FundsFile)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.FundMarkdown(fund, nil))
	return subcommands.ExitSuccess
}
