package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fundoverlap"
	"github.com/etnz/fundoverlap/renderer"
	"github.com/google/subcommands"
)

type matrixCmd struct{}

func (*matrixCmd) Name() string     { return "matrix" }
func (*matrixCmd) Synopsis() string { return "display the overlap between funds" }
func (*matrixCmd) Usage() string {
	return `mfo matrix [<fund>...]

  Displays the overlap percentage of every pair of the given funds, or of
  every fund in the dataset if none is given.
`
}

func (c *matrixCmd) SetFlags(f *flag.FlagSet) {}

func (c *matrixCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := Setup()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	funds := LoadFunds(cfg, log)

	m, err := fundoverlap.NewOverlapMatrix(funds, f.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error computing overlaps: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MatrixMarkdown(m))
	return subcommands.ExitSuccess
}
