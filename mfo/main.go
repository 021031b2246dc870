// Command mfo computes the overlap between mutual funds.
//
// It executes files of commands, one per line, against a dataset of funds
// and their stocks. See 'mfo topic' for the documentation.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/fundoverlap/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("mfo")

	commander := subcommands.NewCommander(flag.CommandLine, "mfo")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.IsRegistered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
