package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fundoverlap"
	"github.com/etnz/fundoverlap/renderer"
	"github.com/google/subcommands"
)

// maxLineSize is the longest input line accepted.
const maxLineSize = 1024 * 1024

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	json    bool
	summary bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute a file of commands against the funds dataset" }
func (*runCmd) Usage() string {
	return `mfo run [-json] [-summary] <input_file>|-

  Executes the commands of <input_file>, one per line, in order, and prints
  their results. Use '-' to read the commands from the standard input.

  See 'mfo topic commands' for the list of commands.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print one JSON object per input line instead of plain text")
	f.BoolVar(&c.summary, "summary", false, "print the final portfolio and its overlap matrix after the results")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: mfo run <input_file>|-")
		return subcommands.ExitUsageError
	}

	cfg, log, err := Setup()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	lines, err := readLines(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input file: %v\n", err)
		return subcommands.ExitFailure
	}

	session := fundoverlap.NewSession(LoadFunds(cfg, log), log)
	results := session.Run(lines)

	if c.json || cfg.Output.Format == "json" {
		err = fundoverlap.EncodeResults(stdout, lines, results)
	} else {
		err = fundoverlap.WriteResults(stdout, results)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing results: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.summary {
		md, err := sessionSummary(session)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating summary: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// readLines reads all lines of the named file, or of stdin for "-".
func readLines(name string) ([]string, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// sessionSummary describes the funds of the current portfolio, including
// stocks added during the session, and their overlap matrix.
func sessionSummary(s *fundoverlap.Session) (string, error) {
	names := s.Portfolio.CurrentFundNames()
	if len(names) == 0 {
		return "# Portfolio\n\nThe portfolio is empty.\n", nil
	}

	var b strings.Builder
	for _, name := range names {
		f, ok := s.Overlay.Lookup(name)
		if !ok {
			continue
		}
		b.WriteString(renderer.FundMarkdown(f, s.Overlay.Additions(name)))
		b.WriteString("\n")
	}

	m, err := fundoverlap.NewOverlapMatrix(s.Overlay, names)
	if err != nil {
		return "", err
	}
	b.WriteString(renderer.MatrixMarkdown(m))
	return b.String(), nil
}
