// Package cmd implements the CLI application to compare mutual funds.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundoverlap"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "")

	c.Register(&fundsCmd{}, "reports")
	c.Register(&matrixCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// IsRegistered reports whether name is a subcommand known to c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile  = flag.String("config", "mfo.toml", "Path to the TOML configuration file")
	fundsFile   = flag.String("funds-file", "", "Path to the funds dataset (JSON or YAML), overrides the configuration")
	fundsPath   = flag.String("funds-path", "", "JSONPath selecting the fund records in the dataset, overrides the configuration")
	fundsFormat = flag.String("funds-format", "", "Format of the funds dataset (json or yaml), overrides the configuration")
	Verbose     = flag.Bool("v", false, "verbose, log debug messages")
)

// outputs, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// markdownStyle is the glamour style used by printMarkdown.
var markdownStyle = "auto"

// Setup loads the configuration, applies the global flags and builds the logger.
func Setup() (*Config, zerolog.Logger, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if *fundsFile != "" {
		cfg.FundsFile = *fundsFile
	}
	if *fundsPath != "" {
		cfg.FundsPath = *fundsPath
	}
	if *fundsFormat != "" {
		cfg.FundsFormat = *fundsFormat
	}
	if *Verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, NewLogger(cfg.Logging, stderr), nil
}

// LoadFunds loads the configured funds dataset.
// A missing or malformed dataset results in an empty store, and a warning
// on stderr.
func LoadFunds(cfg *Config, log zerolog.Logger) *fundoverlap.Funds {
	funds := fundoverlap.LoadFunds(cfg.FundsFile, cfg.DecodeOptions(), log)
	if !funds.Loaded() {
		fmt.Fprintf(stderr, "Warning: funds dataset %q was not loaded, no fund will be found\n", cfg.FundsFile)
	}
	return funds
}

// printMarkdown renders md for the terminal, or prints it as is if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
