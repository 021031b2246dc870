package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
)

// EnvVerbose is set to "true" for extensions when the -v flag is set.
const EnvVerbose = "MFO_VERBOSE"

// ExtensionPrefix prefixes the name of the external binaries extending mfo.
const ExtensionPrefix = "mfo-"

// RunExtension attempts to find and execute an external mfo-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The resolved configuration is passed to the extension as MFO_*
// environment variables, so that an extension loading its configuration
// like mfo does sees the same values.
func RunExtension(subcommand string, args []string) (bool, int) {
	cfg, _, err := Setup()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return false, 0
	}
	return runExtension(subcommand, args, extensionEnv(cfg), stdin, stdout, stderr)
}

func runExtension(subcommand string, args, env []string, in io.Reader, out, errOut io.Writer) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = errOut
	cmd.Env = append(os.Environ(), env...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(errOut, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}

// extensionEnv returns the configuration as environment variables.
func extensionEnv(cfg *Config) []string {
	return []string{
		EnvFundsFile + "=" + cfg.FundsFile,
		EnvFundsPath + "=" + cfg.FundsPath,
		EnvFundsFormat + "=" + cfg.FundsFormat,
		EnvLogLevel + "=" + cfg.Logging.Level,
		EnvOutputFormat + "=" + cfg.Output.Format,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
