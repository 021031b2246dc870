package fundoverlap

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// CommandType is a typed string for identifying commands.
type CommandType string

// Command types, as they appear at the start of a command line.
const (
	CmdCurrentPortfolio CommandType = "CURRENT_PORTFOLIO"
	CmdCalculateOverlap CommandType = "CALCULATE_OVERLAP"
	CmdAddStock         CommandType = "ADD_STOCK"
)

// CommandTypes lists all the known command types.
var CommandTypes = []CommandType{CmdCurrentPortfolio, CmdCalculateOverlap, CmdAddStock}

// Valid reports whether t is a known command type.
func (t CommandType) Valid() bool { return slices.Contains(CommandTypes, t) }

// ParseCommandType parses the command keyword s. It is case sensitive.
func ParseCommandType(s string) (CommandType, error) {
	t := CommandType(s)
	if !t.Valid() {
		return "", &InvalidCommandError{Err: ErrUnknownCommand, Detail: s}
	}
	return t, nil
}

// Errors wrapped by InvalidCommandError.
var (
	ErrEmptyCommand     = errors.New("empty command")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArguments = errors.New("missing arguments")
)

// InvalidCommandError reports a command line that could not be parsed.
type InvalidCommandError struct {
	Err    error  // ErrEmptyCommand, ErrUnknownCommand or ErrMissingArguments
	Detail string // optional
}

func (e *InvalidCommandError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *InvalidCommandError) Unwrap() error { return e.Err }

// Command is a parsed command line. It is immutable.
type Command struct {
	typ  CommandType
	args []string
}

// NewCommand creates a command of type t with args.
func NewCommand(t CommandType, args ...string) Command {
	return Command{typ: t, args: slices.Clone(args)}
}

// Type returns the command type.
func (c Command) Type() CommandType { return c.typ }

// Args returns a copy of the command arguments.
func (c Command) Args() []string { return slices.Clone(c.args) }

// NArg returns the number of arguments.
func (c Command) NArg() int { return len(c.args) }

// Arg returns the i-th argument, or "" if there is no such argument.
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.args) {
		return ""
	}
	return c.args[i]
}

// Equal reports whether c and d have the same type and arguments.
func (c Command) Equal(d Command) bool {
	return c.typ == d.typ && slices.Equal(c.args, d.args)
}

func (c Command) String() string {
	return strings.TrimSpace(string(c.typ) + " " + strings.Join(c.args, " "))
}

// ParseCommand parses a command line into a Command.
//
// The first word is the command type, the rest of the line holds the
// arguments, whose parsing depends on the type:
//
//	CURRENT_PORTFOLIO <fund>...    one or more fund names
//	CALCULATE_OVERLAP <fund>       the whole rest of the line is the fund name
//	ADD_STOCK <fund> <stock>       the stock is the rest of the line, spaces included
//
// Errors are of type *InvalidCommandError.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimFunc(line, isSpace)
	if line == "" {
		return Command{}, &InvalidCommandError{Err: ErrEmptyCommand}
	}

	keyword, rest := cut(line)
	t, err := ParseCommandType(keyword)
	if err != nil {
		return Command{}, err
	}

	var args []string
	switch t {
	case CmdCurrentPortfolio:
		args = strings.FieldsFunc(rest, isSpace)
		if len(args) < 1 {
			return Command{}, missing("%s requires at least 1 fund name", t)
		}
	case CmdCalculateOverlap:
		if rest == "" {
			return Command{}, missing("%s requires exactly 1 fund name", t)
		}
		args = []string{rest}
	case CmdAddStock:
		fund, stock := cut(rest)
		if stock == "" {
			return Command{}, missing("%s requires 2 arguments: fund name and stock name", t)
		}
		args = []string{fund, stock}
	}
	return Command{typ: t, args: args}, nil
}

// cut splits s around the first run of white spaces.
// s must be already trimmed, so are both parts.
func cut(s string) (head, tail string) {
	i := strings.IndexFunc(s, isSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], isSpace)
}

// isSpace reports whether r separates words in a command line.
// Only ASCII white spaces do: a no-break space is part of a word.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func missing(format string, args ...any) error {
	return &InvalidCommandError{Err: ErrMissingArguments, Detail: fmt.Sprintf(format, args...)}
}
