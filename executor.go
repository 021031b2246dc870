package fundoverlap

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Executor parses command lines and dispatches them to the handler
// registered for their type.
type Executor struct {
	log zerolog.Logger

	mu       sync.RWMutex
	handlers map[CommandType]Handler
}

// NewExecutor creates an executor without any handler.
func NewExecutor(log zerolog.Logger) *Executor {
	return &Executor{
		log:      log.With().Str("component", "executor").Logger(),
		handlers: make(map[CommandType]Handler),
	}
}

// Register sets h as the handler for commands of type t, replacing any
// previous one.
func (e *Executor) Register(t CommandType, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[t] = h
}

func (e *Executor) handler(t CommandType) (Handler, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	h, ok := e.handlers[t]
	return h, ok
}

// Execute runs every line in order and returns one Result per line.
// A failing line never prevents the next ones from running.
func (e *Executor) Execute(lines []string) []Result {
	results := make([]Result, 0, len(lines))
	for _, line := range lines {
		results = append(results, e.ExecuteLine(line))
	}
	return results
}

// ExecuteLine parses and runs a single command line.
func (e *Executor) ExecuteLine(line string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Str("line", line).Interface("panic", r).Msg("error executing command")
			res = Failure(fmt.Sprintf("Error executing command: %v", r))
		}
	}()

	cmd, err := ParseCommand(line)
	if err != nil {
		e.log.Warn().Err(err).Str("line", line).Msg("invalid command")
		return Failure(fmt.Sprintf("Invalid command: %v", err))
	}

	h, ok := e.handler(cmd.Type())
	if !ok {
		e.log.Error().Str("command", string(cmd.Type())).Msg("no handler registered")
		return Failure(fmt.Sprintf("No handler found for command: %s", cmd.Type()))
	}

	res = h.Handle(cmd)
	e.log.Debug().Str("line", line).Stringer("result", res).Msg("command executed")
	return res
}
