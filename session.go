package fundoverlap

import (
	"github.com/rs/zerolog"
)

// Session holds the state mutated by a stream of commands: the current
// portfolio and the stock additions, on top of a base fund store.
type Session struct {
	Overlay   *Overlay
	Portfolio *Portfolio
	Executor  *Executor
}

// NewSession creates a session over base with an empty portfolio and every
// command type registered.
func NewSession(base FundStore, log zerolog.Logger) *Session {
	overlay := NewOverlay(base)
	portfolio := NewPortfolio()

	exec := NewExecutor(log)
	exec.Register(CmdCurrentPortfolio, NewCurrentPortfolioHandler(portfolio, overlay))
	exec.Register(CmdCalculateOverlap, NewCalculateOverlapHandler(portfolio, overlay))
	exec.Register(CmdAddStock, NewAddStockHandler(overlay))

	return &Session{
		Overlay:   overlay,
		Portfolio: portfolio,
		Executor:  exec,
	}
}

// Run executes lines in order, and returns one Result per line.
func (s *Session) Run(lines []string) []Result {
	return s.Executor.Execute(lines)
}
