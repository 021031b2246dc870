package fundoverlap

import (
	"errors"
	"fmt"
)

// ErrFundNotFound is the failure reported when a command names an unknown fund.
var ErrFundNotFound = errors.New("FUND_NOT_FOUND")

// Handler executes a parsed command.
type Handler interface {
	Handle(cmd Command) Result
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(cmd Command) Result

// Handle calls h(cmd).
func (h HandlerFunc) Handle(cmd Command) Result { return h(cmd) }

// NewCurrentPortfolioHandler returns the CURRENT_PORTFOLIO handler.
//
// It replaces the portfolio with the command arguments, only if every one
// of them is a known fund.
func NewCurrentPortfolioHandler(portfolio *Portfolio, funds FundStore) Handler {
	return HandlerFunc(func(cmd Command) Result {
		names := cmd.Args()
		for _, name := range names {
			if _, ok := funds.Lookup(name); !ok {
				return Failure(ErrFundNotFound.Error())
			}
		}
		portfolio.SetCurrentFundNames(names)
		return Success()
	})
}

// NewCalculateOverlapHandler returns the CALCULATE_OVERLAP handler.
//
// It prints one line "<fund> <portfolio fund> <overlap>%" for each fund in
// the portfolio sharing at least one stock with the command fund. Unknown
// funds in the portfolio are skipped.
func NewCalculateOverlapHandler(portfolio *Portfolio, funds FundStore) Handler {
	return HandlerFunc(func(cmd Command) Result {
		name := cmd.Arg(0)
		target, ok := funds.Lookup(name)
		if !ok {
			return Failure(ErrFundNotFound.Error())
		}

		var outputs []string
		for _, other := range portfolio.CurrentFundNames() {
			fund, ok := funds.Lookup(other)
			if !ok {
				continue
			}
			overlap, err := OverlapPercentage(target, fund)
			if err != nil {
				return Failure(err.Error())
			}
			if overlap > 0 {
				outputs = append(outputs, fmt.Sprintf("%s %s %s", name, other, overlap))
			}
		}
		return Success(outputs...)
	})
}

// NewAddStockHandler returns the ADD_STOCK handler.
//
// It adds the stock to a known fund in overlay.
func NewAddStockHandler(overlay *Overlay) Handler {
	return HandlerFunc(func(cmd Command) Result {
		name, stock := cmd.Arg(0), cmd.Arg(1)
		if _, ok := overlay.Lookup(name); !ok {
			return Failure(ErrFundNotFound.Error())
		}
		overlay.AddStock(name, stock)
		return Success()
	})
}
