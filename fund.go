package fundoverlap

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrEmptyFundName is returned when building a fund without a name.
var ErrEmptyFundName = errors.New("fund name cannot be empty")

// Fund is a named set of stocks.
//
// A Fund is immutable: every method returning stocks returns a copy.
type Fund struct {
	name   string
	stocks map[string]struct{}
}

// NewFund creates a fund named name holding stocks.
// The name is trimmed, stocks are kept verbatim and duplicates collapsed.
func NewFund(name string, stocks ...string) (*Fund, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyFundName
	}
	f := &Fund{
		name:   name,
		stocks: make(map[string]struct{}, len(stocks)),
	}
	for _, s := range stocks {
		f.stocks[s] = struct{}{}
	}
	return f, nil
}

// MustFund is like NewFund but panics on error. It is meant for tests and
// static declarations.
func MustFund(name string, stocks ...string) *Fund {
	f, err := NewFund(name, stocks...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the fund name.
func (f *Fund) Name() string { return f.name }

// Len returns the number of distinct stocks in the fund.
func (f *Fund) Len() int { return len(f.stocks) }

// Has reports whether the fund holds stock.
func (f *Fund) Has(stock string) bool {
	_, ok := f.stocks[stock]
	return ok
}

// Stocks returns the fund stocks in lexical order.
func (f *Fund) Stocks() []string {
	return slices.Sorted(maps.Keys(f.stocks))
}

// common counts the stocks held by both f and g.
func (f *Fund) common(g *Fund) int {
	// iterate over the smallest set
	small, large := f, g
	if small.Len() > large.Len() {
		small, large = large, small
	}
	n := 0
	for s := range small.stocks {
		if large.Has(s) {
			n++
		}
	}
	return n
}

// with returns a new fund holding the union of f stocks and stocks.
// f is left untouched.
func (f *Fund) with(stocks ...string) *Fund {
	g := &Fund{
		name:   f.name,
		stocks: maps.Clone(f.stocks),
	}
	for _, s := range stocks {
		g.stocks[s] = struct{}{}
	}
	return g
}

// Equal reports whether f and g have the same name and the same stocks.
func (f *Fund) Equal(g *Fund) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.name == g.name && maps.Equal(f.stocks, g.stocks)
}

func (f *Fund) String() string {
	return fmt.Sprintf("%s%v", f.name, f.Stocks())
}
