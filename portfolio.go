package fundoverlap

import (
	"fmt"
	"slices"
	"sync"
)

// Portfolio is the ordered list of fund names currently held.
//
// Names may repeat. The list is replaced as a whole, and readers always get
// a copy.
type Portfolio struct {
	mu    sync.RWMutex
	names []string
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// SetCurrentFundNames replaces the portfolio content with names.
func (p *Portfolio) SetCurrentFundNames(names []string) {
	names = slices.Clone(names)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.names = names
}

// CurrentFundNames returns a copy of the portfolio fund names, in order.
func (p *Portfolio) CurrentFundNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.names)
}

func (p *Portfolio) IsEmpty() bool { return p.Len() == 0 }

func (p *Portfolio) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.names)
}

// Clear empties the portfolio.
func (p *Portfolio) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.names = nil
}

func (p *Portfolio) String() string {
	return fmt.Sprintf("Portfolio%v", p.CurrentFundNames())
}
