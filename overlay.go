package fundoverlap

import (
	"maps"
	"slices"
	"sync"
)

// Overlay records stock additions on top of a base FundStore.
//
// Lookups merge the base fund with the recorded additions into a new Fund,
// the base store is never modified.
type Overlay struct {
	base FundStore

	mu    sync.RWMutex
	added map[string]map[string]struct{} // additional stocks by fund name
}

// NewOverlay creates an empty overlay over base.
func NewOverlay(base FundStore) *Overlay {
	return &Overlay{
		base:  base,
		added: make(map[string]map[string]struct{}),
	}
}

// Lookup implements FundStore.
//
// It returns the base fund when no additions were recorded for name, or a
// fresh fund holding the union of base and added stocks otherwise.
func (o *Overlay) Lookup(name string) (*Fund, bool) {
	f, ok := o.base.Lookup(name)
	if !ok {
		return nil, false
	}

	o.mu.RLock()
	defer o.mu.RUnlock()
	added := o.added[name]
	if len(added) == 0 {
		return f, true
	}
	return f.with(slices.Collect(maps.Keys(added))...), true
}

// All implements FundStore. It returns the base funds, without additions.
func (o *Overlay) All() []*Fund {
	return o.base.All()
}

// AddStock records stock as an addition to the fund named name.
//
// The fund existence is not checked, callers are expected to Lookup first.
func (o *Overlay) AddStock(name, stock string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	set, ok := o.added[name]
	if !ok {
		set = make(map[string]struct{})
		o.added[name] = set
	}
	set[stock] = struct{}{}
}

// Additions returns the stocks added to name, in lexical order.
func (o *Overlay) Additions(name string) []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Sorted(maps.Keys(o.added[name]))
}
