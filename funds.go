package fundoverlap

import "slices"

// FundStore gives access to funds by name.
type FundStore interface {
	// Lookup returns the fund named name, and whether it exists.
	// Names are matched exactly, case sensitive.
	Lookup(name string) (*Fund, bool)
	// All returns all funds in insertion order.
	All() []*Fund
}

// Funds is the base, immutable, dataset of funds.
type Funds struct {
	funds  []*Fund          // in insertion order
	byName map[string]*Fund // index funds by name
	loaded bool
}

// NewFunds creates a store holding funds.
//
// A fund with an already used name replaces the previous one, the last one
// wins, at the position of the first.
func NewFunds(funds ...*Fund) *Funds {
	s := &Funds{
		funds:  make([]*Fund, 0, len(funds)),
		byName: make(map[string]*Fund, len(funds)),
	}
	for _, f := range funds {
		s.add(f)
	}
	return s
}

// add appends f to the store, or replaces the fund with the same name.
// It reports whether a fund was replaced.
// It is only used while building the store.
func (s *Funds) add(f *Fund) (replaced bool) {
	if _, exists := s.byName[f.Name()]; exists {
		i := slices.IndexFunc(s.funds, func(g *Fund) bool { return g.Name() == f.Name() })
		s.funds[i] = f
		s.byName[f.Name()] = f
		return true
	}
	s.byName[f.Name()] = f
	s.funds = append(s.funds, f)
	return false
}

// Lookup implements FundStore.
func (s *Funds) Lookup(name string) (*Fund, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// All implements FundStore.
func (s *Funds) All() []*Fund {
	return slices.Clone(s.funds)
}

// Len returns the number of funds in the store.
func (s *Funds) Len() int { return len(s.funds) }

// Loaded reports whether the store was successfully decoded from a dataset.
// A store that failed to load is empty, and Loaded returns false.
func (s *Funds) Loaded() bool { return s.loaded }
