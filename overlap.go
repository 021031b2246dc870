package fundoverlap

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNilFund is returned when computing an overlap with a missing fund.
var ErrNilFund = errors.New("funds cannot be nil")

// OverlapPercentage computes the overlap between two funds as
//
//	2 * |common stocks| / (|a| + |b|) * 100
//
// rounded to two decimals, half up. Funds without any stock overlap by 0%.
//
// The result is symmetric: OverlapPercentage(a, b) == OverlapPercentage(b, a).
func OverlapPercentage(a, b *Fund) (Percent, error) {
	if a == nil || b == nil {
		return 0, ErrNilFund
	}
	total := a.Len() + b.Len()
	if total == 0 {
		return 0, nil
	}
	overlap := 2.0 * float64(a.common(b)) / float64(total) * 100
	// decimal rounds half away from zero, that is half up for positive values.
	return Percent(decimal.NewFromFloat(overlap).Round(2).InexactFloat64()), nil
}

// OverlapMatrix holds the pairwise overlaps of a list of funds.
type OverlapMatrix struct {
	Names  []string
	Values [][]Percent // Values[i][j] is the overlap between Names[i] and Names[j]
}

// NewOverlapMatrix computes the pairwise overlaps between funds named names,
// resolved through store. All funds of the store are used if names is empty.
func NewOverlapMatrix(store FundStore, names []string) (*OverlapMatrix, error) {
	var funds []*Fund
	if len(names) == 0 {
		for _, f := range store.All() {
			// resolve again to see additions if store is an Overlay.
			g, _ := store.Lookup(f.Name())
			funds = append(funds, g)
		}
	} else {
		for _, name := range names {
			f, ok := store.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrFundNotFound, name)
			}
			funds = append(funds, f)
		}
	}

	m := &OverlapMatrix{
		Names:  make([]string, len(funds)),
		Values: make([][]Percent, len(funds)),
	}
	for i, f := range funds {
		m.Names[i] = f.Name()
		m.Values[i] = make([]Percent, len(funds))
	}
	for i := range funds {
		for j := i; j < len(funds); j++ {
			p, err := OverlapPercentage(funds[i], funds[j])
			if err != nil {
				return nil, err
			}
			m.Values[i][j], m.Values[j][i] = p, p
		}
	}
	return m, nil
}
