package fundoverlap

import "fmt"

// Percent is a percentage value, 100 meaning 100%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percentage with exactly two decimals, e.g. "66.67%".
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
