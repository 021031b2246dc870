package fundoverlap

import (
	"strings"

	"github.com/rs/zerolog"
)

// nolog is a logger discarding everything, for tests.
var nolog = zerolog.Nop()

// testFunds returns a fresh store with the funds used across tests.
func testFunds() *Funds {
	return NewFunds(
		MustFund("FUNDX", "S1", "S2", "S3"),
		MustFund("FUNDY", "S2", "S3", "S4"),
		MustFund("FUNDZ", "S9"),
		MustFund("EMPTY"),
	)
}

// lines splits a multiline text into command lines.
func lines(text string) []string {
	return strings.Split(strings.TrimSpace(text), "\n")
}
