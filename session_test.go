package fundoverlap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Result
		// portfolio expected after the run
		wantPortfolio []string
	}{
		{
			name: "overlap with portfolio",
			input: `
CURRENT_PORTFOLIO FUNDY
CALCULATE_OVERLAP FUNDX`,
			want: []Result{
				Success(),
				Success("FUNDX FUNDY 66.67%"),
			},
			wantPortfolio: []string{"FUNDY"},
		},
		{
			name:  "empty portfolio",
			input: `CALCULATE_OVERLAP FUNDX`,
			want:  []Result{Success()},
		},
		{
			name: "added stock is used",
			input: `
CURRENT_PORTFOLIO FUNDX
ADD_STOCK FUNDX S4
CALCULATE_OVERLAP FUNDY`,
			want: []Result{
				Success(),
				Success(),
				Success("FUNDY FUNDX 85.71%"),
			},
			wantPortfolio: []string{"FUNDX"},
		},
		{
			name:  "unknown fund in portfolio",
			input: `CURRENT_PORTFOLIO UNKNOWN_FUND`,
			want:  []Result{Failure("FUND_NOT_FOUND")},
		},
		{
			name: "failed set keeps previous portfolio",
			input: `
CURRENT_PORTFOLIO FUNDX FUNDY
CURRENT_PORTFOLIO FUNDZ UNKNOWN_FUND`,
			want: []Result{
				Success(),
				Failure("FUND_NOT_FOUND"),
			},
			wantPortfolio: []string{"FUNDX", "FUNDY"},
		},
		{
			name: "zero overlaps are not printed, order follows portfolio",
			input: `
CURRENT_PORTFOLIO FUNDY FUNDZ EMPTY FUNDX FUNDY
CALCULATE_OVERLAP FUNDX`,
			want: []Result{
				Success(),
				Success("FUNDX FUNDY 66.67%", "FUNDX FUNDX 100.00%", "FUNDX FUNDY 66.67%"),
			},
			wantPortfolio: []string{"FUNDY", "FUNDZ", "EMPTY", "FUNDX", "FUNDY"},
		},
		{
			name: "unknown target",
			input: `
CURRENT_PORTFOLIO FUNDX
CALCULATE_OVERLAP UNKNOWN_FUND`,
			want: []Result{
				Success(),
				Failure("FUND_NOT_FOUND"),
			},
			wantPortfolio: []string{"FUNDX"},
		},
		{
			name: "add stock to unknown fund",
			input: `
ADD_STOCK UNKNOWN_FUND S1`,
			want: []Result{Failure("FUND_NOT_FOUND")},
		},
		{
			name: "malformed lines do not stop the batch",
			input: `
CURRENT_PORTFOLIO FUNDY
ADD_STOCK ONLYFUND

NOPE
CALCULATE_OVERLAP FUNDX`,
			want: []Result{
				Success(),
				Failure("Invalid command: missing arguments: ADD_STOCK requires 2 arguments: fund name and stock name"),
				Failure("Invalid command: empty command"),
				Failure("Invalid command: unknown command: NOPE"),
				Success("FUNDX FUNDY 66.67%"),
			},
			wantPortfolio: []string{"FUNDY"},
		},
		{
			name: "stock names with spaces",
			input: `
CURRENT_PORTFOLIO FUNDZ
ADD_STOCK FUNDX NTPC LIMITED
ADD_STOCK FUNDZ NTPC LIMITED
CALCULATE_OVERLAP FUNDX`,
			want: []Result{
				Success(),
				Success(),
				Success(),
				// 2*1/(4+2)*100
				Success("FUNDX FUNDZ 33.33%"),
			},
			wantPortfolio: []string{"FUNDZ"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(testFunds(), nolog)
			got := s.Run(lines(tc.input))

			if diff := cmp.Diff(tc.want, got, cmp.Comparer(Result.Equal)); diff != "" {
				t.Errorf("Run() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.wantPortfolio, s.Portfolio.CurrentFundNames())
		})
	}
}

func TestSession_BaseStoreIsNotModified(t *testing.T) {
	base := testFunds()
	s := NewSession(base, nolog)
	s.Run([]string{"ADD_STOCK FUNDX S4"})

	f, ok := s.Overlay.Lookup("FUNDX")
	require.True(t, ok)
	assert.True(t, f.Has("S4"))

	b, _ := base.Lookup("FUNDX")
	fresh, _ := testFunds().Lookup("FUNDX")
	assert.False(t, b.Has("S4"))
	assert.True(t, fresh.Equal(b))
}
