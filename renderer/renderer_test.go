package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fundoverlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundsMarkdown(t *testing.T) {
	got := FundsMarkdown([]*fundoverlap.Fund{
		fundoverlap.MustFund("FUNDX", "S1", "S2", "S3"),
		fundoverlap.MustFund("FUNDY", "S2"),
	})

	assert.True(t, strings.HasPrefix(got, "# Funds"), got)
	assert.Contains(t, got, "FUNDX")
	assert.Contains(t, got, "FUNDY")
	assert.Contains(t, got, "2 funds.")

	assert.Contains(t, FundsMarkdown(nil), "No fund loaded.")
}

func TestFundMarkdown(t *testing.T) {
	got := FundMarkdown(fundoverlap.MustFund("FUNDX", "S1", "S4"), []string{"S4"})

	assert.True(t, strings.HasPrefix(got, "# FUNDX"), got)
	assert.Contains(t, got, "2 stocks.")
	assert.Contains(t, got, "S1\n")
	assert.Contains(t, got, "S4 **(added)**")
}

func TestMatrixMarkdown(t *testing.T) {
	funds := fundoverlap.NewFunds(
		fundoverlap.MustFund("FUNDX", "S1", "S2", "S3"),
		fundoverlap.MustFund("FUNDY", "S2", "S3", "S4"),
		fundoverlap.MustFund("FUNDZ", "S9"),
	)
	m, err := fundoverlap.NewOverlapMatrix(funds, nil)
	require.NoError(t, err)

	got := MatrixMarkdown(m)
	assert.True(t, strings.HasPrefix(got, "# Overlap Matrix"), got)
	assert.Contains(t, got, "**FUNDX**")
	assert.Contains(t, got, "66.67%")
	assert.Contains(t, got, "100.00%")
	assert.Contains(t, got, "-")

	assert.Contains(t, MatrixMarkdown(&fundoverlap.OverlapMatrix{}), "No fund to compare.")
}

func TestEscape(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"FUNDX", "FUNDX"},
		{"A|B", `A\|B`},
		{"*STAR*", `\*STAR\*`},
		{"AXIS_MIDCAP", `AXIS\_MIDCAP`},
		{`C:\DIR`, `C:\\DIR`},
		{"[L](x) <b> `c`", "\\[L\\](x) \\<b\\> \\`c\\`"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, escape(tc.in))
		})
	}
}

func TestMarkdown_EscapesNames(t *testing.T) {
	f := fundoverlap.MustFund("A|B", "*S1*", "S|2")

	list := FundsMarkdown([]*fundoverlap.Fund{f})
	assert.Contains(t, list, `| A\|B |`)

	one := FundMarkdown(f, []string{"S|2"})
	assert.Contains(t, one, `# A\|B`)
	assert.Contains(t, one, `\*S1\*`)
	assert.Contains(t, one, `S\|2 **(added)**`)

	m, err := fundoverlap.NewOverlapMatrix(fundoverlap.NewFunds(f), nil)
	require.NoError(t, err)
	got := MatrixMarkdown(m)
	assert.Contains(t, got, `| Fund | A\|B |`)
	assert.Contains(t, got, `**A\|B**`)
}
