package renderer

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/etnz/fundoverlap"
	md "github.com/nao1215/markdown"
)

// FundsMarkdown renders the list of funds with their number of stocks.
func FundsMarkdown(funds []*fundoverlap.Fund) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Funds")
	if len(funds) == 0 {
		doc.PlainText("No fund loaded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Fund", "Stocks"},
	}
	for _, f := range funds {
		table.Rows = append(table.Rows, []string{escape(f.Name()), fmt.Sprint(f.Len())})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d funds.", len(funds)))

	return doc.String()
}

// FundMarkdown renders a single fund and its stocks. Stocks listed in added
// are marked as additions.
func FundMarkdown(f *fundoverlap.Fund, added []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(escape(f.Name()))
	doc.PlainText(fmt.Sprintf("%d stocks.", f.Len()))

	var items []string
	for _, s := range f.Stocks() {
		item := escape(s)
		if slices.Contains(added, s) {
			item += " " + md.Bold("(added)")
		}
		items = append(items, item)
	}
	if len(items) > 0 {
		doc.BulletList(items...)
	}
	return doc.String()
}
