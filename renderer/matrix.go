package renderer

import (
	"bytes"

	"github.com/etnz/fundoverlap"
	md "github.com/nao1215/markdown"
)

// MatrixMarkdown renders the pairwise overlaps as a table, funds in rows and
// columns. Pairs without overlap are shown as "-".
func MatrixMarkdown(m *fundoverlap.OverlapMatrix) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overlap Matrix")
	if len(m.Names) == 0 {
		doc.PlainText("No fund to compare.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Fund"},
	}
	for _, name := range m.Names {
		table.Header = append(table.Header, escape(name))
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for i, name := range m.Names {
		row := []string{md.Bold(escape(name))}
		for _, p := range m.Values[i] {
			cell := "-"
			if p > 0 {
				cell = p.String()
			}
			row = append(row, cell)
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}
