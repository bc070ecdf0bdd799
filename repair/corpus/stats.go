package corpus

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// StatsRow is one row of the human-readable stats table cmd/repair
// prints after compressing a file or a directory of files.
type StatsRow struct {
	Name           string
	InputSize      int
	CompressedSize int
	RuleCount      int
}

// Ratio returns the compression ratio (input/compressed), or 0 if the
// input was empty.
func (r StatsRow) Ratio() float64 {
	if r.CompressedSize == 0 {
		return 0
	}
	return float64(r.InputSize) / float64(r.CompressedSize)
}

// RenderStatsTable writes a table of rows to w.
func RenderStatsTable(w io.Writer, rows []StatsRow) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"file", "input size", "compressed size", "rules", "ratio"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, r.InputSize, r.CompressedSize, r.RuleCount, r.Ratio()})
	}
	t.Render()
}
