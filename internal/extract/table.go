package extract

import (
	"strings"
	"text/tabwriter"
)

// renderTable renders rows (header first) as a whitespace-aligned string
// table with no index column, mirroring how tabular formats are presented
// to the analysis agents.
func renderTable(rows [][]string) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = w.Write([]byte(strings.Join(row, "\t") + "\n"))
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}
