package builtins

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteSummary prints a table of the files touched in dir.
func WriteSummary(w io.Writer, dir string, results []Result) {
	outputTitle(w, "Touched files in "+dir)

	var created, updated, skipped int
	rows := make([][]string, len(results))
	for i, r := range results {
		switch r.Action {
		case ActionCreated:
			created++
		case ActionUpdated:
			updated++
		case ActionSkipped:
			skipped++
		}
		rows[i] = []string{r.Name, r.Path, string(r.Action)}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Path", "Action"})
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.SetFooter([]string{
		fmt.Sprintf("Total\n%d", len(results)),
		"",
		fmt.Sprintf("Created %d\nUpdated %d\nSkipped %d", created, updated, skipped),
	})
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}
