package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// newTable returns a tabwriter with a header row and an underline row.
func newTable(out io.Writer, columns ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	underline := make([]string, len(columns))
	for i, c := range columns {
		underline[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(w, strings.Join(underline, "\t"))
	return w
}
