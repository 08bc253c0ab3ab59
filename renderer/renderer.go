// Package renderer turns journal data into markdown reports. The cmd layer
// decides how to print them (plain or through a terminal renderer).
package renderer

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// fmtTime renders a timestamp the way the journal displays them.
func fmtTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func fmtTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmtTime(*t)
}

// table writes a markdown table with a header row.
func table(w io.Writer, header []string, rows [][]string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | "))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | "))
	for _, row := range rows {
		fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
	}
	fmt.Fprintln(w)
}
