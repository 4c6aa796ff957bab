package writers

import (
	"bufio"
	"io"
	"strings"
	"text/tabwriter"
)

func init() {
	Register("text", writeText)
	Register("tsv", writeTSV)
}

// writeText aligns columns for a terminal. Alignment needs every row, so
// nothing is emitted until the stream closes.
func writeText(w io.Writer, t Table, in <-chan Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	var err error
	put := func(cells []string) {
		if err == nil && cells != nil {
			_, err = io.WriteString(tw, strings.Join(cells, "\t")+"\n")
		}
	}
	if !t.NoHeader && len(t.Header) > 0 {
		put(t.Header)
	}
	for r := range in {
		put(r.Cells)
	}
	if err != nil {
		return err
	}
	return tw.Flush()
}

// writeTSV streams one tab-separated line per row.
func writeTSV(w io.Writer, t Table, in <-chan Row) error {
	bw := bufio.NewWriter(w)
	var err error
	put := func(cells []string) {
		if err == nil && cells != nil {
			_, err = bw.WriteString(strings.Join(cells, "\t") + "\n")
		}
	}
	if !t.NoHeader && len(t.Header) > 0 {
		put(t.Header)
	}
	for r := range in {
		put(r.Cells)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}
