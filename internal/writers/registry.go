// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Row is one result. Cells feed the tabular formats, Item the structured
// ones. A nil Cells or Item leaves the row out of that family of formats.
type Row struct {
	Cells []string
	Item  any
}

// Table describes the columns of a result stream.
type Table struct {
	Header   []string
	NoHeader bool
}

// WriteFunc drains in and writes every row to w.
type WriteFunc func(w io.Writer, t Table, in <-chan Row) error

var registry = map[string]WriteFunc{}

// Register adds or replaces the writer for format.
func Register(format string, fn WriteFunc) { registry[format] = fn }

// Formats lists the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a registered writer.
func Known(format string) bool {
	_, ok := registry[format]
	return ok
}

// Start spins up a writer goroutine for format. The caller sends rows, closes
// the channel and then reads exactly one value from the error channel. An
// unknown format still drains the input so senders never block.
func Start(out io.Writer, format string, t Table, bufSize int) (chan<- Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan Row, bufSize)
	errCh := make(chan error, 1)
	fn, ok := registry[format]
	go func() {
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown output format %q (no writer registered)", format)
			return
		}
		err := fn(out, t, in)
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// WriteAll is Start for results already held in memory.
func WriteAll(out io.Writer, format string, t Table, rows []Row) error {
	in, done := Start(out, format, t, len(rows))
	for _, r := range rows {
		in <- r
	}
	close(in)
	return <-done
}
