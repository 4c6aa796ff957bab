// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"seqmatch/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

// Options controls how a command's results are written.
type Options struct {
	Format          string
	Table           writers.Table
	BufSize         int
	NoMatchExitCode int
}

// Producer computes a command's results and passes each row to send. It
// returns how many matches it found, which may differ from the rows sent:
// a "nothing shared" row still counts as no match.
type Producer func(ctx context.Context, send func(writers.Row) error) (found int, err error)

// Run streams the rows of produce through the writer for o.Format and maps
// the outcome to an exit code. Broken pipes count as success.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, produce Producer) int {
	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.Start(outw, o.Format, o.Table, o.BufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	found, perr := produce(ctx, func(r writers.Row) error {
		select {
		case inCh <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return ExitRuntime
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCancelled
		}
		fmt.Fprintln(stderr, "error:", perr)
		return ExitRuntime
	}
	if found == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
