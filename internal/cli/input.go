package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"seqmatch/internal/cliutil"
	"seqmatch/internal/loader"
)

// needFiles requires at least one FASTA positional ("-" reads stdin).
func needFiles(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no FASTA input given (use - for stdin)")
	}
	return nil
}

// load expands globs among args and reads every record. Bad globs are
// usage errors; unreadable or invalid input is a runtime error.
func (e *runEnv) load(cmd *cobra.Command, args []string) ([]loader.Record, error) {
	paths, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return nil, err
	}
	recs, err := loader.Load(cmd.Context(), e.alpha, paths)
	if err != nil {
		return nil, runtimeError(err)
	}
	ctxlog.Logger(cmd.Context()).Info("input loaded",
		"files", len(paths), "records", len(recs), "alphabet", e.alpha.Name())
	return recs, nil
}

func joinInts(xs []int) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}

// orDash shows an empty value as "-" in tabular output.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
