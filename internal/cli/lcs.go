package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seqmatch-core/subseq"
	"seqmatch/internal/cmdutil"
	"seqmatch/internal/diffview"
	"seqmatch/internal/writers"
	"seqmatch/pkg/api"
)

func newLCSCmd(e *runEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lcs <fasta>...",
		Short: "Find a longest common subsequence of the first two records",
		Long: `Find a longest common subsequence of the first two records of the inputs.
When several exist one is chosen deterministically. --linear-space trades
time for memory on long records and may pick a different witness of the same
length. --diff adds a character alignment of the two records.`,
		Example: "  seqmatch lcs pair.fa\n  seqmatch lcs --diff a.fa b.fa",
		Args:    needFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := e.load(cmd, args)
			if err != nil {
				return err
			}
			if len(recs) < 2 {
				return fmt.Errorf("lcs needs two records, got %d", len(recs))
			}
			if len(recs) > 2 {
				cmdutil.Warnf(cmd.Context(), "lcs compares the first two of %d records", len(recs))
			}
			a, b := recs[0], recs[1]
			e.stream(cmd, []string{"A", "B", "LENGTH", "SUBSEQUENCE"}, func(_ context.Context, send func(writers.Row) error) (int, error) {
				lcs := subseq.Longest
				if e.cfg.LCS.LinearSpace {
					lcs = subseq.LinearSpace
				}
				sub, err := lcs(a.Seq, b.Seq)
				if err != nil {
					return 0, err
				}
				item := api.SubsequenceV1{A: a.ID, B: b.ID, Subsequence: sub, Length: len(sub)}
				var view []string
				if e.cfg.LCS.Diff {
					view = diffview.Align(a.Seq.String(), b.Seq.String()).Lines(e.cfg.LCS.DiffWidth)
					item.Alignment = strings.Join(view, "\n")
				}
				if err := send(writers.Row{
					Cells: []string{a.ID, b.ID, strconv.Itoa(len(sub)), orDash(sub)},
					Item:  item,
				}); err != nil {
					return 0, err
				}
				if e.cfg.Output == "text" && len(view) > 0 {
					if err := send(writers.Row{Cells: []string{""}}); err != nil {
						return 0, err
					}
					for _, line := range view {
						if err := send(writers.Row{Cells: []string{line}}); err != nil {
							return 0, err
						}
					}
				}
				if len(sub) == 0 {
					return 0, nil
				}
				return 1, nil
			})
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Bool("linear-space", false, "recover the subsequence in linear memory (Hirschberg)")
	fs.Bool("diff", false, "add a character alignment of the two records")
	fs.Int("width", 60, "wrap the alignment at this many columns (0 = no wrap)")
	e.bind("lcs.linear-space", fs.Lookup("linear-space"))
	e.bind("lcs.diff", fs.Lookup("diff"))
	e.bind("lcs.diff-width", fs.Lookup("width"))
	return cmd
}
