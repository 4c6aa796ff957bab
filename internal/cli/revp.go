package cli

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"seqmatch-core/palindrome"
	"seqmatch/internal/cmdutil"
	"seqmatch/internal/loader"
	"seqmatch/internal/writers"
	"seqmatch/pkg/api"
)

func newRevpCmd(e *runEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revp [--min N] [--max N] <fasta>...",
		Short: "Report reverse palindromes such as restriction sites",
		Long: `Report every substring equal to its own reverse complement whose length
lies in [--min, --max], nested and overlapping ones included, ordered by
position and then length. Such a substring always has even length. The
alphabet must define complements (dna, rna or iupac).`,
		Example: "  seqmatch revp plasmid.fa\n  seqmatch revp --min 6 --max 8 --one-based genome.fa.gz",
		Args:    needFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !e.alpha.HasComplement() {
				return fmt.Errorf("revp needs an alphabet with complements; %s has none", e.alpha.Name())
			}
			minLen, maxLen := e.cfg.Palindrome.MinLength, e.cfg.Palindrome.MaxLength
			recs, err := e.load(cmd, args)
			if err != nil {
				return err
			}
			e.stream(cmd, []string{"ID", "POS", "LENGTH", "SITE"}, func(ctx context.Context, send func(writers.Row) error) (int, error) {
				n, err := cmdutil.RunStream(ctx, e.pipeline(), recs,
					func(_ context.Context, r loader.Record) ([]writers.Row, error) {
						ms, err := palindrome.Find(r.Seq, minLen, maxLen)
						if err != nil {
							return nil, fmt.Errorf("%s: %w", r.ID, err)
						}
						rows := make([]writers.Row, 0, len(ms))
						for _, m := range ms {
							site := r.Seq.Slice(m.Start, m.Start+m.Length).String()
							rows = append(rows, writers.Row{
								Cells: []string{r.ID, strconv.Itoa(e.pos(m.Start)), strconv.Itoa(m.Length), site},
								Item: api.PalindromeV1{
									SequenceID: r.ID,
									Pos:        e.pos(m.Start),
									Length:     m.Length,
									Site:       site,
									SourceFile: r.Source,
								},
							})
						}
						return rows, nil
					}, send)
				ctxlog.Logger(ctx).Info("revp done", "records", len(recs), "min", minLen, "max", maxLen, "found", n)
				return n, err
			})
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Int("min", 4, "shortest palindrome reported")
	fs.Int("max", 12, "longest palindrome reported")
	e.bind("palindrome.min-length", fs.Lookup("min"))
	e.bind("palindrome.max-length", fs.Lookup("max"))
	return cmd
}
