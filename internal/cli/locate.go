package cli

import (
	"context"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"seqmatch-core/alphabet"
	"seqmatch-core/prefix"
	"seqmatch/internal/cliutil"
	"seqmatch/internal/cmdutil"
	"seqmatch/internal/loader"
	"seqmatch/internal/writers"
	"seqmatch/pkg/api"
)

func newLocateCmd(e *runEnv) *cobra.Command {
	var motifs []string
	cmd := &cobra.Command{
		Use:   "locate --motif M [--motif M2 ...] <fasta>...",
		Short: "Report every occurrence of one or more motifs",
		Long: `Report the start of every occurrence of each motif in every record,
overlapping occurrences included. A single motif is matched with the prefix
function; several are matched together in one pass with an Aho-Corasick
automaton. Hits are listed per record, per motif in the order given, and by
increasing position.`,
		Example: "  seqmatch locate -m ATAT genome.fa\n  seqmatch locate -m GAATTC,GGATCC --one-based plasmids/*.fa",
		Args:    needFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			pats, err := cliutil.ParseMotifs(e.alpha, motifs)
			if err != nil {
				return err
			}
			find, err := motifFinder(e.alpha, pats)
			if err != nil {
				return err
			}
			recs, err := e.load(cmd, args)
			if err != nil {
				return err
			}
			e.stream(cmd, []string{"ID", "MOTIF", "POS"}, func(ctx context.Context, send func(writers.Row) error) (int, error) {
				n, err := cmdutil.RunStream(ctx, e.pipeline(), recs,
					func(_ context.Context, r loader.Record) ([]writers.Row, error) {
						perMotif, err := find(r.Seq)
						if err != nil {
							return nil, err
						}
						var rows []writers.Row
						for i, positions := range perMotif {
							m := pats[i].String()
							for _, p := range positions {
								rows = append(rows, writers.Row{
									Cells: []string{r.ID, m, strconv.Itoa(e.pos(p))},
									Item:  api.MotifHitV1{SequenceID: r.ID, Motif: m, Pos: e.pos(p), SourceFile: r.Source},
								})
							}
						}
						return rows, nil
					}, send)
				ctxlog.Logger(ctx).Info("locate done", "motifs", len(pats), "records", len(recs), "hits", n)
				return n, err
			})
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&motifs, "motif", "m", nil, "motif to locate; repeat or comma-separate for several")
	_ = cmd.MarkFlagRequired("motif")
	return cmd
}

// motifFinder returns a function giving, per motif, the offsets of its
// occurrences in a sequence.
func motifFinder(a *alphabet.Alphabet, pats []alphabet.Sequence) (func(alphabet.Sequence) ([][]int, error), error) {
	if len(pats) == 1 {
		return func(s alphabet.Sequence) ([][]int, error) {
			pos, err := prefix.Locate(s, pats[0])
			if err != nil {
				return nil, err
			}
			return [][]int{pos}, nil
		}, nil
	}
	ac, err := prefix.NewAutomaton(a, pats...)
	if err != nil {
		return nil, err
	}
	return func(s alphabet.Sequence) ([][]int, error) {
		return ac.LocateAll(s), nil
	}, nil
}
