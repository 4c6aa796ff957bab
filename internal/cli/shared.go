package cli

import (
	"context"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"seqmatch-core/substring"
	"seqmatch/internal/loader"
	"seqmatch/internal/writers"
	"seqmatch/pkg/api"
)

func newSharedCmd(e *runEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "shared <fasta>...",
		Short: "Find the longest substring shared by every record",
		Long: `Find a longest substring that occurs in every record of the inputs. The
first record is the reference: among candidates of the maximal length, the
one starting leftmost in it is reported. A single row is written either way;
when nothing is shared the command exits with --no-match-exit-code.`,
		Example: "  seqmatch shared family.fa\n  seqmatch shared -o json a.fa b.fa c.fa",
		Args:    needFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := e.load(cmd, args)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return runtimeError(substring.ErrEmptyCollection)
			}
			e.stream(cmd, []string{"SUBSTRING", "LENGTH", "SEQUENCES"}, func(ctx context.Context, send func(writers.Row) error) (int, error) {
				res, err := substring.Longest(loader.Sequences(recs))
				if err != nil {
					return 0, err
				}
				ids := make([]string, len(recs))
				for i, r := range recs {
					ids[i] = r.ID
				}
				value, found := res.Get()
				ctxlog.Logger(ctx).Info("shared done", "records", len(recs), "found", found, "length", res.Len())
				err = send(writers.Row{
					Cells: []string{orDash(value), strconv.Itoa(res.Len()), strconv.Itoa(len(recs))},
					Item: api.SharedSubstringV1{
						Found:       found,
						Substring:   value,
						Length:      res.Len(),
						Reference:   recs[0].ID,
						SequenceIDs: ids,
					},
				})
				if !found {
					return 0, err
				}
				return 1, err
			})
			return nil
		},
	}
}
