package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"seqmatch-core/prefix"
	"seqmatch/internal/cmdutil"
	"seqmatch/internal/loader"
	"seqmatch/internal/writers"
	"seqmatch/pkg/api"
)

func newPrefixCmd(e *runEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix <fasta>...",
		Short: "Print the prefix-function (failure) array of every record",
		Long: `Print the prefix-function array of every record. Entry i is the length of
the longest proper prefix of the record's first i+1 symbols that is also a
suffix of them. Entries are lengths, so --one-based does not change them.`,
		Example: "  seqmatch prefix motifs.fa\n  seqmatch prefix -o json - < motifs.fa",
		Args:    needFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := e.load(cmd, args)
			if err != nil {
				return err
			}
			e.stream(cmd, []string{"ID", "LENGTH", "ARRAY"}, func(ctx context.Context, send func(writers.Row) error) (int, error) {
				return cmdutil.RunStream(ctx, e.pipeline(), recs,
					func(_ context.Context, r loader.Record) ([]writers.Row, error) {
						arr := append([]int{}, prefix.Build(r.Seq)...)
						return []writers.Row{{
							Cells: []string{r.ID, strconv.Itoa(r.Seq.Len()), orDash(joinInts(arr))},
							Item: api.PrefixArrayV1{
								SequenceID: r.ID,
								Length:     r.Seq.Len(),
								Array:      arr,
								SourceFile: r.Source,
							},
						}}, nil
					}, send)
			})
			return nil
		},
	}
}
