package cmdutil

import (
	"context"

	"seqmatch/internal/pipeline"
)

// RunStream runs work over items on the shared pipeline and streams every
// output through send. It returns the number of outputs sent and the first
// error encountered.
func RunStream[In, Out any](
	ctx context.Context,
	cfg pipeline.Config,
	items []In,
	work pipeline.Func[In, Out],
	send func(Out) error,
) (int, error) {
	total := 0
	err := pipeline.ForEach(ctx, cfg, items, work, func(o Out) error {
		if err := send(o); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
