// Package loader turns FASTA files into validated sequences over a chosen
// alphabet. It is the boundary between raw input and the core engines.
package loader

import (
	"context"
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"

	"seqmatch-core/alphabet"
	"seqmatch/internal/fasta"
)

// Record is a validated FASTA entry.
type Record struct {
	ID     string
	Source string
	Seq    alphabet.Sequence
}

// Load reads every record of every path, normalizes it and validates it
// against alpha. All invalid records are reported together; records that
// validate are still returned alongside the error.
func Load(ctx context.Context, alpha *alphabet.Alphabet, paths []string) ([]Record, error) {
	log := ctxlog.Logger(ctx)
	var (
		out  []Record
		errs errors.M
	)
	for _, path := range paths {
		n := 0
		err := fasta.ReadPathCtx(ctx, path, func(r fasta.Record) error {
			n++
			seq, err := alphabet.NewSequence(alpha, alphabet.Normalize(string(r.Seq)))
			if err != nil {
				errs.Append(fmt.Errorf("%s: record %q: %w", path, r.ID, err))
				return nil
			}
			out = append(out, Record{ID: r.ID, Source: path, Seq: seq})
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			errs.Append(fmt.Errorf("%s: %w", path, err))
			continue
		}
		log.Debug("loaded", "file", path, "records", n, "alphabet", alpha.Name())
	}
	return out, errs.Err()
}

// Sequences returns the sequences of recs in order.
func Sequences(recs []Record) []alphabet.Sequence {
	out := make([]alphabet.Sequence, len(recs))
	for i, r := range recs {
		out[i] = r.Seq
	}
	return out
}
