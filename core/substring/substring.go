// Package substring finds a longest substring shared by every member of a
// collection of sequences.
package substring

import (
	"errors"

	"cloudeng.io/sync/errgroup"

	"seqmatch-core/alphabet"
)

// ErrEmptyCollection is returned when Longest is called with no sequences.
var ErrEmptyCollection = errors.New("empty sequence collection")

// Result is the outcome of a common-substring search. Found is false when
// the collection shares no substring of length one or more.
type Result struct {
	Value string
	Found bool
}

// Get returns the substring and whether one was found.
func (r Result) Get() (string, bool) { return r.Value, r.Found }

// Len returns the length of the substring, 0 when absent.
func (r Result) Len() int { return len(r.Value) }

// Longest returns a longest substring that occurs in every sequence of seqs.
// The first sequence is the reference: among substrings of the maximal
// length, the one that starts leftmost in the reference is returned.
//
// Existence of a common substring of length L implies one of every shorter
// length, so the maximal length is found by binary search. For each probed
// length the window sets of the other sequences are built concurrently.
func Longest(seqs []alphabet.Sequence) (Result, error) {
	if len(seqs) == 0 {
		return Result{}, ErrEmptyCollection
	}
	if err := alphabet.Shared(seqs...); err != nil {
		return Result{}, err
	}
	ref := seqs[0].String()
	if len(seqs) == 1 {
		return Result{Value: ref, Found: len(ref) > 0}, nil
	}
	shortest := len(ref)
	for _, s := range seqs[1:] {
		if s.Len() < shortest {
			shortest = s.Len()
		}
	}

	best, bestAt := 0, -1
	lo, hi := 1, shortest
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if at := leftmostShared(ref, seqs[1:], mid); at >= 0 {
			best, bestAt = mid, at
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if bestAt < 0 {
		return Result{}, nil
	}
	return Result{Value: ref[bestAt : bestAt+best], Found: true}, nil
}

// leftmostShared returns the smallest offset i such that ref[i:i+n] occurs
// in every target, or -1.
func leftmostShared(ref string, targets []alphabet.Sequence, n int) int {
	sets := make([]map[string]struct{}, len(targets))
	var g errgroup.T
	for i, t := range targets {
		g.Go(func() error {
			sets[i] = windows(t.String(), n)
			return nil
		})
	}
	_ = g.Wait() // window construction cannot fail

scan:
	for i := 0; i+n <= len(ref); i++ {
		w := ref[i : i+n]
		for _, set := range sets {
			if _, ok := set[w]; !ok {
				continue scan
			}
		}
		return i
	}
	return -1
}

func windows(s string, n int) map[string]struct{} {
	set := make(map[string]struct{}, len(s)-n+1)
	for i := 0; i+n <= len(s); i++ {
		set[s[i:i+n]] = struct{}{}
	}
	return set
}
