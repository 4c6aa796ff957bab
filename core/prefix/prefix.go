// Package prefix implements the prefix function (failure array) of a pattern
// and the linear-time exact search built on it, plus a multi-pattern
// automaton that generalizes the failure array to a set of motifs.
package prefix

import (
	"errors"

	"seqmatch-core/alphabet"
)

// ErrEmptyPattern is returned when a search is asked for a zero-length pattern.
var ErrEmptyPattern = errors.New("empty pattern")

// Array holds, for each position i of a pattern, the length of the longest
// proper prefix of pattern[0..i] that is also a suffix of it.
type Array []int

// Build returns the prefix array of pattern in O(|pattern|).
func Build(pattern alphabet.Sequence) Array { return build(pattern.String()) }

// BuildString is Build over a raw string.
func BuildString(pattern string) Array { return build(pattern) }

func build[S ~string | ~[]byte](p S) Array {
	n := len(p)
	a := make(Array, n)
	// k only grows by one per step, so the inner fallback loop runs at most
	// n times in total.
	k := 0
	for i := 1; i < n; i++ {
		for k > 0 && p[i] != p[k] {
			k = a[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		a[i] = k
	}
	return a
}

// Locate returns every 0-based offset at which pattern occurs in text,
// overlapping occurrences included, in increasing order. A pattern that does
// not occur yields an empty, non-nil slice.
func Locate(text, pattern alphabet.Sequence) ([]int, error) {
	return locate(text.String(), pattern.String())
}

// LocateString is Locate over raw strings.
func LocateString(text, pattern string) ([]int, error) { return locate(text, pattern) }

func locate[S ~string | ~[]byte](text, pattern S) ([]int, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	fail := build(pattern)
	out := make([]int, 0, 4)
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = fail[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == m {
			out = append(out, i-m+1)
			k = fail[k-1]
		}
	}
	return out, nil
}
