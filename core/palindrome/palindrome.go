// Package palindrome finds reverse palindromes: substrings equal to the
// complement of their own reversal, such as restriction sites.
package palindrome

import (
	"errors"
	"fmt"
	"sort"

	"seqmatch-core/alphabet"
)

// ErrInvalidRange is returned for a length window with minLen < 1 or
// minLen > maxLen.
var ErrInvalidRange = errors.New("invalid length range")

// Match is a reverse palindrome of Length symbols starting at 0-based Start.
type Match struct {
	Start  int
	Length int
}

// Find reports every reverse palindrome in seq whose length lies in
// [minLen, maxLen]. The sequence's alphabet must define a complement.
// Overlapping and nested matches are all reported, ordered by start and then
// length. Only even lengths can pair every symbol, so odd lengths never
// appear in the result.
func Find(seq alphabet.Sequence, minLen, maxLen int) ([]Match, error) {
	if err := checkRange(minLen, maxLen); err != nil {
		return nil, err
	}
	if seq.Alphabet() == nil {
		return nil, alphabet.ErrNoComplementDefined
	}
	c, err := seq.Alphabet().Complementer()
	if err != nil {
		return nil, err
	}
	return scan(seq.String(), c, minLen, maxLen), nil
}

// FindWith is Find for callers that already hold a complement.
func FindWith(symbols []byte, c alphabet.Complementer, minLen, maxLen int) ([]Match, error) {
	if err := checkRange(minLen, maxLen); err != nil {
		return nil, err
	}
	return scan(symbols, c, minLen, maxLen), nil
}

func checkRange(minLen, maxLen int) error {
	if minLen < 1 || minLen > maxLen {
		return fmt.Errorf("[%d, %d]: %w", minLen, maxLen, ErrInvalidRange)
	}
	return nil
}

// scan expands every even center outward while the flanking symbols pair,
// giving O(n*maxLen) work.
func scan[S ~string | ~[]byte](s S, c alphabet.Complementer, minLen, maxLen int) []Match {
	out := []Match{}
	n := len(s)
	for mid := 1; mid < n; mid++ {
		for r := 1; mid-r >= 0 && mid+r-1 < n && 2*r <= maxLen; r++ {
			if c.Complement(s[mid-r]) != s[mid+r-1] {
				break
			}
			if 2*r >= minLen {
				out = append(out, Match{Start: mid - r, Length: 2 * r})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Length < out[j].Length
	})
	return out
}
