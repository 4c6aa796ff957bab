// core/subseq/hirschberg.go
package subseq

import (
	"slices"
	"strings"

	"seqmatch-core/alphabet"
)

// LinearSpace returns a longest common subsequence of a and b using
// O(len(a)+len(b)) memory. Its witness may differ from Longest's when the
// LCS is not unique; the length is always the same.
func LinearSpace(a, b alphabet.Sequence) (string, error) {
	if err := alphabet.Shared(a, b); err != nil {
		return "", err
	}
	var sb strings.Builder
	hirschberg(&sb, a.String(), b.String())
	return sb.String(), nil
}

func hirschberg(sb *strings.Builder, a, b string) {
	switch {
	case len(a) == 0 || len(b) == 0:
		return
	case len(a) == 1:
		if strings.IndexByte(b, a[0]) >= 0 {
			sb.WriteByte(a[0])
		}
		return
	}
	mid := len(a) / 2
	fwd := lastRow(a[:mid], b)
	bwd := lastRow(reversed(a[mid:]), reversed(b))

	// Split b where the prefix score of the top half plus the suffix score of
	// the bottom half peaks.
	split, best := 0, -1
	for j := 0; j <= len(b); j++ {
		if s := fwd[j] + bwd[len(b)-j]; s > best {
			split, best = j, s
		}
	}
	hirschberg(sb, a[:mid], b[:split])
	hirschberg(sb, a[mid:], b[split:])
}

func reversed(s string) []byte {
	r := []byte(s)
	slices.Reverse(r)
	return r
}
