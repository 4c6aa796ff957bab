// Package subseq computes longest common subsequences of two sequences.
//
// Longest fills the full dynamic-programming table and walks it back to a
// deterministic witness. Length keeps only two rows. LinearSpace recovers a
// witness in linear memory using Hirschberg's divide and conquer.
package subseq

import (
	"seqmatch-core/alphabet"
)

// Longest returns a longest common subsequence of a and b. When several
// exist, the table walk prefers decrementing the index into a on ties, which
// fixes one witness. The result is empty when a and b share no symbol.
func Longest(a, b alphabet.Sequence) (string, error) {
	if err := alphabet.Shared(a, b); err != nil {
		return "", err
	}
	return longest(a.String(), b.String()), nil
}

func longest(a, b string) string {
	n, m := len(a), len(b)
	w := m + 1
	// table[i*w+j] is the LCS length of a[:i] and b[:j]; row 0 and column 0
	// stay zero.
	table := make([]int32, (n+1)*w)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case a[i-1] == b[j-1]:
				table[i*w+j] = table[(i-1)*w+j-1] + 1
			case table[(i-1)*w+j] >= table[i*w+j-1]:
				table[i*w+j] = table[(i-1)*w+j]
			default:
				table[i*w+j] = table[i*w+j-1]
			}
		}
	}

	out := make([]byte, table[n*w+m])
	k := len(out) - 1
	for i, j := n, m; i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			k--
			i--
			j--
		case table[(i-1)*w+j] == table[i*w+j]:
			i--
		default:
			j--
		}
	}
	return string(out)
}

// Length returns the length of a longest common subsequence of a and b
// using two rows of the table.
func Length(a, b alphabet.Sequence) (int, error) {
	if err := alphabet.Shared(a, b); err != nil {
		return 0, err
	}
	x, y := a.String(), b.String()
	if len(y) > len(x) {
		x, y = y, x
	}
	row := lastRow(x, y)
	return row[len(y)], nil
}

// lastRow returns the final row of the table for a against b: entry j is
// the LCS length of a and b[:j].
func lastRow[S ~string | ~[]byte](a, b S) []int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev
}
