// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"seqmatch-core/alphabet"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals. "-" is
// kept as stdin, and a glob that matches nothing is an error.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}

// ParseMotifs normalizes motif arguments, each of which may hold several
// comma-separated motifs, and validates them against alpha. Duplicates are
// dropped; the first occurrence fixes the order.
func ParseMotifs(alpha *alphabet.Alphabet, raw []string) ([]alphabet.Sequence, error) {
	var out []alphabet.Sequence
	seen := map[string]bool{}
	for _, arg := range raw {
		for _, m := range strings.Split(arg, ",") {
			m = alphabet.Normalize(m)
			if m == "" {
				return nil, fmt.Errorf("empty motif in %q", arg)
			}
			if seen[m] {
				continue
			}
			seen[m] = true
			s, err := alphabet.NewSequence(alpha, m)
			if err != nil {
				return nil, fmt.Errorf("motif %q: %w", m, err)
			}
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one --motif is required")
	}
	return out, nil
}
