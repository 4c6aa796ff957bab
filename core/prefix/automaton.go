// core/prefix/automaton.go
package prefix

import (
	"fmt"
	"sort"

	"seqmatch-core/alphabet"
)

// Hit is one occurrence of pattern number Pattern starting at Pos.
type Hit struct {
	Pattern int
	Pos     int
}

type acNode struct {
	next []int32 // indexed by alphabet rank; -1 until links are resolved
	fail int32
	out  []int // pattern indices ending here
}

// Automaton is an Aho–Corasick automaton over a set of patterns. Its failure
// links play the role of the prefix array for a single pattern. An Automaton
// is read-only after construction and safe for concurrent use.
type Automaton struct {
	alpha    *alphabet.Alphabet
	nodes    []acNode
	patterns []alphabet.Sequence
}

// NewAutomaton builds the automaton for patterns over a. Every pattern must
// be non-empty and drawn from a.
func NewAutomaton(a *alphabet.Alphabet, patterns ...alphabet.Sequence) (*Automaton, error) {
	ac := &Automaton{alpha: a, patterns: patterns}
	ac.nodes = []acNode{ac.newNode()}

	// goto function
	for pi, p := range patterns {
		if p.Len() == 0 {
			return nil, fmt.Errorf("pattern %d: %w", pi, ErrEmptyPattern)
		}
		if err := a.Validate(p.String()); err != nil {
			return nil, fmt.Errorf("pattern %d: %w", pi, err)
		}
		state := int32(0)
		for i := 0; i < p.Len(); i++ {
			ix := a.Index(p.At(i))
			if ac.nodes[state].next[ix] == -1 {
				ac.nodes[state].next[ix] = int32(len(ac.nodes))
				ac.nodes = append(ac.nodes, ac.newNode())
			}
			state = ac.nodes[state].next[ix]
		}
		ac.nodes[state].out = append(ac.nodes[state].out, pi)
	}

	// failure links (BFS)
	width := a.Len()
	queue := make([]int32, 0, len(ac.nodes))
	for ch := 0; ch < width; ch++ {
		if nx := ac.nodes[0].next[ch]; nx != -1 {
			ac.nodes[nx].fail = 0
			queue = append(queue, nx)
		} else {
			ac.nodes[0].next[ch] = 0
		}
	}
	for qh := 0; qh < len(queue); qh++ {
		r := queue[qh]
		for ch := 0; ch < width; ch++ {
			s := ac.nodes[r].next[ch]
			if s == -1 {
				ac.nodes[r].next[ch] = ac.nodes[ac.nodes[r].fail].next[ch]
				continue
			}
			queue = append(queue, s)
			f := ac.nodes[ac.nodes[r].fail].next[ch]
			ac.nodes[s].fail = f
			ac.nodes[s].out = append(ac.nodes[s].out, ac.nodes[f].out...)
		}
	}
	return ac, nil
}

func (ac *Automaton) newNode() acNode {
	n := acNode{next: make([]int32, ac.alpha.Len())}
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

// Patterns returns the patterns the automaton was built from.
func (ac *Automaton) Patterns() []alphabet.Sequence { return ac.patterns }

// Scan returns every occurrence of every pattern in text ordered by start
// position, then pattern index. Symbols outside the automaton's alphabet
// reset the match state.
func (ac *Automaton) Scan(text alphabet.Sequence) []Hit {
	var hits []Hit
	state := int32(0)
	for i := 0; i < text.Len(); i++ {
		ix := ac.alpha.Index(text.At(i))
		if ix < 0 {
			state = 0
			continue
		}
		state = ac.nodes[state].next[ix]
		for _, pi := range ac.nodes[state].out {
			hits = append(hits, Hit{Pattern: pi, Pos: i - ac.patterns[pi].Len() + 1})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Pos != hits[j].Pos {
			return hits[i].Pos < hits[j].Pos
		}
		return hits[i].Pattern < hits[j].Pattern
	})
	return hits
}

// LocateAll returns, per pattern, the increasing offsets of its occurrences
// in text, matching what Locate reports for each pattern on its own.
func (ac *Automaton) LocateAll(text alphabet.Sequence) [][]int {
	out := make([][]int, len(ac.patterns))
	for i := range out {
		out[i] = []int{}
	}
	for _, h := range ac.Scan(text) {
		out[h.Pattern] = append(out[h.Pattern], h.Pos)
	}
	return out
}
