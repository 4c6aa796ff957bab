// core/alphabet/sequence.go
package alphabet

import (
	"fmt"
	"strings"
	"unicode"
)

// Sequence is an immutable run of symbols over an Alphabet. The zero value is
// an empty sequence with no alphabet.
type Sequence struct {
	alpha *Alphabet
	data  string
}

// NewSequence validates s against a and returns it as a Sequence. The input
// is used as-is; call Normalize first to strip whitespace and fold case.
func NewSequence(a *Alphabet, s string) (Sequence, error) {
	if err := a.Validate(s); err != nil {
		return Sequence{}, err
	}
	return Sequence{alpha: a, data: s}, nil
}

// MustSequence is like NewSequence but panics on invalid input. Intended for
// literals in tests and examples.
func MustSequence(a *Alphabet, s string) Sequence {
	seq, err := NewSequence(a, s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Alphabet returns the alphabet the sequence was validated against.
func (s Sequence) Alphabet() *Alphabet { return s.alpha }

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.data) }

// At returns the symbol at 0-based offset i.
func (s Sequence) At(i int) byte { return s.data[i] }

// String returns the symbols as a string.
func (s Sequence) String() string { return s.data }

// Bytes returns a copy of the symbols.
func (s Sequence) Bytes() []byte { return []byte(s.data) }

// Slice returns the subsequence [i, j).
func (s Sequence) Slice(i, j int) Sequence { return Sequence{alpha: s.alpha, data: s.data[i:j]} }

// Equal reports symbol-wise equality.
func (s Sequence) Equal(o Sequence) bool { return s.data == o.data }

// ReverseComplement returns the complement of the reversed sequence.
func (s Sequence) ReverseComplement() (Sequence, error) {
	if s.alpha == nil {
		return Sequence{}, ErrNoComplementDefined
	}
	c, err := s.alpha.Complementer()
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{alpha: s.alpha, data: string(RevComp(c, []byte(s.data)))}, nil
}

// Shared checks that every sequence was built over the same alphabet. Zero
// value sequences carry no alphabet and are compatible with any.
func Shared(seqs ...Sequence) error {
	var first *Alphabet
	for i, s := range seqs {
		if s.alpha == nil {
			continue
		}
		if first == nil {
			first = s.alpha
			continue
		}
		if s.alpha != first {
			return fmt.Errorf("sequence %d is %s, expected %s: %w", i, s.alpha, first, ErrAlphabetMismatch)
		}
	}
	return nil
}

// RevComp returns the reverse complement of seq under c.
func RevComp(c Complementer, seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = c.Complement(seq[n-1-i])
	}
	return out
}

// Normalize removes whitespace and quotes and upper-cases the remainder.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
