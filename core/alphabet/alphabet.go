// core/alphabet/alphabet.go
package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol is returned when a sequence holds a symbol outside its alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrNoComplementDefined is returned when complement behavior is requested
	// from an alphabet that has no complement mapping.
	ErrNoComplementDefined = errors.New("no complement defined")
	// ErrAlphabetMismatch is returned when sequences compared against each
	// other were validated against different alphabets.
	ErrAlphabetMismatch = errors.New("alphabet mismatch")
)

// SymbolError reports the offending symbol and its 0-based offset.
type SymbolError struct {
	Alphabet string
	Symbol   byte
	Offset   int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: %q at %d not in %s alphabet", ErrInvalidSymbol, e.Symbol, e.Offset, e.Alphabet)
}

func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }

// Complementer is the capability required by engines that pair symbols,
// e.g. nucleotide base pairing.
type Complementer interface {
	Complement(sym byte) byte
}

// Alphabet is a finite ordered set of byte symbols with an optional
// involutive complement. The zero value is an empty alphabet.
type Alphabet struct {
	name    string
	symbols []byte
	index   [256]int16 // rank+1; 0 means absent
	comp    *complementTable
}

type complementTable [256]byte

func (t *complementTable) Complement(sym byte) byte { return t[sym] }

// New returns an alphabet over the given symbols, in order. Duplicates are
// rejected.
func New(name string, symbols string) (*Alphabet, error) {
	a := &Alphabet{name: name, symbols: []byte(symbols)}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.index[c] != 0 {
			return nil, fmt.Errorf("alphabet %s: duplicate symbol %q", name, c)
		}
		a.index[c] = int16(i + 1)
	}
	return a, nil
}

// WithComplement returns a copy of a carrying the complement given as
// symbol pairs, e.g. "AT", "CG". Each pair is registered both ways. The
// resulting mapping must be total on the alphabet.
func (a *Alphabet) WithComplement(pairs ...string) (*Alphabet, error) {
	out := *a
	out.symbols = append([]byte(nil), a.symbols...)
	var t complementTable
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("alphabet %s: complement pair %q must be two symbols", a.name, p)
		}
		x, y := p[0], p[1]
		if !a.Contains(x) || !a.Contains(y) {
			return nil, fmt.Errorf("alphabet %s: complement pair %q: %w", a.name, p, ErrInvalidSymbol)
		}
		if (t[x] != 0 && t[x] != y) || (t[y] != 0 && t[y] != x) {
			return nil, fmt.Errorf("alphabet %s: complement pair %q conflicts with an earlier pair", a.name, p)
		}
		t[x], t[y] = y, x
	}
	for _, s := range a.symbols {
		if t[s] == 0 {
			return nil, fmt.Errorf("alphabet %s: symbol %q has no complement", a.name, s)
		}
	}
	out.comp = &t
	return &out, nil
}

// Name returns the alphabet's name.
func (a *Alphabet) Name() string { return a.name }

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the ordered symbol set.
func (a *Alphabet) Symbols() string { return string(a.symbols) }

// Contains reports whether sym belongs to the alphabet.
func (a *Alphabet) Contains(sym byte) bool { return a.index[sym] != 0 }

// Index returns the 0-based rank of sym, or -1 if sym is not a member.
func (a *Alphabet) Index(sym byte) int { return int(a.index[sym]) - 1 }

// HasComplement reports whether a complement mapping is defined.
func (a *Alphabet) HasComplement() bool { return a.comp != nil }

// Complement returns the complement of sym.
func (a *Alphabet) Complement(sym byte) (byte, error) {
	if a.comp == nil {
		return 0, fmt.Errorf("alphabet %s: %w", a.name, ErrNoComplementDefined)
	}
	if !a.Contains(sym) {
		return 0, &SymbolError{Alphabet: a.name, Symbol: sym, Offset: -1}
	}
	return a.comp[sym], nil
}

// Complementer returns the complement capability of the alphabet.
func (a *Alphabet) Complementer() (Complementer, error) {
	if a.comp == nil {
		return nil, fmt.Errorf("alphabet %s: %w", a.name, ErrNoComplementDefined)
	}
	return a.comp, nil
}

// Validate checks that every byte of s belongs to the alphabet.
func (a *Alphabet) Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if a.index[s[i]] == 0 {
			return &SymbolError{Alphabet: a.name, Symbol: s[i], Offset: i}
		}
	}
	return nil
}

func (a *Alphabet) String() string { return a.name }
