package alphabet

import (
	"fmt"
	"sort"
	"strings"
)

/* --------------------------- built-in alphabets --------------------------- */

var (
	// DNA is the unambiguous nucleotide alphabet with Watson–Crick pairing.
	DNA = mustBuild("dna", "ACGT", "AT", "CG")
	// RNA pairs A with U.
	RNA = mustBuild("rna", "ACGU", "AU", "CG")
	// IUPAC adds the ambiguity codes; R↔Y, K↔M, B↔V, D↔H while S, W and N
	// are their own complements.
	IUPAC = mustBuild("iupac", "ACGTRYSWKMBDHVN",
		"AT", "CG", "RY", "SS", "WW", "KM", "BV", "DH", "NN")
	// Protein is the 20 standard amino acids plus the '*' stop symbol. It has
	// no complement.
	Protein = mustBuild("protein", "ACDEFGHIKLMNPQRSTVWY*")
)

var builtin = map[string]*Alphabet{
	DNA.name:     DNA,
	RNA.name:     RNA,
	IUPAC.name:   IUPAC,
	Protein.name: Protein,
}

func mustBuild(name, symbols string, pairs ...string) *Alphabet {
	a, err := New(name, symbols)
	if err != nil {
		panic(err)
	}
	if len(pairs) == 0 {
		return a
	}
	a, err = a.WithComplement(pairs...)
	if err != nil {
		panic(err)
	}
	return a
}

// Lookup returns a built-in alphabet by case-insensitive name.
func Lookup(name string) (*Alphabet, error) {
	if a, ok := builtin[strings.ToLower(name)]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("unknown alphabet %q; available: %s", name, strings.Join(Names(), ", "))
}

// Names lists the built-in alphabet names in sorted order.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for n := range builtin {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
