package substring

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"seqmatch-core/alphabet"
)

func seqs(ss ...string) []alphabet.Sequence {
	out := make([]alphabet.Sequence, len(ss))
	for i, s := range ss {
		out[i] = alphabet.MustSequence(alphabet.DNA, s)
	}
	return out
}

func TestLongest(t *testing.T) {
	tests := []struct {
		name  string
		in    []string
		want  string
		found bool
	}{
		{"disjoint content", []string{"ACA", "GTT"}, "", false},
		{"leftmost in reference", []string{"GATTACA", "TAGACCA", "ATACA"}, "TA", true},
		{"single sequence", []string{"ACGT"}, "ACGT", true},
		{"single empty sequence", []string{""}, "", false},
		{"member empty", []string{"ACGT", ""}, "", false},
		{"identical", []string{"ACGT", "ACGT"}, "ACGT", true},
		{"contained", []string{"CCGTACC", "GTA"}, "GTA", true},
		{"tie picks reference order", []string{"AACC", "CCAA"}, "AA", true},
	}
	for _, tc := range tests {
		got, err := Longest(seqs(tc.in...))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		v, ok := got.Get()
		if ok != tc.found || v != tc.want {
			t.Errorf("%s: Longest(%v) = (%q, %v), want (%q, %v)", tc.name, tc.in, v, ok, tc.want, tc.found)
		}
	}
}

func TestLongestEmptyCollection(t *testing.T) {
	if _, err := Longest(nil); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("err = %v, want ErrEmptyCollection", err)
	}
}

func TestLongestIsCommonAndMaximal(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for n := 0; n < 100; n++ {
		var in []string
		for k := 0; k < 2+r.IntN(3); k++ {
			in = append(in, randomDNA(r, 1+r.IntN(25)))
		}
		got, err := Longest(seqs(in...))
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range in {
			if !strings.Contains(s, got.Value) {
				t.Fatalf("%q not in %q (input %v)", got.Value, s, in)
			}
		}
		if want := bruteLongest(in); got.Len() != len(want) || got.Value != want {
			t.Fatalf("Longest(%v) = %q, brute force = %q", in, got.Value, want)
		}
	}
}

func TestLongestShrinksAsSequencesAreAdded(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for n := 0; n < 50; n++ {
		in := []string{randomDNA(r, 30)}
		prev := len(in[0])
		for k := 0; k < 5; k++ {
			in = append(in, randomDNA(r, 10+r.IntN(30)))
			got, err := Longest(seqs(in...))
			if err != nil {
				t.Fatal(err)
			}
			if got.Len() > prev {
				t.Fatalf("length grew from %d to %d after adding a sequence", prev, got.Len())
			}
			prev = got.Len()
		}
	}
}

// bruteLongest checks every window of the reference, longest first.
func bruteLongest(in []string) string {
	ref := in[0]
	for n := len(ref); n > 0; n-- {
	next:
		for i := 0; i+n <= len(ref); i++ {
			w := ref[i : i+n]
			for _, s := range in[1:] {
				if !strings.Contains(s, w) {
					continue next
				}
			}
			return w
		}
	}
	return ""
}

func randomDNA(r *rand.Rand, n int) string {
	const bases = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[r.IntN(len(bases))]
	}
	return string(b)
}

func TestLongestAlphabetMismatch(t *testing.T) {
	in := []alphabet.Sequence{
		alphabet.MustSequence(alphabet.DNA, "ACGT"),
		alphabet.MustSequence(alphabet.RNA, "ACGU"),
	}
	if _, err := Longest(in); !errors.Is(err, alphabet.ErrAlphabetMismatch) {
		t.Errorf("err = %v, want ErrAlphabetMismatch", err)
	}
}
