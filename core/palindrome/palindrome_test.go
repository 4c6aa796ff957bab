package palindrome

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"seqmatch-core/alphabet"
)

func dna(s string) alphabet.Sequence { return alphabet.MustSequence(alphabet.DNA, s) }

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		seq      string
		min, max int
		want     []Match
	}{
		{"whole sequence", "ACGT", 4, 4, []Match{{0, 4}}},
		{"nested", "GAATTC", 2, 6, []Match{{0, 6}, {1, 4}, {2, 2}}},
		{"odd bounds", "ACGT", 1, 5, []Match{{0, 4}, {1, 2}}},
		{"homopolymer has none", "AAAA", 1, 4, []Match{}},
		{"too short", "A", 2, 4, []Match{}},
		{"restriction sites", "TCAATGCATGCGGGTCTATATGCAT", 4, 12, []Match{
			{3, 6}, {4, 4}, {5, 6}, {6, 4}, {16, 4}, {17, 4}, {19, 6}, {20, 4},
		}},
	}
	for _, tc := range tests {
		got, err := Find(dna(tc.seq), tc.min, tc.max)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: Find(%s, %d, %d) = %v, want %v", tc.name, tc.seq, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestFindInvalidRange(t *testing.T) {
	for _, r := range [][2]int{{0, 4}, {-2, 4}, {6, 4}} {
		if _, err := Find(dna("ACGT"), r[0], r[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Find(min=%d, max=%d) err = %v, want ErrInvalidRange", r[0], r[1], err)
		}
	}
}

func TestFindNeedsComplement(t *testing.T) {
	p := alphabet.MustSequence(alphabet.Protein, "MKVC")
	if _, err := Find(p, 2, 4); !errors.Is(err, alphabet.ErrNoComplementDefined) {
		t.Errorf("err = %v, want ErrNoComplementDefined", err)
	}
	if _, err := Find(alphabet.Sequence{}, 2, 4); !errors.Is(err, alphabet.ErrNoComplementDefined) {
		t.Errorf("zero sequence err = %v, want ErrNoComplementDefined", err)
	}
}

func TestFindIUPAC(t *testing.T) {
	got, err := Find(alphabet.MustSequence(alphabet.IUPAC, "RSSY"), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []Match{{0, 4}}) {
		t.Errorf("Find(RSSY) = %v, want [{0 4}]", got)
	}
}

func TestMatchesAreSelfConsistent(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	for n := 0; n < 100; n++ {
		s := dna(randomDNA(r, r.IntN(60)))
		ms, err := Find(s, 2, 12)
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range ms {
			if m.Length%2 != 0 || m.Length < 2 || m.Length > 12 {
				t.Fatalf("match %+v outside window", m)
			}
			sub := s.Slice(m.Start, m.Start+m.Length)
			rc, err := sub.ReverseComplement()
			if err != nil {
				t.Fatal(err)
			}
			if !rc.Equal(sub) {
				t.Fatalf("%s at %d is not a reverse palindrome", sub, m.Start)
			}
		}
		if got := bruteForce(s.String(), 2, 12); len(got) != len(ms) {
			t.Fatalf("Find(%s) found %d, brute force %d", s, len(ms), len(got))
		}
	}
}

func TestFindWith(t *testing.T) {
	c, err := alphabet.DNA.Complementer()
	if err != nil {
		t.Fatal(err)
	}
	got, err := FindWith([]byte("GAATTC"), c, 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []Match{{0, 6}}) {
		t.Errorf("FindWith = %v", got)
	}
}

func bruteForce(s string, minLen, maxLen int) []Match {
	c, _ := alphabet.DNA.Complementer()
	var out []Match
	for l := minLen; l <= maxLen; l++ {
		if l%2 != 0 {
			continue
		}
	win:
		for i := 0; i+l <= len(s); i++ {
			for k := 0; k < l/2; k++ {
				if c.Complement(s[i+k]) != s[i+l-1-k] {
					continue win
				}
			}
			out = append(out, Match{i, l})
		}
	}
	return out
}

func randomDNA(r *rand.Rand, n int) string {
	const bases = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[r.IntN(len(bases))]
	}
	return string(b)
}
