package cliutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seqmatch-core/alphabet"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{"-", filepath.Join(dir, "*.fa"), "plain.fa"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"-", a, b, "plain.fa"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatal("expected error for a glob with no matches")
	}
}

func TestParseMotifs(t *testing.T) {
	got, err := ParseMotifs(alphabet.DNA, []string{"acg, tt", "ACG", "gaattc"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ACG", "TT", "GAATTC"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("motif %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseMotifsErrors(t *testing.T) {
	if _, err := ParseMotifs(alphabet.DNA, []string{"ACGU"}); !errors.Is(err, alphabet.ErrInvalidSymbol) {
		t.Errorf("err = %v, want ErrInvalidSymbol", err)
	}
	if _, err := ParseMotifs(alphabet.DNA, []string{"AC,,GT"}); err == nil {
		t.Error("expected error for an empty motif")
	}
	if _, err := ParseMotifs(alphabet.DNA, nil); err == nil {
		t.Error("expected error for no motifs")
	}
}
