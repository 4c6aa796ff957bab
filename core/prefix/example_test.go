package prefix_test

import (
	"fmt"

	"seqmatch-core/alphabet"
	"seqmatch-core/prefix"
)

func ExampleLocate() {
	text := alphabet.MustSequence(alphabet.DNA, "GATATATGCATATACTT")
	motif := alphabet.MustSequence(alphabet.DNA, "ATAT")
	fmt.Println(prefix.Build(motif))
	pos, err := prefix.Locate(text, motif)
	if err != nil {
		panic(err)
	}
	fmt.Println(pos)
	// Output:
	// [0 0 1 2]
	// [1 3 9]
}
