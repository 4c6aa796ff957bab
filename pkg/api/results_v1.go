// pkg/api/results_v1.go
package api

// Stable JSON/JSONL/YAML schemas, one per command. Keep fields, names, and
// types stable. Add new fields only with ",omitempty". Positions follow the
// --one-based setting of the run that produced them.

// PrefixArrayV1 is the failure array of one record.
type PrefixArrayV1 struct {
	SequenceID string `json:"sequence_id" yaml:"sequence_id"`
	Length     int    `json:"length" yaml:"length"`
	Array      []int  `json:"array" yaml:"array"`
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty"`
}

// MotifHitV1 is one occurrence of a motif.
type MotifHitV1 struct {
	SequenceID string `json:"sequence_id" yaml:"sequence_id"`
	Motif      string `json:"motif" yaml:"motif"`
	Pos        int    `json:"pos" yaml:"pos"`
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty"`
}

// SharedSubstringV1 is the longest substring common to a collection.
type SharedSubstringV1 struct {
	Found       bool     `json:"found" yaml:"found"`
	Substring   string   `json:"substring,omitempty" yaml:"substring,omitempty"`
	Length      int      `json:"length" yaml:"length"`
	Reference   string   `json:"reference" yaml:"reference"`
	SequenceIDs []string `json:"sequence_ids" yaml:"sequence_ids"`
}

// SubsequenceV1 is a longest common subsequence of two records.
type SubsequenceV1 struct {
	A           string `json:"a" yaml:"a"`
	B           string `json:"b" yaml:"b"`
	Subsequence string `json:"subsequence" yaml:"subsequence"`
	Length      int    `json:"length" yaml:"length"`
	Alignment   string `json:"alignment,omitempty" yaml:"alignment,omitempty"`
}

// PalindromeV1 is one reverse palindrome.
type PalindromeV1 struct {
	SequenceID string `json:"sequence_id" yaml:"sequence_id"`
	Pos        int    `json:"pos" yaml:"pos"`
	Length     int    `json:"length" yaml:"length"`
	Site       string `json:"site,omitempty" yaml:"site,omitempty"`
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty"`
}
