package writers

import (
	"encoding/json"
	"io"

	"cloudeng.io/logging"
	"gopkg.in/yaml.v3"

	"seqmatch/internal/jsonlutil"
)

func init() {
	Register("json", writeJSON)
	Register("jsonl", writeJSONL)
	Register("yaml", writeYAML)
}

// collect gathers the wire items; an empty stream yields an empty list,
// never null.
func collect(in <-chan Row) []any {
	items := []any{}
	for r := range in {
		if r.Item != nil {
			items = append(items, r.Item)
		}
	}
	return items
}

func writeJSON(w io.Writer, _ Table, in <-chan Row) error {
	return logging.NewJSONFormatter(w, "", "  ").Format(collect(in))
}

func writeJSONL(w io.Writer, _ Table, in <-chan Row) error {
	return jsonlutil.Encode(w, in, func(enc *json.Encoder, r Row) error {
		if r.Item == nil {
			return nil
		}
		return enc.Encode(r.Item)
	}, IsBrokenPipe)
}

func writeYAML(w io.Writer, _ Table, in <-chan Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(collect(in)); err != nil {
		return err
	}
	return enc.Close()
}
