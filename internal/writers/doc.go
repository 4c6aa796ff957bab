// Package writers serializes command results.
//
// Every command produces a stream of Rows. A Row carries both its table
// cells (text, tsv) and its wire value from pkg/api (json, jsonl, yaml), so
// commands never branch on the output format. Formats are looked up in a
// registry; Start runs the chosen writer on its own goroutine.
package writers
