// Package fasta reads FASTA records. It does no alphabet validation; see
// internal/loader for that.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is a single FASTA entry. ID is the first whitespace-delimited
// token of the header; Desc is the remainder.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ScanCtx parses FASTA from r and calls emit once per record. Cancellation
// via ctx is honored between lines. Blank lines are skipped; sequence data
// before the first header is an error.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur    Record
		inRec  bool
		lineNo int
	)
	flush := func() error {
		if !inRec {
			return nil
		}
		return emit(cur)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := parseHeader(line[1:])
			cur = Record{ID: id, Desc: desc}
			inRec = true
			continue
		}
		if line[0] == ';' { // legacy comment line
			continue
		}
		if !inRec {
			return fmt.Errorf("line %d: sequence data before first header", lineNo)
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadPathCtx opens path (see Open) and scans it with ScanCtx.
func ReadPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ScanCtx(ctx, rc, emit)
}

// ReadAll collects every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ReadPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
