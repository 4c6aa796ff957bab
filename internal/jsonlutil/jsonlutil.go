// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Buffered writers are pooled; encoders are cheap and bound per call.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Encode writes every value received on in as one JSON line.
//   - encode: converts one value to its wire form and calls enc.Encode
//   - isBroken: recognizes closed-pipe errors, which are not reported
//
// After the first error the remaining input is drained and discarded.
func Encode[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	var err error
	for v := range in {
		if err != nil {
			continue
		}
		err = encode(enc, v)
	}
	if err == nil {
		err = bw.Flush()
	}
	if isBroken != nil && isBroken(err) {
		return nil
	}
	return err
}
