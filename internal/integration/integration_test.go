// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seqmatch/internal/appshell"
	"seqmatch/internal/cli"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func writeGzip(t *testing.T, fn, data string) string {
	t.Helper()
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return write(t, fn, b.String())
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := appshell.Run(context.Background(), cli.Execute, args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndGlobAndGzip(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.fa"), ">a\nGATTACA\n")
	writeGzip(t, filepath.Join(dir, "b.fa.gz"), ">b\nTAGACCA\n")
	write(t, filepath.Join(dir, "c.fa"), ">c\nATA\nCA\n")

	code, out, errs := run(t, "shared", "-o", "tsv", "--no-header",
		filepath.Join(dir, "*.fa"), filepath.Join(dir, "*.gz"))
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if out != "TA\t2\t3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestNoArgsPrintsHelp(t *testing.T) {
	code, out, _ := run(t)
	if code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("exit %d, out=%q", code, out)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&b, ">r%03d\n%s\n", i, strings.Repeat("GAATTCAGCT"[i%10:]+"TTAA", 5))
	}
	fa := write(t, filepath.Join(t.TempDir(), "many.fa"), b.String())

	for _, cmd := range [][]string{
		{"revp", "--min", "4", "--max", "8"},
		{"locate", "-m", "TTAA,GAATTC"},
		{"prefix"},
	} {
		runThreads := func(threads int) string {
			args := append(append([]string{}, cmd...), "-o", "jsonl", "--threads", fmt.Sprint(threads), fa)
			code, out, errs := run(t, args...)
			if code != 0 {
				t.Fatalf("%v: exit %d err %s", cmd, code, errs)
			}
			return out
		}
		serial := runThreads(1)
		if parallel := runThreads(4); parallel != serial {
			t.Errorf("%v: parallel output differs from serial", cmd)
		}
		if serial == "" {
			t.Errorf("%v: no output", cmd)
		}
	}
}

func TestCtrlC_MidScan_Exit130(t *testing.T) {
	// Big enough that loading and scanning are still underway at cancel time.
	const Mb = 1 << 20
	var b strings.Builder
	b.WriteString(">chr1\n")
	seq := strings.Repeat("ACGT", (8*Mb)/4)
	for i := 0; i < len(seq); i += 60 {
		b.WriteString(seq[i:min(i+60, len(seq))])
		b.WriteByte('\n')
	}
	fn := write(t, filepath.Join(t.TempDir(), "cancel_big.fa"), b.String())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int, 1)
	go func() {
		var out, errBuf bytes.Buffer
		done <- appshell.Run(ctx, cli.Execute, []string{"revp", "-o", "jsonl", fn}, &out, &errBuf)
	}()
	cancel()
	if code := <-done; code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
