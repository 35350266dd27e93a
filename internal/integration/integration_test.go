// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seedchain/internal/app"
)

const refDB = ">s0\nAPEPTIDE\n>s1\nPEPTIDEA\n>s2\nDIFFERENT\n>s3\nTIDEAPEP\n>s4\nREPTILE\n"

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEndText(t *testing.T) {
	fa := write(t, "db.fa", refDB)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--query", "PEPTID",
		"--sequences", fa,
		"--seed-length", "3",
	}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 { // header + 4 chains (s2 shares no 3-mers)
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	wantRows := []string{
		"\t0\ts0\t1\t6\tPEPTID",
		"\t1\ts1\t0\t6\tPEPTID",
		"\t3\ts3\t5\t3\tPEP---",
		"\t4\ts4\t0\t4\t-EPTI-",
	}
	for i, want := range wantRows {
		if !strings.Contains(lines[i+1], want) {
			t.Errorf("line %d = %q, want it to contain %q", i+1, lines[i+1], want)
		}
	}
}

func TestEndToEndJSON(t *testing.T) {
	fa := write(t, "db.fa", refDB)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--query", "PEPTID",
		"--sequences", fa,
		"--output", "json",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}

	var chains []struct {
		SeqID    int    `json:"seq_id"`
		RecordID string `json:"record_id"`
		Start    int    `json:"start"`
		Span     string `json:"span"`
	}
	if err := json.Unmarshal(out.Bytes(), &chains); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out.String())
	}
	if len(chains) != 4 {
		t.Fatalf("got %d chains, want 4", len(chains))
	}
	if chains[0].SeqID != 0 || chains[0].Start != 1 || chains[0].Span != "PEPTID" {
		t.Errorf("chain 0 = %+v", chains[0])
	}
}

func TestEndToEndQueryFile(t *testing.T) {
	fa := write(t, "db.fa", refDB)
	qf := write(t, "q.fa", ">q\nPEPTID\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--query-file", qf, "--sequences", fa}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "PEPTID") {
		t.Fatalf("no match rows:\n%s", out.String())
	}
}

func TestNoMatchExitCode(t *testing.T) {
	fa := write(t, "db.fa", refDB)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--query", "WWWWWW", "--sequences", fa}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("exit %d, want 1 (default no-match code)", code)
	}

	code = app.Run([]string{"--query", "WWWWWW", "--sequences", fa, "--no-match-exit-code", "0"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, want 0 (overridden no-match code)", code)
	}
}

func TestUsageErrorExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--query", "PEPTID"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2 for missing database", code)
	}
	if errBuf.Len() == 0 {
		t.Fatal("expected a usage diagnostic on stderr")
	}
}
