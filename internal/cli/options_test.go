// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("seedchain-test")
	fs.Usage = func() {}
	return ParseArgs(fs, argv)
}

func TestParseMinimal(t *testing.T) {
	opt, err := parse(t, "--query", "PEPTID", "--sequences", "db.fa")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.Query != "PEPTID" || len(opt.SeqFiles) != 1 || opt.SeqFiles[0] != "db.fa" {
		t.Fatalf("options = %+v", opt)
	}
	if opt.SeedLength != 3 || opt.Output != "text" || !opt.Header || opt.Gap != "-" {
		t.Fatalf("defaults wrong: %+v", opt)
	}
}

func TestParsePositionalSequences(t *testing.T) {
	opt, err := parse(t, "--query", "PEPTID", "db1.fa", "db2.fa")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(opt.SeqFiles) != 2 {
		t.Fatalf("seq files = %v", opt.SeqFiles)
	}
}

func TestParseValidation(t *testing.T) {
	cases := [][]string{
		{"--sequences", "db.fa"}, // no query
		{"--query", "A", "--query-file", "q.fa", "--sequences", "db.fa"}, // both query forms
		{"--query", "PEPTID"}, // no database
		{"--query", "PEPTID", "--sequences", "db.fa", "--seed-length", "0"},
		{"--query", "PEPTID", "--sequences", "db.fa", "--output", "xml"},
		{"--query", "PEPTID", "--sequences", "db.fa", "--gap", "--"},
	}
	for _, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Errorf("argv %v: expected an error", argv)
		}
	}
}

func TestParseHelp(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("got %v, want flag.ErrHelp", err)
	}
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("SEEDCHAIN_SEED_LENGTH", "5")
	t.Setenv("SEEDCHAIN_OUTPUT", "json")
	opt, err := parse(t, "--query", "PEPTID", "--sequences", "db.fa")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.SeedLength != 5 || opt.Output != "json" {
		t.Fatalf("env defaults not applied: %+v", opt)
	}

	// Explicit flags still beat the environment.
	opt, err = parse(t, "--query", "PEPTID", "--sequences", "db.fa", "--seed-length", "2", "--output", "text")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.SeedLength != 2 || opt.Output != "text" {
		t.Fatalf("flags overridden by env: %+v", opt)
	}
}
