// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seedchain/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Query input
	Query     string
	QueryFile string

	// Database input
	SeqFiles []string

	// Search parameters
	SeedLength int

	// Output
	Output      string
	Pretty      bool
	SortByStart bool
	Header      bool // true unless --no-header
	Gap         string

	// Behavior
	Quiet           bool
	NoMatchExitCode int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: seed-and-chain sequence similarity search

Finds exact k-mer seeds shared between a query and each database sequence,
then merges collinear seeds into one ungapped alignment span per sequence.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Unset flags fall back to SEEDCHAIN_* environment defaults.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Query input
	fs.StringVar(&opt.Query, "query", "", "query sequence given inline [*]")
	fs.StringVar(&opt.QueryFile, "query-file", "", "FASTA file holding the query (first record) [*]")

	// Database input
	var seq stringSlice
	fs.Var(&seq, "sequences", "database FASTA file(s) (repeatable or '-') [*]")

	// Search parameters
	fs.IntVar(&opt.SeedLength, "seed-length", envInt("SEEDCHAIN_SEED_LENGTH", 3), "exact seed length k [3]")

	// Output
	fs.StringVar(&opt.Output, "output", envStr("SEEDCHAIN_OUTPUT", "text"), "output format: text | json [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "ASCII alignment block per chain (text) [false]")
	fs.BoolVar(&opt.SortByStart, "sort-by-start", false, "order rows by start offset instead of sequence id [false]")
	fs.StringVar(&opt.Gap, "gap", envStr("SEEDCHAIN_GAP", "-"), "placeholder for uncovered query positions [-]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	// Behavior
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no chain is produced [1]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = append([]string(nil), seq...)
	opt.SeqFiles = append(opt.SeqFiles, fs.Args()...) // positional database files
	opt.Header = !noHeader

	// Validation
	usingInline := opt.Query != ""
	usingFile := opt.QueryFile != ""
	switch {
	case usingInline && usingFile:
		return opt, errors.New("--query conflicts with --query-file")
	case !usingInline && !usingFile:
		return opt, errors.New("provide --query or --query-file")
	}
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.SeedLength < 1 {
		return opt, errors.New("--seed-length must be ≥ 1")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if len(opt.Gap) != 1 {
		return opt, fmt.Errorf("--gap must be a single character, got %q", opt.Gap)
	}
	if opt.NoMatchExitCode < 0 {
		return opt, errors.New("--no-match-exit-code must be ≥ 0")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
