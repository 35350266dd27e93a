// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"seedchain-core/chain"
	"seedchain-core/fasta"
	"seedchain-core/seed"
	"seedchain/internal/cli"
	"seedchain/internal/output"
	"seedchain/internal/version"
	"seedchain/internal/writers"
)

// RunContext wires the whole pipeline: parse flags, load the database,
// build the seed index, match the query, merge chains, write rows.
// It returns a process exit code: 0 ok, opts.NoMatchExitCode when no chain
// was produced, 2 on usage/input errors, 3 on write errors, 130 on cancel.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	_ = godotenv.Load() // .env provides flag defaults when present

	fs := cli.NewFlagSet("seedchain")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seedchain version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	query, err := resolveQuery(ctx, opts)
	if err != nil {
		return fail(stderr, err)
	}
	if !opts.Quiet && len(query) < opts.SeedLength {
		_, _ = fmt.Fprintf(stderr, "warning: query (%d) is shorter than --seed-length (%d); no seeds possible\n",
			len(query), opts.SeedLength)
	}

	recs, sources, err := loadDatabase(ctx, opts.SeqFiles)
	if err != nil {
		return fail(stderr, err)
	}

	seqs := make([][]byte, len(recs))
	for i, r := range recs {
		seqs[i] = r.Seq
	}
	idx, err := seed.Build(seqs, opts.SeedLength)
	if err != nil {
		return fail(stderr, err)
	}
	hits, err := idx.MatchQueryK(query, opts.SeedLength)
	if err != nil {
		return fail(stderr, err)
	}
	chains, err := chain.MergeK(hits, query, idx, opts.SeedLength)
	if err != nil {
		return fail(stderr, err)
	}

	rows := output.BuildRows(chains, recs, sources, opts.Gap[0])

	inCh, writeErr := writers.StartChainWriter(outw, writers.Config{
		Format:      opts.Output,
		Header:      opts.Header,
		Pretty:      opts.Pretty,
		SortByStart: opts.SortByStart,
		Gap:         opts.Gap[0],
		Query:       string(query),
	}, len(rows))
	for _, r := range rows {
		inCh <- r
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if len(chains) == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func resolveQuery(ctx context.Context, opts cli.Options) ([]byte, error) {
	if opts.Query != "" {
		return []byte(opts.Query), nil
	}
	rec, err := fasta.ReadQueryCtx(ctx, opts.QueryFile)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", opts.QueryFile, err)
	}
	return rec.Seq, nil
}

// loadDatabase reads every record of every file, in file order, and tracks
// which file each record came from. Records keep their positional seq id
// across files, matching the index's view of the database.
func loadDatabase(ctx context.Context, paths []string) ([]fasta.Record, []string, error) {
	var (
		recs    []fasta.Record
		sources []string
	)
	for _, p := range paths {
		got, err := fasta.ReadAllCtx(ctx, p)
		if err != nil {
			return nil, nil, fmt.Errorf("sequences %s: %w", p, err)
		}
		recs = append(recs, got...)
		for range got {
			sources = append(sources, p)
		}
	}
	return recs, sources, nil
}

func fail(stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 2
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
