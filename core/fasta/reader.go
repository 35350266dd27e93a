// core/fasta/reader.go
package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoRecords is returned by ReadQueryCtx when the input holds no record.
var ErrNoRecords = errors.New("fasta: no records in input")

// multiReadCloser closes every wrapped closer when Close is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path for reading. "-" means stdin; gzip is detected by
// magic number (1F 8B) or a .gz suffix and decompressed transparently.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// ReadAllCtx opens path and returns every record in input order. Chaining
// needs whole sequences, so no windowing is applied.
func ReadAllCtx(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var recs []Record
	err = StreamRecordsCtx(ctx, rc, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadAll is the background-context convenience wrapper around ReadAllCtx.
func ReadAll(path string) ([]Record, error) {
	return ReadAllCtx(context.Background(), path)
}

// ReadQueryCtx returns the first record of path, for callers that take a
// single query sequence from a FASTA file.
func ReadQueryCtx(ctx context.Context, path string) (Record, error) {
	recs, err := ReadAllCtx(ctx, path)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, ErrNoRecords
	}
	return recs[0], nil
}
