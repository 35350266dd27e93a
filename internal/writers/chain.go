// internal/writers/chain.go

// Package writers turns resolved chains into serialized outputs. Writers own
// all presentation knowledge (TSV, pretty blocks, JSON); the core stays
// domain-only and the app stays orchestration-only. JSON goes through
// pkg/api (v1) for a stable wire format.
package writers

import (
	"fmt"
	"io"

	"seedchain/internal/output"
	"seedchain/internal/pretty"
)

// Config selects the serialization for one writer goroutine.
type Config struct {
	Format      string // "text" | "json"
	Header      bool
	Pretty      bool
	SortByStart bool
	Gap         byte
	Query       string // needed by the pretty renderer
}

// StartChainWriter spins up a writer goroutine consuming output.Rows.
// Close the returned channel to finish; the error channel yields exactly one
// value once everything is flushed.
func StartChainWriter(out io.Writer, cfg Config, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var rows []output.Row
		for r := range in {
			rows = append(rows, r)
		}
		if cfg.SortByStart {
			output.SortRowsByStart(rows)
		}

		var err error
		switch cfg.Format {
		case "json":
			err = output.WriteJSON(out, rows)
		case "text":
			var render func(output.Row) string
			if cfg.Pretty {
				render = func(r output.Row) string { return pretty.Render(cfg.Query, r, cfg.Gap) }
			}
			err = output.WriteText(out, rows, cfg.Header, render)
		default:
			err = fmt.Errorf("unsupported output %q", cfg.Format)
		}
		errCh <- err
	}()

	return in, errCh
}
