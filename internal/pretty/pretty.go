// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"seedchain/internal/output"
)

// Options control the ASCII rendering.
type Options struct {
	// Glyphs for the match track between query and span.
	ExactGlyph string // default "|"
	GapGlyph   string // default "."

	// Prefix on every rendered line, so blocks survive naive TSV parsing.
	Prefix string
}

// DefaultOptions keeps the current look & feel.
var DefaultOptions = Options{
	ExactGlyph: "|",
	GapGlyph:   ".",
	Prefix:     "# ",
}

// Render returns an ASCII block aligning the query against one chained span:
//
//	# query  PEPTID
//	#        ||||||
//	# s1     PEPTID   (seq 1 @ 0)
func Render(query string, r output.Row, gap byte) string {
	return RenderWithOptions(query, r, gap, DefaultOptions)
}

// RenderWithOptions is Render with a custom Options set.
func RenderWithOptions(query string, r output.Row, gap byte, o Options) string {
	if o.ExactGlyph == "" {
		o.ExactGlyph = DefaultOptions.ExactGlyph
	}
	if o.GapGlyph == "" {
		o.GapGlyph = DefaultOptions.GapGlyph
	}

	label := r.RecordID
	if label == "" {
		label = fmt.Sprintf("seq%d", r.SeqID)
	}
	pad := len(label)
	if len("query") > pad {
		pad = len("query")
	}

	var bars strings.Builder
	for i := 0; i < len(r.Span); i++ {
		if i < len(query) && r.Span[i] != gap && r.Span[i] == query[i] {
			bars.WriteString(o.ExactGlyph)
		} else {
			bars.WriteString(o.GapGlyph)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%-*s  %s\n", o.Prefix, pad, "query", query)
	fmt.Fprintf(&b, "%s%-*s  %s\n", o.Prefix, pad, "", bars.String())
	fmt.Fprintf(&b, "%s%-*s  %s   (seq %d @ %d)\n", o.Prefix, pad, label, r.Span, r.SeqID, r.Start)
	return b.String()
}
