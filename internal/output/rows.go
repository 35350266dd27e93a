// internal/output/rows.go
package output

import (
	"fmt"
	"sort"
	"strings"

	"seedchain-core/chain"
	"seedchain-core/fasta"
)

// Row is one chain resolved against its database record, ready to render.
type Row struct {
	SourceFile string
	SeqID      int
	RecordID   string
	Start      int
	Length     int // matched (non-gap) letters in the span
	Span       string
}

// Header is the TSV header line (no trailing newline).
const Header = "source_file\tseq_id\trecord_id\tstart\tlength\tspan"

// BuildRows resolves chains against the records they matched. The gap byte
// replaces chain.Gap in the rendered span; sequence alphabets never contain
// the placeholder, so the substitution is presentation-only.
func BuildRows(chains []chain.Chain, recs []fasta.Record, sources []string, gap byte) []Row {
	rows := make([]Row, 0, len(chains))
	for _, c := range chains {
		span := c.Span
		matched := len(span) - strings.Count(span, string(chain.Gap))
		if gap != chain.Gap {
			span = strings.ReplaceAll(span, string(chain.Gap), string(gap))
		}
		rows = append(rows, Row{
			SourceFile: sources[c.SeqID],
			SeqID:      c.SeqID,
			RecordID:   recs[c.SeqID].ID,
			Start:      c.Start,
			Length:     matched,
			Span:       span,
		})
	}
	return rows
}

// SortRowsByStart reorders rows by (Start, SeqID) for callers that want
// database-coordinate ordering instead of the default seq-id ordering.
func SortRowsByStart(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Start != rows[j].Start {
			return rows[i].Start < rows[j].Start
		}
		return rows[i].SeqID < rows[j].SeqID
	})
}

// FormatRowTSV returns the base columns (no trailing newline).
func FormatRowTSV(r Row) string {
	return fmt.Sprintf("%s\t%d\t%s\t%d\t%d\t%s",
		r.SourceFile, r.SeqID, r.RecordID, r.Start, r.Length, r.Span)
}
