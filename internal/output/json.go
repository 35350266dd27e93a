// internal/output/json.go
package output

import (
	"io"

	"seedchain/internal/jsonutil"
	"seedchain/pkg/api"
)

// ToAPIChain converts a resolved row to the stable wire schema (v1).
func ToAPIChain(r Row) api.ChainV1 {
	return api.ChainV1{
		SeqID:      r.SeqID,
		RecordID:   r.RecordID,
		Start:      r.Start,
		Length:     r.Length,
		Span:       r.Span,
		SourceFile: r.SourceFile,
	}
}

func toAPIChains(rows []Row) []api.ChainV1 {
	out := make([]api.ChainV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIChain(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 chains (pretty-indented).
func WriteJSON(w io.Writer, rows []Row) error {
	return jsonutil.EncodePretty(w, toAPIChains(rows))
}
