// pkg/api/chains_v1.go
package api

// ChainV1 is the stable JSON schema for merged seed chains.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ChainV1 struct {
	SeqID      int    `json:"seq_id"`
	RecordID   string `json:"record_id"`
	Start      int    `json:"start"`
	Length     int    `json:"length"` // matched (non-gap) letters in the span
	Span       string `json:"span"`
	SourceFile string `json:"source_file,omitempty"`
}
