// core/seed/query.go
package seed

import "errors"

// ErrSeedLengthMismatch means the caller's k disagrees with the k the index
// was built with. Matching with the wrong k would produce silently wrong
// coordinates, so it is reported instead.
var ErrSeedLengthMismatch = errors.New("seed: query seed length differs from index seed length")

// Hits maps each matched seed to the offset of its last occurrence in the
// query. A seed repeated in the query keeps only the most recent offset;
// that last-write-wins rule is part of the contract (see DESIGN.md), not
// an accident of implementation.
type Hits map[string]int

// MatchQuery scans the query for k-mers present in the index, with k taken
// from the index itself. Query k-mers absent from the index are simply not
// reported. A query shorter than k yields empty Hits.
func (ix *Index) MatchQuery(query []byte) Hits {
	hits := make(Hits)
	for off := 0; off+ix.k <= len(query); off++ {
		kmer := string(query[off : off+ix.k])
		if _, ok := ix.occ[kmer]; ok {
			hits[kmer] = off
		}
	}
	return hits
}

// MatchQueryK is the checked variant for callers that carry k themselves:
// it fails fast with ErrSeedLengthMismatch rather than trusting the caller.
func (ix *Index) MatchQueryK(query []byte, k int) (Hits, error) {
	if k != ix.k {
		return nil, ErrSeedLengthMismatch
	}
	return ix.MatchQuery(query), nil
}
