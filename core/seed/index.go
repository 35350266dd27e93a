// core/seed/index.go
package seed

import "errors"

// ErrInvalidK rejects non-positive seed lengths at index build time.
var ErrInvalidK = errors.New("seed: seed length must be >= 1")

// Occurrence locates one seed occurrence inside the database: SeqID is the
// sequence's zero-based position in the input collection, Offset the
// zero-based start of the seed within that sequence.
type Occurrence struct {
	SeqID  int
	Offset int
}

// Index maps every length-k substring of a sequence database to the ordered
// list of places it occurs. It is immutable after Build and safe to share
// across concurrent lookups; the seed length is bound inside the value so
// query and chain steps can never diverge from it silently.
type Index struct {
	k   int
	occ map[string][]Occurrence
}

// Build scans each sequence left to right and records every k-mer.
// Sequences shorter than k contribute nothing (valid, not an error); an
// empty database yields an empty index. Occurrence lists come out ordered
// by (SeqID, Offset) as a consequence of the scan order — chaining relies
// on that order for deterministic tie-breaking, so it must be preserved.
func Build(seqs [][]byte, k int) (*Index, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	ix := &Index{k: k, occ: make(map[string][]Occurrence)}
	for id, s := range seqs {
		for off := 0; off+k <= len(s); off++ {
			key := string(s[off : off+k])
			ix.occ[key] = append(ix.occ[key], Occurrence{SeqID: id, Offset: off})
		}
	}
	return ix, nil
}

// K reports the seed length the index was built with.
func (ix *Index) K() int { return ix.k }

// Seeds reports the number of distinct seeds in the index.
func (ix *Index) Seeds() int { return len(ix.occ) }

// Lookup returns the occurrence list for seed, or nil when absent.
// The slice is shared with the index; callers must not mutate it.
func (ix *Index) Lookup(seed []byte) []Occurrence { return ix.occ[string(seed)] }
