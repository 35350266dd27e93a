// core/chain/chain.go
package chain

import (
	"sort"

	"github.com/google/btree"

	"seedchain-core/seed"
)

// Gap fills query positions not covered by any accepted seed.
const Gap = '-'

// Chain is one merged, collinear set of seed hits against a single database
// sequence: a candidate ungapped alignment region for downstream extension
// and scoring.
type Chain struct {
	// Span has the query's length: accepted seed letters at the query
	// positions they cover, Gap everywhere else.
	Span string
	// SeqID identifies the matched database sequence.
	SeqID int
	// Start is the inferred start of the span within that sequence,
	// computed from the first placement as posInSeq - posInQuery.
	Start int
}

// placement is one candidate seed placement: the seed sits at posQ in the
// query and at posS in one database sequence.
type placement struct {
	posQ int
	posS int
	kmer string
}

// group collects every placement against one database sequence. Groups live
// in a B-tree keyed by SeqID so chains come out sorted by construction.
type group struct {
	seqID      int
	placements []placement
}

func (g *group) Less(than btree.Item) bool { return g.seqID < than.(*group).seqID }

// Merge builds at most one Chain per database sequence referenced by hits,
// ordered by SeqID ascending.
//
// Per sequence, placements are sorted by query position, ties broken by
// sequence position then seed content — a total order, so repeated runs are
// byte-identical. They are then accepted greedily: a placement must advance
// strictly past the last accepted sequence position or it is dropped, which
// rejects placements implying a non-collinear or backwards alignment. The
// policy is greedy, not optimal: an early placement can shadow a longer
// chain, and that trade-off is deliberate.
//
// Merge fails fast with seed.ErrSeedLengthMismatch if any hit's seed length
// disagrees with the index.
func Merge(hits seed.Hits, query []byte, idx *seed.Index) ([]Chain, error) {
	k := idx.K()

	groups := btree.New(2)
	for kmer, posQ := range hits {
		if len(kmer) != k {
			return nil, seed.ErrSeedLengthMismatch
		}
		for _, occ := range idx.Lookup([]byte(kmer)) {
			probe := &group{seqID: occ.SeqID}
			g, _ := groups.Get(probe).(*group)
			if g == nil {
				g = probe
				groups.ReplaceOrInsert(g)
			}
			g.placements = append(g.placements, placement{posQ: posQ, posS: occ.Offset, kmer: kmer})
		}
	}

	chains := make([]Chain, 0, groups.Len())
	groups.Ascend(func(it btree.Item) bool {
		chains = append(chains, buildChain(it.(*group), len(query), k))
		return true
	})
	return chains, nil
}

// MergeK is the checked variant for callers that carry k themselves.
func MergeK(hits seed.Hits, query []byte, idx *seed.Index, k int) ([]Chain, error) {
	if k != idx.K() {
		return nil, seed.ErrSeedLengthMismatch
	}
	return Merge(hits, query, idx)
}

// buildChain walks one sequence's sorted placements and splices the accepted
// seeds into a gap-filled buffer the length of the query, then freezes it.
func buildChain(g *group, queryLen, k int) Chain {
	ps := g.placements
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].posQ != ps[j].posQ {
			return ps[i].posQ < ps[j].posQ
		}
		if ps[i].posS != ps[j].posS {
			return ps[i].posS < ps[j].posS
		}
		return ps[i].kmer < ps[j].kmer
	})

	span := make([]byte, queryLen)
	for i := range span {
		span[i] = Gap
	}

	start := ps[0].posS - ps[0].posQ
	prev := -1
	for _, p := range ps {
		if p.posS <= prev {
			continue // would step backwards in the sequence: not collinear
		}
		copy(span[p.posQ:p.posQ+k], p.kmer)
		prev = p.posS
	}
	return Chain{Span: string(span), SeqID: g.seqID, Start: start}
}
