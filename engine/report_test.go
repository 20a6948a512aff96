// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"sort"
	"testing"

	"github.com/benwiederhake/go-implicants/internal/cube"
)

type triple struct {
	m, f    uint32
	isPrime bool
}

func TestReportChunks(t *testing.T) {
	ctx := &context{sample: sampleFail, report: reportFail, arity: 3}
	chunks := cube.NewChunkMap()
	c := chunks.InsertOrGet(0, 3)
	c.Set(0b000)
	c.Set(0b110)
	c.Set(0b111)

	var got []triple
	ctx.report = func(m, f uint32, isPrime bool) {
		got = append(got, triple{m, f, isPrime})
	}

	reportChunks(ctx, chunks)

	want := []triple{
		{0, 0b000, true},
		{0, 0b110, false},
		{0, 0b111, false},
	}
	assertSameTriples(t, got, want)
}

// TestReportingAgreesWithRankMembership checks that the reporter's
// sibling-within-chunk primality test agrees with an equivalent test based
// on membership in the rank-(k+1) chunk map, whenever the pruning and
// face-closure invariants hold. This brute-forces full, un-pruned-across-
// ranks maps for several small functions and cross-checks both tests for
// every implicant found.
func TestReportingAgreesWithRankMembership(t *testing.T) {
	samples := map[string]SampleFunc{
		"mod3":     sampleMod3,
		"mux":      sampleMux,
		"const-true": func(uint32) bool { return true },
		"const-false": func(uint32) bool { return false },
		"majority-of-5": func(v uint32) bool {
			count := 0
			for i := 0; i < 5; i++ {
				if v&(1<<uint(i)) != 0 {
					count++
				}
			}
			return count > 2
		},
	}

	for name, sample := range samples {
		t.Run(name, func(t *testing.T) {
			const arity = 5
			ranks := buildAllRanks(sample, arity)

			for _, chunks := range ranks {
				for m, chunk := range chunks {
					ambient := ambientMask(arity)
					for f := range cube.Submasks(^m & ambient) {
						if !chunk.Is(f) {
							continue
						}
						bySibling := !hasPeer(chunk, m, f, ambient)
						byRankLookup := isPrimeByRankLookup(ranks, m, f, arity)
						if bySibling != byRankLookup {
							t.Errorf("%s: (m=%#b, f=%#b): sibling test = %v, rank-lookup test = %v",
								name, m, f, bySibling, byRankLookup)
						}
					}
				}
			}
		})
	}
}

// buildAllRanks runs the rank-0/rank-n builders exactly as Generate does,
// but retains every rank's chunk map (instead of ping-ponging two buffers)
// so tests can look up rank-(k+1) membership directly.
func buildAllRanks(sample SampleFunc, arity uint32) []cube.ChunkMap {
	ctx := &context{sample: sample, report: reportFail, arity: arity}
	ranks := make([]cube.ChunkMap, arity+1)
	ranks[0] = cube.NewChunkMap()
	buildRank0(ctx, ranks[0])
	for rank := uint32(1); rank <= arity; rank++ {
		ranks[rank] = cube.NewChunkMap()
		buildRankN(ctx, rank, ranks[rank], ranks[rank-1])
	}
	return ranks
}

// isPrimeByRankLookup tests primality of (m, f) by checking whether any
// single free-bit extension d of m produces an implicant (m|d, f&^d) that
// is recorded in the rank-(popcount(m)+1) map — an alternative test
// against the reporter's sibling-within-chunk test.
func isPrimeByRankLookup(ranks []cube.ChunkMap, m, f, arity uint32) bool {
	rank := popcount(m)
	if int(rank)+1 > len(ranks)-1 {
		return true
	}
	next := ranks[rank+1]
	fixed := ^m & ambientMask(arity)
	for fixed != 0 {
		d := fixed & -fixed
		fixed &^= d
		extChunk, ok := next.Get(m | d)
		if ok && extChunk.Is(f&^d) {
			return false
		}
	}
	return true
}

func popcount(x uint32) uint32 {
	n := uint32(0)
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

func assertSameTriples(t *testing.T, got, want []triple) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d triples %v, want %d triples %v", len(got), got, len(want), want)
	}
	sortTriples(got)
	sortTriples(want)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func sortTriples(s []triple) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].m != s[j].m {
			return s[i].m < s[j].m
		}
		return s[i].f < s[j].f
	})
}
