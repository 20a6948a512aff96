// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/benwiederhake/go-implicants/internal/cube"

// reportChunks scans every chunk in the map and, for each implicant it
// finds, tests primality against its same-rank peers before invoking
// ctx.report.
//
// A cube (m, f) is prime iff no single free-bit extension produces another
// implicant. The test looks for a sibling implicant at the same mask m
// that differs in exactly one currently-fixed coordinate: if chunk[f ^ d]
// is set for some d that is fixed in (m, f), then the rank-(k+1) cube
// (m|d, f&^d) is also an implicant, and (m, f) is not prime. This is the
// canonical test given the face-closure representation; an equivalent
// rank-(k+1)-membership test is used to cross-check it in tests.
func reportChunks(ctx *context, chunks cube.ChunkMap) {
	ambient := ambientMask(ctx.arity)
	for m, chunk := range chunks {
		complement := ^m & ambient
		for f := range cube.Submasks(complement) {
			if !chunk.Is(f) {
				continue
			}
			ctx.report(m, f, !hasPeer(chunk, m, f, ambient))
		}
	}
}

// hasPeer reports whether (m, f) has a sibling implicant within the same
// chunk differing in exactly one currently-fixed coordinate. fixed's bits
// are exactly the coordinates fixed in (m, f), so every single bit peeled
// off of it is, by construction, disjoint from m and need not be checked
// again (the original Rust's "if (mask_m & peer_dir) == 0" guard is implied
// here rather than tested).
func hasPeer(chunk *cube.Bitset, m, f, ambient uint32) bool {
	fixed := ^m & ambient
	for fixed != 0 {
		d := fixed & -fixed
		fixed &^= d
		if chunk.Is(f ^ d) {
			return true
		}
	}
	return false
}

func ambientMask(arity uint32) uint32 {
	if arity == 0 {
		return 0
	}
	return (uint32(1) << arity) - 1
}
