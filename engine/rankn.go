// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"math/bits"

	"github.com/benwiederhake/go-implicants/internal/cube"
)

// buildRankN derives every rank-(rank) chunk from the rank-(rank-1) slice
// in from, writing the result into into. into must be empty on entry.
//
// This is the face-closure recurrence: a sub-cube of rank k with don't-care
// mask m is the union of two rank-(k-1) faces along any one of its free
// coordinates. Choosing d as the lowest free bit of m makes the choice
// deterministic, so parent = m &^ d is the one rank-(k-1) mask that needs
// to be consulted; its fixed pattern must agree at both f and f|d for
// (m, f) to be an implicant.
//
// Preserves the early-exit when from is empty, the single-parent lookup
// via m & (m - 1), and end-of-chunk pruning.
func buildRankN(ctx *context, rank uint32, into, from cube.ChunkMap) {
	if into.Len() != 0 {
		panic("engine: buildRankN requires an empty destination map")
	}
	if from.Len() == 0 {
		return
	}

	for m := range cube.MasksOfPopcount(ctx.arity, rank) {
		parent := m & (m - 1)
		parentChunk, ok := from.Get(parent)
		if !ok {
			continue
		}

		collapsed := m &^ parent
		if bits.OnesCount32(collapsed) != 1 {
			panic(fmt.Sprintf("engine: collapsed coordinate %#x for mask %#x has popcount %d, want 1",
				collapsed, m, bits.OnesCount32(collapsed)))
		}

		chunk := into.InsertOrGet(m, ctx.arity)
		complement := ^m & ((uint32(1) << ctx.arity) - 1)
		for f := range cube.Submasks(complement) {
			if parentChunk.Is(f) && parentChunk.Is(f|collapsed) {
				chunk.Set(f)
			}
		}

		if !chunk.IsAny() {
			into.Remove(m)
		}
	}
}
