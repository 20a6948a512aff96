// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/benwiederhake/go-implicants/internal/cube"
)

// buildRank0 populates the chunk at mask 0 from the oracle: every vertex v
// in [0, 2^arity) is sampled, and bit v is set in the chunk iff sample(v)
// is true. into must be empty on entry — this is a contract violation,
// not a recoverable error, so it panics rather than returning an error.
//
// Asserts an empty destination up front and removes key 0 again if the
// chunk ended up all-zero, preserving the pruning invariant.
func buildRank0(ctx *context, into cube.ChunkMap) {
	if ctx.arity > cube.MaxArity {
		panic(fmt.Sprintf("engine: arity %d exceeds maximum of %d", ctx.arity, cube.MaxArity))
	}
	if into.Len() != 0 {
		panic("engine: buildRank0 requires an empty destination map")
	}

	chunk := into.InsertOrGet(0, ctx.arity)
	limit := uint64(1) << ctx.arity
	for v := uint64(0); v < limit; v++ {
		if ctx.sample(uint32(v)) {
			chunk.Set(uint32(v))
		}
	}

	if !chunk.IsAny() {
		into.Remove(0)
	}
}
