// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine is the programmatic entrypoint to the implicant
// enumeration engine: the rank-0 builder, the rank-(k→k+1) face-closure
// builder, the prime reporter, and the Generate driver that ping-pongs two
// chunk maps across ranks 0..n. It is a small, dependency-light package
// that other packages (exprlang, ffi, cmd/implicants) drive but never
// reach into.
package engine

import (
	"fmt"

	"github.com/benwiederhake/go-implicants/internal/cube"
)

// SampleFunc is the oracle callback: given a vertex v in [0, 2^arity), it
// reports whether the target function is 1 there. It must be total and
// pure on that range.
type SampleFunc func(v uint32) bool

// ReportFunc is the report callback, invoked once per discovered implicant
// with its don't-care mask, fixed pattern, and whether it is prime.
type ReportFunc func(m, f uint32, isPrime bool)

// context bundles the oracle, the report callback, and the arity for a
// single Generate invocation. It carries no state beyond what is fixed for
// the duration of the call.
type context struct {
	sample SampleFunc
	report ReportFunc
	arity  uint32
}

// Generate enumerates every implicant of sample over the n = arity
// dimensional Boolean hypercube, reporting each exactly once via report
// together with whether it is prime.
//
// Preconditions: arity must be <= cube.MaxArity (31); sample must be total
// and pure on [0, 2^arity). An arity above the bound is a contract
// violation and panics; an impure sample is not detected.
//
// Generate is single-threaded and synchronous: sample is invoked exactly
// 2^arity times, all during rank-0 construction, and never again. report
// may be invoked any number of times, in unspecified order, never
// re-entrantly with the engine's own state. Two concurrent Generate calls
// with independent callbacks do not interact; see the "-batch" mode of
// cmd/implicants for an exercised example.
func Generate(sample SampleFunc, report ReportFunc, arity uint32) {
	if arity > cube.MaxArity {
		panic(fmt.Sprintf("engine: arity %d exceeds maximum of %d", arity, cube.MaxArity))
	}

	ctx := &context{sample: sample, report: report, arity: arity}

	mapA := cube.NewChunkMap()
	mapB := cube.NewChunkMap()

	buildRank0(ctx, mapA)
	reportChunks(ctx, mapA)

	for rank := uint32(1); rank <= arity; rank++ {
		var from, into cube.ChunkMap
		if rank%2 == 1 {
			from, into = mapA, mapB
		} else {
			from, into = mapB, mapA
		}
		buildRankN(ctx, rank, into, from)
		from.Clear()
		reportChunks(ctx, into)
	}
}
