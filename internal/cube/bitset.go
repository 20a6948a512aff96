// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cube provides the fixed-capacity bitsets, sub-mask and
// fixed-popcount mask iterators, and chunk map that the engine package
// builds its rank-by-rank enumeration on top of.
//
// Bitset wraps github.com/bits-and-blooms/bitset, the same dense bitset
// used elsewhere for iterative dataflow fixpoints, here indexed by full
// vertex value v rather than by variable or definition index.
package cube

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// MaxArity is the largest arity the engine will accept: a hypercube of
// 2^32 vertices does not fit in a *bitset.BitSet addressed by a uint32,
// so the ceiling is set one below that.
const MaxArity = 31

// Bitset is a dense, fixed-capacity set of vertices 0..2^n-1.
type Bitset struct {
	bits *bitset.BitSet
	n    uint32
}

// NewBitset returns an empty Bitset over 2^n vertices. It panics if n
// exceeds MaxArity.
func NewBitset(n uint32) *Bitset {
	if n > MaxArity {
		panic(fmt.Sprintf("cube: arity %d exceeds maximum of %d", n, MaxArity))
	}
	return &Bitset{bits: bitset.New(uint(1) << n), n: n}
}

// Set marks vertex v as a member. It panics if v is out of range for
// this Bitset's arity.
func (b *Bitset) Set(v uint32) {
	b.checkRange(v)
	b.bits.Set(uint(v))
}

// Is reports whether vertex v is a member. It panics if v is out of
// range for this Bitset's arity.
func (b *Bitset) Is(v uint32) bool {
	b.checkRange(v)
	return b.bits.Test(uint(v))
}

// IsAny reports whether the set has any member at all.
func (b *Bitset) IsAny() bool {
	return b.bits.Any()
}

// Count returns the number of members.
func (b *Bitset) Count() uint {
	return b.bits.Count()
}

func (b *Bitset) checkRange(v uint32) {
	if b.n < 32 && v>>b.n != 0 {
		panic(fmt.Sprintf("cube: vertex %#x out of range for arity %d", v, b.n))
	}
}
