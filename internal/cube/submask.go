// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "iter"

// Submasks yields every submask of mask, from 0 up to and including
// mask itself, in strictly increasing order. This is the classic
// "subset enumeration" bit trick: submask = (submask - mask) & mask
// visits the 2^popcount(mask) submasks of mask without ever touching a
// bit outside it.
//
// Grounded on the sub-mask iteration the original rank builders use to
// walk every way of fixing the free coordinates of a cube; expressed
// here as a range-over-func iterator in the shape of
// gaissmai-bart/internal/bitset's All() iter.Seq[uint].
func Submasks(mask uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		submask := uint32(0)
		for {
			if !yield(submask) {
				return
			}
			if submask == mask {
				return
			}
			submask = (submask - mask) & mask
		}
	}
}

// MasksOfPopcount yields every mask in [0, 2^arity) with exactly k bits
// set, in strictly increasing order, using Gosper's hack to step from
// one fixed-popcount value to the next.
func MasksOfPopcount(arity uint32, k uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if k > arity {
			return
		}
		if k == 0 {
			yield(0)
			return
		}

		limit := uint64(1) << arity
		m := uint64(1)<<k - 1
		for m < limit {
			if !yield(uint32(m)) {
				return
			}
			c := m & -m
			r := m + c
			m = (((r ^ m) >> 2) / c) | r
		}
	}
}
