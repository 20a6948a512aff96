// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "testing"

func TestBitsetSetIsAnyCount(t *testing.T) {
	b := NewBitset(4)
	if b.IsAny() {
		t.Fatal("fresh bitset should not report IsAny")
	}
	if b.Count() != 0 {
		t.Fatalf("fresh bitset Count() = %d, want 0", b.Count())
	}

	b.Set(3)
	b.Set(9)
	if !b.IsAny() {
		t.Fatal("bitset with members should report IsAny")
	}
	if b.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", b.Count())
	}
	if !b.Is(3) || !b.Is(9) {
		t.Fatal("expected bits 3 and 9 to be set")
	}
	if b.Is(0) || b.Is(15) {
		t.Fatal("expected unset bits to read false")
	}
}

func TestBitsetSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Set to panic for an out-of-range vertex")
		}
	}()
	b := NewBitset(3)
	b.Set(8)
}

func TestBitsetIsOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Is to panic for an out-of-range vertex")
		}
	}()
	b := NewBitset(3)
	b.Is(100)
}

func TestNewBitsetRejectsExcessiveArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewBitset(32) to panic")
		}
	}()
	NewBitset(32)
}

func TestBitsetArityZero(t *testing.T) {
	b := NewBitset(0)
	if b.IsAny() {
		t.Fatal("fresh arity-0 bitset should not report IsAny")
	}
	b.Set(0)
	if !b.Is(0) {
		t.Fatal("expected bit 0 to be set")
	}
	if b.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", b.Count())
	}
}
