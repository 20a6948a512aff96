// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// ChunkMap maps a don't-care mask to the Bitset of fixed patterns that
// are implicants under that mask. The engine's builders remove a chunk
// as soon as it ends up all-zero; the map itself does not, so a chunk
// created by InsertOrGet and left empty is still counted by Len() and
// seen by range.
type ChunkMap map[uint32]*Bitset

// NewChunkMap returns an empty ChunkMap.
func NewChunkMap() ChunkMap {
	return make(ChunkMap)
}

// InsertOrGet returns the chunk at mask m, creating an empty one sized
// for the given arity if it does not already exist.
func (c ChunkMap) InsertOrGet(m uint32, arity uint32) *Bitset {
	chunk, ok := c[m]
	if !ok {
		chunk = NewBitset(arity)
		c[m] = chunk
	}
	return chunk
}

// Get returns the chunk at mask m, if any.
func (c ChunkMap) Get(m uint32) (*Bitset, bool) {
	chunk, ok := c[m]
	return chunk, ok
}

// Remove deletes the chunk at mask m, if any.
func (c ChunkMap) Remove(m uint32) {
	delete(c, m)
}

// Len returns the number of chunks in the map, empty or not.
func (c ChunkMap) Len() int {
	return len(c)
}

// Clear empties the map in place, retaining its backing allocation so
// the Generate driver can ping-pong the same two maps across every
// rank without reallocating.
func (c ChunkMap) Clear() {
	for m := range c {
		delete(c, m)
	}
}
