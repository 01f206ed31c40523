// Copyright 2021 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bitmap provides the implementation of bitmap.
//
// Bit i records whether slot i of an arena is occupied. Scans for the
// next or previous set bit skip 64 slots per word.
package bitmap

import (
	"math/bits"
)

// Bitmap implements an efficient bitmap.
//
// The zero value for Bitmap is an empty bitmap ready to use; it grows on
// Add.
type Bitmap struct {
	// numOnes is the number of ones in the bitmap.
	numOnes int

	// bitBlock holds the bits. The type of bitBlock is uint64 which means
	// each number in bitBlock contains 64 entries.
	bitBlock []uint64
}

// New create a new empty Bitmap with room for size bits.
func New(size int) Bitmap {
	return Bitmap{bitBlock: make([]uint64, (size+63)/64)}
}

// Size returns the total number of bits in the bitmap.
func (b *Bitmap) Size() int {
	return len(b.bitBlock) * 64
}

// Count returns the number of ones in the Bitmap.
func (b *Bitmap) Count() int {
	return b.numOnes
}

// Grow ensures the bitmap has room for at least size bits.
func (b *Bitmap) Grow(size int) {
	if need := (size + 63) / 64; need > len(b.bitBlock) {
		b.bitBlock = append(b.bitBlock, make([]uint64, need-len(b.bitBlock))...)
	}
}

// Reset clears every bit, keeping the storage.
func (b *Bitmap) Reset() {
	clear(b.bitBlock)
	b.numOnes = 0
}

// Contains returns true iff bit i is set.
func (b *Bitmap) Contains(i int) bool {
	blockNum := i / 64
	if i < 0 || blockNum >= len(b.bitBlock) {
		return false
	}
	return b.bitBlock[blockNum]&(uint64(1)<<(i%64)) != 0
}

// Add sets bit i, growing the bitmap if needed.
func (b *Bitmap) Add(i int) {
	blockNum, mask := i/64, uint64(1)<<(i%64)
	// if blockNum is out of range, extend b.bitBlock
	if x, y := blockNum, len(b.bitBlock); x >= y {
		b.bitBlock = append(b.bitBlock, make([]uint64, x-y+1)...)
	}
	oldBlock := b.bitBlock[blockNum]
	newBlock := oldBlock | mask
	if oldBlock != newBlock {
		b.bitBlock[blockNum] = newBlock
		b.numOnes++
	}
}

// Remove clears bit i.
func (b *Bitmap) Remove(i int) {
	blockNum, mask := i/64, uint64(1)<<(i%64)
	if blockNum >= len(b.bitBlock) {
		return
	}
	oldBlock := b.bitBlock[blockNum]
	newBlock := oldBlock &^ mask
	if oldBlock != newBlock {
		b.bitBlock[blockNum] = newBlock
		b.numOnes--
	}
}

// FirstOne returns the first set bit in the range [start, ).
func (b *Bitmap) FirstOne(start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	i, nbit := start/64, uint(start%64)
	n := len(b.bitBlock)
	if i >= n {
		return 0, false
	}
	w := b.bitBlock[i] & (^uint64(0) << nbit)
	for {
		if w != 0 {
			return bits.TrailingZeros64(w) + i*64, true
		}
		i++
		if i == n {
			return 0, false
		}
		w = b.bitBlock[i]
	}
}

// LastOne returns the last set bit in the range [0, end).
func (b *Bitmap) LastOne(end int) (int, bool) {
	if end > b.Size() {
		end = b.Size()
	}
	if end <= 0 {
		return 0, false
	}
	last := end - 1
	i, nbit := last/64, uint(last%64)
	// Keep bits [0, nbit] of the first block inspected.
	w := b.bitBlock[i] & (^uint64(0) >> (63 - nbit))
	for {
		if w != 0 {
			return i*64 + 63 - bits.LeadingZeros64(w), true
		}
		i--
		if i < 0 {
			return 0, false
		}
		w = b.bitBlock[i]
	}
}

// Minimum returns the smallest set bit, or false if the bitmap is empty.
func (b *Bitmap) Minimum() (int, bool) {
	return b.FirstOne(0)
}

// Maximum returns the largest set bit, or false if the bitmap is empty.
func (b *Bitmap) Maximum() (int, bool) {
	return b.LastOne(b.Size())
}
