// SPDX-License-Identifier: MIT
// Package matrix: cache-oblivious transpose (component E).
//
// The base case, transposeWords64, is the classic in-place 64x64 bit-matrix
// transpose butterfly network (the whole-block generalization of the
// single-word bit-reversal butterfly in word.go's reverseWord, built from
// the same doubling-mask ladder). Matrices larger than one 64x64 block are
// transposed by recursive quadrant splitting so the working set at any
// recursion depth stays cache-resident regardless of the matrix's overall
// size — the cache-oblivious property spec.md §4.6 asks for.

package matrix

// transposeBase is the side length, in words/rows, of the butterfly base case.
const transposeBase = 64

// transposeWords64 transposes a 64x64 bit matrix given as 64 words (row i
// is bit j of a[i] for column j), in place. Standard doubling-stride
// butterfly: at each stride j, swap the j-bit block straddling rows k and
// k+j for every aligned k.
func transposeWords64(a *[64]uint64) {
	var m uint64 = 0x00000000FFFFFFFF
	for j := uint(32); j != 0; j >>= 1 {
		for k := uint(0); k < 64; k = (k + j + 1) &^ j {
			t := (a[k] ^ (a[k+j] >> j)) & m
			a[k] ^= t
			a[k+j] ^= t << j
		}
		m ^= m << j
	}
}

// Transpose returns a new Matrix equal to m's transpose. Recursive
// divide-and-conquer down to 64x64 blocks, each transposed in place by
// transposeWords64 and written into the swapped (column-major) quadrant
// of the destination.
// Complexity: O(nrows*ncols/64) words touched, same asymptotic work as the
// naive approach but with far better cache behavior on large matrices.
func (m *Matrix) Transpose() *Matrix {
	out, _ := NewMatrix(m.ncols, m.nrows) // shape always valid: m already exists
	transposeBlock(out, m, 0, 0, m.nrows, m.ncols)

	return out
}

// transposeBlock writes the transpose of m's [rowLo,rowHi) x [colLo,colHi)
// block into out (whose rows/cols are already swapped relative to m).
func transposeBlock(out, m *Matrix, rowLo, colLo, rowHi, colHi int) {
	nr, nc := rowHi-rowLo, colHi-colLo
	if nr <= transposeBase && nc <= transposeBase {
		transposeSmallBlock(out, m, rowLo, colLo, rowHi, colHi)
		return
	}

	if nr >= nc {
		mid := rowLo + nr/2
		transposeBlock(out, m, rowLo, colLo, mid, colHi)
		transposeBlock(out, m, mid, colLo, rowHi, colHi)
	} else {
		mid := colLo + nc/2
		transposeBlock(out, m, rowLo, colLo, rowHi, mid)
		transposeBlock(out, m, rowLo, mid, rowHi, colHi)
	}
}

// transposeSmallBlock handles a block no larger than 64x64: pack it into
// 64 words (padding unused rows/cols with zero), run the butterfly, and
// scatter the result into out.
func transposeSmallBlock(out, m *Matrix, rowLo, colLo, rowHi, colHi int) {
	var a [64]uint64
	for i := rowLo; i < rowHi; i++ {
		var word uint64
		for j := colLo; j < colHi; j++ {
			if m.ReadBit(i, j) != 0 {
				word = setBit(word, j-colLo)
			}
		}
		a[i-rowLo] = word
	}

	transposeWords64(&a)

	for j := colLo; j < colHi; j++ {
		word := a[j-colLo]
		for i := rowLo; i < rowHi; i++ {
			if getBit(word, i-rowLo) != 0 {
				_ = out.WriteBit(j, i, 1)
			}
		}
	}
}
