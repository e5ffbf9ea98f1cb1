// SPDX-License-Identifier: MIT
// Package matrix: Gray-code tables for the Method of Four Russians
// (component D). Grounded directly on grayflex.c from the upstream m4ri
// library: grayCode is m4ri_gray_code, buildCode is m4ri_build_code, and
// optK is m4ri_opt_k. Tables are built once, lazily, into a package-level
// codebook guarded by sync.Once (see lifecycle.go for teardown/rebuild).

package matrix

import "math/bits"

// MaxKay is the largest Method-of-Four-Russians block size a table is
// ever built for, matching the upstream library's practical ceiling.
const MaxKay = 16

// grayTable holds one k-bit Gray-code ordering: ord[i] is the Gray code of
// i, and inc[i] is the index of the single bit that changes going from
// ord[i] to ord[i+1] (wrapping at the end of the table).
type grayTable struct {
	k   int
	ord []int
	inc []int
}

// grayCode returns the reflected binary Gray code of number, using the
// low length bits. Ported from m4ri_gray_code: number ^ (number >> 1).
func grayCode(number, length int) int {
	mask := (1 << uint(length)) - 1

	return (number ^ (number >> 1)) & mask
}

// buildCode builds the Gray-code ordering and increment table for block
// size k: 2^k entries. Ported from m4ri_build_code. inc is filled by a
// decreasing-index loop that writes each slot exactly once, from the
// single bit that differs between consecutive ord entries.
func buildCode(k int) *grayTable {
	n := 1 << uint(k)
	t := &grayTable{k: k, ord: make([]int, n), inc: make([]int, n)}

	for i := 0; i < n; i++ {
		t.ord[i] = grayCode(i, k)
	}
	for i := n - 1; i > 0; i-- {
		diff := t.ord[i] ^ t.ord[i-1]
		bitIdx := bits.TrailingZeros(uint(diff))
		t.inc[i-1] = bitIdx
	}
	t.inc[n-1] = bits.TrailingZeros(uint(t.ord[n-1] ^ t.ord[0]))

	return t
}

// log2Floor returns floor(log2(n)) for n >= 1. Ported from the source's
// log2_floor bit trick; math/bits.Len is the idiomatic Go replacement
// (see DESIGN.md), kept as a tiny wrapper so optK reads like its source.
func log2Floor(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

// optK returns the heuristically optimal Method-of-Four-Russians block
// size for multiplying/eliminating matrices with the given dimensions.
// Ported from m4ri_opt_k: k = min(MaxKay, max(1, floor(0.75*(1+floor(log2(min(a,b))))))).
func optK(a, b int) int {
	m := a
	if b < m {
		m = b
	}
	if m < 1 {
		m = 1
	}
	k := int(0.75 * float64(1+log2Floor(m)))
	if k < 1 {
		k = 1
	}
	if k > MaxKay {
		k = MaxKay
	}

	return k
}
