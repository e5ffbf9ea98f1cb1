// SPDX-License-Identifier: MIT
// Package matrix provides core linear algebra primitives for array-based computations.
// Matrix is a concrete, word-packed implementation of dense GF(2) storage:
// each row is a run of uint64 words, one bit per column, so a 64-column
// row XOR/AND reduces to a single machine-word operation (component B).
package matrix

import (
	"fmt"
	"strings"
)

// maxBlockWords bounds how many words a single backing allocation may
// span before a Matrix would need to fan out across multiple blocks
// (spec's MAX_BLOCKSIZE design constant). See DESIGN.md for why the
// multi-block path is out of scope here: no matrix exercised by this
// module's algorithms or tests approaches 2^27 words (1 GiB) per row
// block, so Matrix always allocates a single contiguous []uint64.
const maxBlockWords = 1 << 27

// matrixErrorf wraps an underlying error with Matrix method context.
// Example message shape: "Matrix.WriteBit(3,7): matrix: index out of range".
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense, row-major matrix over GF(2), packed 64 bits per word.
//
// nrows, ncols are the logical dimensions. offset is the column offset of
// logical column 0 within the first word of each row (non-zero only for
// windows with a misaligned start column). width is the number of words
// spanned by one logical row. rowstride is the number of words between
// the starts of consecutive rows in block; it is padded to avoid
// cache-stride pathologies (see newRowStride). rows[i] is the starting
// word index of row i within block, cached at construction time.
//
// block is the backing storage. A window shares its parent's block slice
// directly — a Go slice is already a borrowed view (pointer+len+cap into
// shared storage) so no extra indirection is needed to implement the
// "windows borrow, owners free" invariant from spec.md §3; ownsBlock only
// matters for matrices built by Stack/Concat, which allocate their own
// fresh block rather than aliasing a parent's.
type Matrix struct {
	nrows, ncols int
	offset       int
	width        int
	rowstride    int
	rows         []int
	block        []uint64
	ownsBlock    bool

	lowBitmask  uint64
	highBitmask uint64
}

// newRowStride applies the anti-pathology padding rule from spec.md §3:
// if width >= 3 and width is odd, pad by one word.
func newRowStride(width int) int {
	if width >= 3 && width%2 == 1 {
		return width + 1
	}
	return width
}

// computeMasks derives low_bitmask/high_bitmask for the given offset and
// ncols, per spec.md §3's definitions.
func computeMasks(offset, ncols int) (low, high uint64) {
	low = rightMask(radix - offset)
	high = leftMask((offset + ncols) % radix)
	return low, high
}

// NewMatrix allocates an nrows x ncols zero matrix.
// Stage 1 (Validate): nrows, ncols must be non-negative.
// Stage 2 (Prepare): compute width/rowstride/masks.
// Stage 3 (Execute): allocate a single contiguous backing block.
// Stage 4 (Finalize): cache per-row word offsets and return.
// Complexity: O(nrows*width) time and memory.
func NewMatrix(nrows, ncols int) (*Matrix, error) {
	if nrows < 0 || ncols < 0 {
		return nil, ErrBadShape
	}
	width := (ncols + radix - 1) / radix
	if width == 0 {
		width = 1 // degenerate 0-column matrices still own one word per row
	}
	rowstride := newRowStride(width)
	if nrows*rowstride > maxBlockWords {
		return nil, fmt.Errorf("matrix: %dx%d exceeds single-block capacity: %w", nrows, ncols, ErrBadShape)
	}

	low, high := computeMasks(0, ncols)
	m := &Matrix{
		nrows:       nrows,
		ncols:       ncols,
		offset:      0,
		width:       width,
		rowstride:   rowstride,
		block:       make([]uint64, nrows*rowstride),
		ownsBlock:   true,
		lowBitmask:  low,
		highBitmask: high,
	}
	m.cacheRows(0)

	return m, nil
}

// cacheRows (re)builds the rows[] cache: rows[i] = base + i*rowstride.
// Kept as an explicit cache (the denormalization spec.md §9 calls out)
// because every row primitive in rowbits.go reads it on the hot path.
func (m *Matrix) cacheRows(base int) {
	m.rows = make([]int, m.nrows)
	for i := 0; i < m.nrows; i++ {
		m.rows[i] = base + i*m.rowstride
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.nrows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.ncols }

// Offset returns the column offset of logical column 0 within the first word of each row.
// Zero for any matrix that is not a window with a misaligned start column.
func (m *Matrix) Offset() int { return m.offset }

// Width returns the number of words spanned by a logical row.
func (m *Matrix) Width() int { return m.width }

// IsWindow reports whether m borrows another matrix's backing storage.
func (m *Matrix) IsWindow() bool { return !m.ownsBlock }

// Window returns a sub-matrix view over m covering rows [rlo, rhi) and
// columns [clo, chi). The window borrows m's backing storage (spec.md §3,
// §9): writes through the window are observable in m and vice versa.
// m must outlive the window.
// Stage 1 (Validate): range bounds.
// Stage 2 (Execute): recompute offset/width/masks/rows relative to m.
// Complexity: O(rhi-rlo) for the rows cache.
func (m *Matrix) Window(rlo, clo, rhi, chi int) (*Matrix, error) {
	if rlo < 0 || clo < 0 || rhi > m.nrows || chi > m.ncols || rlo > rhi || clo > chi {
		return nil, fmt.Errorf("matrix: Window(%d,%d,%d,%d): %w", rlo, clo, rhi, chi, ErrOutOfRange)
	}
	nrows := rhi - rlo
	ncols := chi - clo

	absCol := m.offset + clo
	wordIdx := absCol / radix
	offset := absCol % radix
	width := (offset + ncols + radix - 1) / radix
	if width == 0 {
		width = 1
	}
	low, high := computeMasks(offset, ncols)

	w := &Matrix{
		nrows:       nrows,
		ncols:       ncols,
		offset:      offset,
		width:       width,
		rowstride:   m.rowstride,
		block:       m.block,
		ownsBlock:   false,
		lowBitmask:  low,
		highBitmask: high,
	}
	w.rows = make([]int, nrows)
	for i := 0; i < nrows; i++ {
		w.rows[i] = m.rows[rlo+i] + wordIdx
	}

	return w, nil
}

// Clone returns a deep, non-aliasing copy of m: same logical contents,
// offset 0, densely packed. Complexity: O(nrows*width).
func (m *Matrix) Clone() *Matrix {
	out, _ := NewMatrix(m.nrows, m.ncols) // shape is always valid: m already exists
	for i := 0; i < m.nrows; i++ {
		// CopyRow realigns rows of a window with a non-zero offset; shapes
		// and row indices match by construction, so it cannot fail here.
		_ = CopyRow(out, i, m, i)
	}

	return out
}

// readWordAt reads the word at absolute block index idx, masking the
// first/last word of the row (wordInRow identifies which) against m's
// offset so that don't-care bits never leak into a cloned matrix.
func readWordAt(m *Matrix, idx, wordInRow int) uint64 {
	v := m.block[idx]
	if wordInRow == 0 {
		v &= m.lowBitmask
	}
	if wordInRow == m.width-1 {
		v &= m.highBitmask
	}
	return v
}

// String renders m as one line per row, '1'/'0' per column, for debugging.
// Complexity: O(nrows*ncols).
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.nrows; i++ {
		for j := 0; j < m.ncols; j++ {
			if m.ReadBit(i, j) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
