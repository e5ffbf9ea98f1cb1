// Package ops provides advanced matrix operations built purely on the
// gf2m/matrix package's public API.
package ops

import (
	"fmt"

	"github.com/katalvlaran/gf2m/matrix"
)

// maxBlockK caps the number of pivots batched into one Gray-code table per
// block; spec.md §4.3's optK formula picks a smaller k for small matrices,
// but a block never needs to exceed this practical ceiling.
const maxBlockK = 8

// Echelonize reduces m to row echelon form in place using the Method of
// Four Russians over GF(2) (M4RI), returning the rank. With full == true
// the result is reduced row echelon form (pivots cleared above as well as
// below); with full == false only below-pivot entries are cleared.
//
// State machine, grounded in spec.md's M4RI description and the teacher's
// staged LU decomposition (Stage N comments):
//
//	searching_for_pivot -> compacting_k_block -> building_table ->
//	eliminating -> advancing -> done
//
// Complexity: O(n^3 / log n) word operations via the Gray-code table
// amortization: each block pays O(2^k') row-combines to build its table,
// then every other row - both below and (when full) above the block - is
// cleared with one table lookup + row-combine instead of up to k'
// separate row-combines.
func Echelonize(m *matrix.Matrix, full bool) (int, error) {
	return echelonizeCols(m, full, m.Cols())
}

// echelonizeCols is Echelonize restricted to searching for pivots in columns
// [0, pivotLimit) only; elimination still clears every column of m, but a row
// whose first nonzero entry falls at or past pivotLimit is never accepted as
// a pivot. Inverse uses this directly (pivotLimit == m.Rows()'s n) so that
// the augmented identity half, which always carries full row rank, can never
// masquerade as rank in the A half being tested for singularity.
func echelonizeCols(m *matrix.Matrix, full bool, pivotLimit int) (int, error) {
	nrows, ncols := m.Rows(), m.Cols()
	rank := 0
	col := 0

	for col < pivotLimit && rank < nrows {
		// Stage: searching_for_pivot. Assemble a block of up to maxBlockK
		// pivot rows, one per independent column starting at col. A
		// candidate row is accepted only after being cleaned against the
		// pivots already placed in this block (so a row that merely
		// coincides with an existing combination at probeCol, rather than
		// being genuinely independent, is rejected and the search moves to
		// the next row). This never touches rows outside the search for a
		// replacement candidate, so below-pivot elimination stays entirely
		// the table's job in the eliminating stage below.
		var pivotRows, pivotCols []int
		probeCol := col
		for len(pivotRows) < maxBlockK && probeCol < pivotLimit {
			searchFrom := rank + len(pivotRows)
			for r := searchFrom; r < nrows; r++ {
				for j, pc := range pivotCols {
					if m.ReadBit(r, pc) != 0 {
						if err := matrix.Combine(m, r, m, pivotRows[j]); err != nil {
							return rank, fmt.Errorf("Echelonize: %w", err)
						}
					}
				}
				if m.ReadBit(r, probeCol) == 0 {
					continue // no bit at probeCol once cleaned; try the next row
				}
				if r != searchFrom {
					if err := m.RowSwap(searchFrom, r); err != nil {
						return rank, fmt.Errorf("Echelonize: %w", err)
					}
				}
				pivotRows = append(pivotRows, searchFrom)
				pivotCols = append(pivotCols, probeCol)
				break
			}
			probeCol++
		}
		if len(pivotRows) == 0 {
			break // no pivot anywhere in the remaining columns: done.
		}

		// Stage: compacting_k_block. Each pivot row already has a 0 at
		// every earlier pivot column (the search above rejects rows that
		// don't, after cleaning). A backward pass (last pivot to first)
		// clears the remaining direction - row i's bit at a later pivot
		// column j>i - so the block's k'xk' pivot submatrix becomes the
		// literal identity, which the table lookup below depends on.
		for p := len(pivotRows) - 1; p >= 0; p-- {
			for i := 0; i < p; i++ {
				if m.ReadBit(pivotRows[i], pivotCols[p]) != 0 {
					if err := matrix.Combine(m, pivotRows[i], m, pivotRows[p]); err != nil {
						return rank, fmt.Errorf("Echelonize: %w", err)
					}
				}
			}
		}

		// Stage: building_table. Build the 2^k' combination table over the
		// k' pivot rows' full rows (component D consumed by component H,
		// per spec.md §4.4 steps 3-4): table[x] is the XOR of every pivot
		// row whose bit is set in x.
		block, err := m.Window(pivotRows[0], 0, pivotRows[0]+len(pivotRows), ncols)
		if err != nil {
			return rank, fmt.Errorf("Echelonize: %w", err)
		}
		table, err := matrix.BuildCombinationTable(block, 0, len(pivotRows))
		if err != nil {
			return rank, fmt.Errorf("Echelonize: %w", err)
		}

		// Stage: eliminating. For every other row in scope, look up its k'
		// pivot-column bits as one key and XOR the matching table row into
		// it - O(1) amortized per row instead of up to k' row-combines.
		lo := pivotRows[0] + len(pivotRows)
		if full {
			lo = 0
		}
		for r := lo; r < nrows; r++ {
			if r >= pivotRows[0] && r < pivotRows[0]+len(pivotRows) {
				continue
			}
			x := 0
			for i, pc := range pivotCols {
				if m.ReadBit(r, pc) != 0 {
					x |= 1 << uint(i)
				}
			}
			if x == 0 {
				continue
			}
			if err := matrix.Combine(m, r, table, x); err != nil {
				return rank, fmt.Errorf("Echelonize: %w", err)
			}
		}

		// Stage: advancing.
		rank += len(pivotRows)
		col = probeCol
	}

	// Stage: done.
	return rank, nil
}
