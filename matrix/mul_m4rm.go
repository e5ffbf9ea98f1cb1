// SPDX-License-Identifier: MIT
// Package matrix: Method of Four Russians multiplication (component F).
//
// Precomputes, for each block of k consecutive rows of the right operand,
// all 2^k linear combinations of those rows in Gray-code order (so each
// table entry costs one row XOR instead of up to k), then for every row of
// the left operand looks up the right combination by its k-bit column
// chunk and XORs it into the output row. Grounded on spec.md §4's M4RM
// description and the Gray-code table construction in gray.go/grayflex.c.

package matrix

// MulM4RM computes m * other using the Method of Four Russians, with
// block size k (1 <= k <= MaxKay). A caller unsure of a good k should use
// optK(m.ncols, other.ncols) (see gray.go).
// Complexity: O(nrows*ncols*other.ncols / (k*radix)) word operations,
// amortizing the table build's O(2^k) cost across nrows row lookups.
func (m *Matrix) MulM4RM(other *Matrix, k int) (*Matrix, error) {
	if m.ncols != other.nrows {
		return nil, ErrDimensionMismatch
	}
	if k < 1 || k > MaxKay {
		return nil, ErrBadK
	}
	out, err := NewMatrix(m.nrows, other.ncols)
	if err != nil {
		return nil, err
	}

	for blockStart := 0; blockStart < m.ncols; blockStart += k {
		blockLen := k
		if blockStart+blockLen > m.ncols {
			blockLen = m.ncols - blockStart
		}

		table, err := buildCombinationTable(other, blockStart, blockLen)
		if err != nil {
			return nil, err
		}

		for i := 0; i < m.nrows; i++ {
			v, err := m.ReadBits(i, blockStart, blockLen)
			if err != nil {
				return nil, err
			}
			if err := Combine(out, i, table, int(v)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// BuildCombinationTable exposes buildCombinationTable to the rest of this
// module (matrix/ops' M4RI echelonization consumes it the same way MulM4RM
// does here) so the Gray-code table machinery in gray.go has exactly one
// construction site.
func BuildCombinationTable(other *Matrix, rowStart, rowLen int) (*Matrix, error) {
	return buildCombinationTable(other, rowStart, rowLen)
}

// buildCombinationTable returns a matrix of 2^blockLen rows, row v holding
// the XOR of other's rows [blockStart, blockStart+blockLen) selected by
// the bits of v (bit 0 of v selects row blockStart). Built by walking the
// blockLen-bit Gray-code sequence so each successive entry costs one row
// XOR rather than a fresh sum from scratch.
func buildCombinationTable(other *Matrix, blockStart, blockLen int) (*Matrix, error) {
	gt := tableFor(blockLen)
	size := 1 << uint(blockLen)

	table, err := NewMatrix(size, other.ncols)
	if err != nil {
		return nil, err
	}
	// table[gt.ord[0]] == table[0] is already the zero row.
	for i := 1; i < size; i++ {
		prev, cur := gt.ord[i-1], gt.ord[i]
		bitIdx := gt.inc[i-1]
		if err := CopyRow(table, cur, table, prev); err != nil {
			return nil, err
		}
		if err := Combine(table, cur, other, blockStart+bitIdx); err != nil {
			return nil, err
		}
	}

	return table, nil
}
