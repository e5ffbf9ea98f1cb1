// Package ops provides advanced matrix operations built purely on the
// gf2m/matrix package's public API.
// Inverse computes the inverse of a square GF(2) matrix by echelonizing
// the augmented matrix [A | I] to reduced row echelon form and slicing
// off the right half, the GF(2) analogue of the teacher's LU-based
// inversion (Doolittle LU + forward/backward substitution has no
// meaningful GF(2) counterpart since there is no division beyond
// multiplying by 1).
package ops

import (
	"fmt"

	"github.com/katalvlaran/gf2m/matrix"
)

// Inverse returns the inverse of the square matrix m, or ErrSingular
// (matrix.ErrSingular) if m is not full rank.
// Blueprint:
//
//	Stage 1 (Validate): m must be square.
//	Stage 2 (Augment): build [A | I], n x 2n.
//	Stage 3 (Echelonize): reduce to RREF (full == true).
//	Stage 4 (Check rank): rank < n means singular.
//	Stage 5 (Slice): the right half of the augmented matrix is A^-1.
//
// Complexity: O(n^3 / log n) word operations (Echelonize's cost).
func Inverse(m *matrix.Matrix) (*matrix.Matrix, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", n, m.Cols(), matrix.ErrNonSquare)
	}

	aug, err := matrix.NewMatrix(n, 2*n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.ReadBit(i, j) != 0 {
				_ = aug.WriteBit(i, j, 1)
			}
		}
		_ = aug.WriteBit(i, n+i, 1)
	}

	// echelonizeCols, not Echelonize, because pivot search must stay within
	// the A half (columns [0, n)): the appended identity half always has
	// full row rank on its own, so letting it compete for pivot columns
	// would report rank == n even when A itself is singular.
	rank, err := echelonizeCols(aug, true, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	if rank < n {
		return nil, fmt.Errorf("Inverse: rank %d < %d: %w", rank, n, matrix.ErrSingular)
	}

	inv, err := matrix.NewMatrix(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if aug.ReadBit(i, n+j) != 0 {
				_ = inv.WriteBit(i, j, 1)
			}
		}
	}

	return inv, nil
}
