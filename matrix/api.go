// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication - each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Facades check their operands for nil; all other validation is
//     performed in the kernels they forward to.
//
// AI-Hints:
//   - Use NewZeros/NewIdentity to build matrices with explicit shape.
//   - Product defaults to the naive kernel; call MulM4RM/MulStrassen
//     directly for the amortized/recursive strategies.

package matrix

const (
	opNewZeros     = "NewZeros"
	opNewIdentity  = "NewIdentity"
	opIdentityLike = "IdentityLike"
	opZerosLike    = "ZerosLike"
)

// ---------- Constructors & Utilities ----------

// NewZeros allocates an r×c zero matrix over GF(2).
// Implementation:
//   - Stage 1: Delegate allocation to NewMatrix.
//
// Inputs:
//   - rows, cols: shape (>= 0).
//
// Returns:
//   - *Matrix: zero matrix.
//
// Errors:
//   - ErrBadShape: on negative dimensions.
//
// Complexity:
//   - Time O(rows*cols/64), Space O(rows*cols/64).
func NewZeros(rows, cols int) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, opErrorf(opNewZeros, err)
	}

	return m, nil
}

// NewIdentity allocates an n×n identity matrix (ones on the diagonal).
// Implementation:
//   - Stage 1: Delegate to NewIdentityMatrix, which allocates n×n and
//     sets the diagonal bits to 1.
//
// Complexity:
//   - Time O(n^2/64), Space O(n^2/64).
func NewIdentity(n int) (*Matrix, error) {
	m, err := NewIdentityMatrix(n)
	if err != nil {
		return nil, opErrorf(opNewIdentity, err)
	}

	return m, nil
}

// CloneMatrix returns a deep, non-aliasing copy of m.
func CloneMatrix(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ZerosLike allocates a zero matrix with the same shape as m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opZerosLike, err)
	}
	z, err := NewMatrix(m.nrows, m.ncols)
	if err != nil {
		return nil, opErrorf(opZerosLike, err)
	}

	return z, nil
}

// IdentityLike allocates an identity matrix matching m's row count
// (m need not be square; the identity is m.Rows() x m.Rows()).
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opIdentityLike, err)
	}
	id, err := NewIdentityMatrix(m.nrows)
	if err != nil {
		return nil, opErrorf(opIdentityLike, err)
	}

	return id, nil
}

// ---------- Linear-algebra aliases ----------

// Sum is an alias for Add, kept for discoverability alongside Product.
func Sum(a, b *Matrix) (*Matrix, error) {
	return Add(a, b)
}

// Product multiplies a by b using the naive O(n^3) kernel. Callers with
// large matrices should call MulM4RM or MulStrassen directly instead.
func Product(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf("Product", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf("Product", err)
	}

	return a.MulNaive(b)
}

// T is an alias for Transpose.
func T(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf("T", err)
	}

	return m.Transpose(), nil
}
