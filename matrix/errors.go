// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented convention; no test checks the order):
// nil -> shape/index -> dimension mismatch -> non-square -> singular.

var (
	// ErrBadShape is returned when requested shape is invalid (r<0 or c<0, or
	// a shape too large for a single backing block); zero dimensions are allowed.
	// Algorithms must validate allocation before touching storage.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or bit-range) is outside valid bounds.
	// WriteBit/FlipBit return this rather than panic; ReadBit has no error
	// result and returns 0 for an out-of-range index.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOffsetRequired indicates that an operation's fast path requires a
	// zero column offset (no window with non-zero offset) and the caller did
	// not satisfy that precondition.
	ErrOffsetRequired = errors.New("matrix: operation requires zero column offset")

	// ErrBitRangeTooWide indicates a bit-range request of n outside 1..64.
	ErrBitRangeTooWide = errors.New("matrix: bit range must satisfy 1 <= n <= 64")

	// ErrSingular is returned when echelonization reveals a matrix has no
	// full-rank inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBadK indicates an invalid Method-of-Four-Russians block size k
	// (must satisfy 1 <= k <= MaxKay).
	ErrBadK = errors.New("matrix: invalid M4R block size k")

	// ErrAliasedOperands indicates that an operation documented as requiring
	// non-aliasing storage was called with overlapping input/output matrices.
	ErrAliasedOperands = errors.New("matrix: operands must not alias output")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
