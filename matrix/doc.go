// Package matrix provides dense linear algebra over GF(2): matrices
// packed 64 bits per word, word-level and row-level bit primitives,
// Gray-code tables for the Method of Four Russians, naive/M4RM/
// Strassen-Winograd multiplication, and a cache-oblivious transpose.
//
// The matrix package provides:
//
//   - Matrix, a row-major bit-packed matrix with zero-copy Window views.
//   - Word- and row-level primitives (ReadBit/WriteBit/ReadBits/XorBits/
//     AndBits/ClearBits/RowSwap/RowXorFrom/ColSwapInRows/Combine).
//   - Three multiplication strategies (MulNaive, MulM4RM, MulStrassen)
//     sharing one set of correctness invariants.
//   - Transpose via recursive cache-oblivious quadrant splitting down to
//     a 64x64 bit-butterfly base case.
//
// Echelonization (Gaussian elimination via the Method of Four Russians)
// and matrix inversion are built purely on this package's public API and
// live in the sibling ops package, mirroring the split between core
// kernels and derived algorithms.
//
// See the package's tests for usage patterns.
package matrix
