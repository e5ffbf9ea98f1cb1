// SPDX-License-Identifier: MIT
// Package matrix: Strassen-Winograd recursive multiplication (component G).
//
// Seven sub-products per split instead of eight, combined with pure XOR
// since GF(2) addition and subtraction coincide. Per spec.md's Open
// Question resolution, MulStrassen never requires the caller to pad to a
// power-of-two shape: any odd row/column/shared-dimension border is
// peeled off and folded back in with a cheap naive multiply before (or
// after) recursing on the even core.

package matrix

// MulStrassen computes m * other via Strassen-Winograd recursion, falling
// back to MulNaive once any working dimension is <= cutoff. cutoff <= 0
// is treated as "always fall back" (equivalent to MulNaive).
func (m *Matrix) MulStrassen(other *Matrix, cutoff int) (*Matrix, error) {
	if m.ncols != other.nrows {
		return nil, ErrDimensionMismatch
	}
	if cutoff <= 0 {
		return m.MulNaive(other)
	}
	return strassenMul(m, other, cutoff)
}

func strassenMul(a, b *Matrix, cutoff int) (*Matrix, error) {
	n, inner, p := a.nrows, a.ncols, b.ncols
	if n <= cutoff || inner <= cutoff || p <= cutoff {
		return a.MulNaive(b)
	}

	if n%2 == 1 {
		return peelRow(a, b, cutoff)
	}
	if p%2 == 1 {
		return peelCol(a, b, cutoff)
	}
	if inner%2 == 1 {
		return peelInner(a, b, cutoff)
	}

	return strassenCore(a, b, cutoff)
}

// peelRow handles an odd row count by recursing on the even prefix and
// computing the last row's product with a, naive dot-product.
func peelRow(a, b *Matrix, cutoff int) (*Matrix, error) {
	n := a.nrows
	main, err := a.Window(0, 0, n-1, a.ncols)
	if err != nil {
		return nil, err
	}
	last, err := a.Window(n-1, 0, n, a.ncols)
	if err != nil {
		return nil, err
	}

	mainC, err := strassenMul(main, b, cutoff)
	if err != nil {
		return nil, err
	}
	lastC, err := last.MulNaive(b)
	if err != nil {
		return nil, err
	}

	out, err := NewMatrix(n, b.ncols)
	if err != nil {
		return nil, err
	}
	if err := embedBlock(out, mainC, 0, 0); err != nil {
		return nil, err
	}
	if err := embedBlock(out, lastC, n-1, 0); err != nil {
		return nil, err
	}

	return out, nil
}

// peelCol handles an odd column count symmetrically to peelRow.
func peelCol(a, b *Matrix, cutoff int) (*Matrix, error) {
	p := b.ncols
	main, err := b.Window(0, 0, b.nrows, p-1)
	if err != nil {
		return nil, err
	}
	last, err := b.Window(0, p-1, b.nrows, p)
	if err != nil {
		return nil, err
	}

	mainC, err := strassenMul(a, main, cutoff)
	if err != nil {
		return nil, err
	}
	lastC, err := a.MulNaive(last)
	if err != nil {
		return nil, err
	}

	out, err := NewMatrix(a.nrows, p)
	if err != nil {
		return nil, err
	}
	if err := embedBlock(out, mainC, 0, 0); err != nil {
		return nil, err
	}
	if err := embedBlock(out, lastC, 0, p-1); err != nil {
		return nil, err
	}

	return out, nil
}

// peelInner handles an odd shared dimension: the core product over the
// even prefix, XORed with the rank-1-shaped contribution of the last
// shared column of a against the last shared row of b.
func peelInner(a, b *Matrix, cutoff int) (*Matrix, error) {
	inner := a.ncols
	aCore, err := a.Window(0, 0, a.nrows, inner-1)
	if err != nil {
		return nil, err
	}
	bCore, err := b.Window(0, 0, inner-1, b.ncols)
	if err != nil {
		return nil, err
	}
	aExtra, err := a.Window(0, inner-1, a.nrows, inner)
	if err != nil {
		return nil, err
	}
	bExtra, err := b.Window(inner-1, 0, inner, b.ncols)
	if err != nil {
		return nil, err
	}

	core, err := strassenMul(aCore, bCore, cutoff)
	if err != nil {
		return nil, err
	}
	extra, err := aExtra.MulNaive(bExtra)
	if err != nil {
		return nil, err
	}

	return xorMatrices(core, extra)
}

// strassenCore runs Strassen's original seven-product schedule (ten block
// sums feeding the products, eight more forming the result quadrants) on
// matrices whose dimensions are all even (a.nrows, a.ncols == b.nrows,
// b.ncols all even). Winograd's 15-addition schedule is not used.
func strassenCore(a, b *Matrix, cutoff int) (*Matrix, error) {
	n2, m2, p2 := a.nrows/2, a.ncols/2, b.ncols/2

	a11, _ := a.Window(0, 0, n2, m2)
	a12, _ := a.Window(0, m2, n2, 2*m2)
	a21, _ := a.Window(n2, 0, 2*n2, m2)
	a22, _ := a.Window(n2, m2, 2*n2, 2*m2)

	b11, _ := b.Window(0, 0, m2, p2)
	b12, _ := b.Window(0, p2, m2, 2*p2)
	b21, _ := b.Window(m2, 0, 2*m2, p2)
	b22, _ := b.Window(m2, p2, 2*m2, 2*p2)

	s1, err := xorMatrices(a11, a22) // A11+A22
	if err != nil {
		return nil, err
	}
	s2, err := xorMatrices(b11, b22) // B11+B22
	if err != nil {
		return nil, err
	}
	m1, err := strassenMul(s1, s2, cutoff)
	if err != nil {
		return nil, err
	}

	s3, err := xorMatrices(a21, a22) // A21+A22
	if err != nil {
		return nil, err
	}
	m2v, err := strassenMul(s3, b11, cutoff)
	if err != nil {
		return nil, err
	}

	s4, err := xorMatrices(b12, b22) // B12+B22
	if err != nil {
		return nil, err
	}
	m3, err := strassenMul(a11, s4, cutoff)
	if err != nil {
		return nil, err
	}

	s5, err := xorMatrices(b21, b11) // B21+B11
	if err != nil {
		return nil, err
	}
	m4, err := strassenMul(a22, s5, cutoff)
	if err != nil {
		return nil, err
	}

	s6, err := xorMatrices(a11, a12) // A11+A12
	if err != nil {
		return nil, err
	}
	m5, err := strassenMul(s6, b22, cutoff)
	if err != nil {
		return nil, err
	}

	s7, err := xorMatrices(a21, a11) // A21+A11
	if err != nil {
		return nil, err
	}
	s8, err := xorMatrices(b11, b12) // B11+B12
	if err != nil {
		return nil, err
	}
	m6, err := strassenMul(s7, s8, cutoff)
	if err != nil {
		return nil, err
	}

	s9, err := xorMatrices(a12, a22) // A12+A22
	if err != nil {
		return nil, err
	}
	s10, err := xorMatrices(b21, b22) // B21+B22
	if err != nil {
		return nil, err
	}
	m7, err := strassenMul(s9, s10, cutoff)
	if err != nil {
		return nil, err
	}

	c11, err := xorMatrices(m1, m4, m5, m7)
	if err != nil {
		return nil, err
	}
	c12, err := xorMatrices(m3, m5)
	if err != nil {
		return nil, err
	}
	c21, err := xorMatrices(m2v, m4)
	if err != nil {
		return nil, err
	}
	c22, err := xorMatrices(m1, m2v, m3, m6)
	if err != nil {
		return nil, err
	}

	out, err := NewMatrix(2*n2, 2*p2)
	if err != nil {
		return nil, err
	}
	if err := embedBlock(out, c11, 0, 0); err != nil {
		return nil, err
	}
	if err := embedBlock(out, c12, 0, p2); err != nil {
		return nil, err
	}
	if err := embedBlock(out, c21, n2, 0); err != nil {
		return nil, err
	}
	if err := embedBlock(out, c22, n2, p2); err != nil {
		return nil, err
	}

	return out, nil
}

// xorMatrices returns the XOR of one or more same-shaped matrices as a
// fresh matrix (the operands are never mutated).
func xorMatrices(first *Matrix, rest ...*Matrix) (*Matrix, error) {
	out := first.Clone()
	for _, r := range rest {
		if r.nrows != out.nrows || r.ncols != out.ncols {
			return nil, ErrDimensionMismatch
		}
		for i := 0; i < out.nrows; i++ {
			if err := Combine(out, i, r, i); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// embedBlock writes src's bits into dst starting at (rowOff, colOff).
func embedBlock(dst, src *Matrix, rowOff, colOff int) error {
	for i := 0; i < src.nrows; i++ {
		for j := 0; j < src.ncols; j++ {
			if src.ReadBit(i, j) != 0 {
				if err := dst.WriteBit(rowOff+i, colOff+j, 1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
