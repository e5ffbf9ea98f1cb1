package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatPlacesColumnsSideBySide(t *testing.T) {
	a, err := NewIdentity(3)
	require.NoError(t, err)
	b, err := NewZeros(3, 2)
	require.NoError(t, err)
	require.NoError(t, b.WriteBit(0, 0, 1))

	cat, err := Concat(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, cat.Rows())
	require.Equal(t, 5, cat.Cols())
	require.Equal(t, 1, cat.ReadBit(0, 0))
	require.Equal(t, 1, cat.ReadBit(0, 3))
	require.Equal(t, 0, cat.ReadBit(1, 3))

	_, err = Concat(a, NewMatrixMustForTest(2, 2))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestStackPlacesRowsAtop(t *testing.T) {
	a, err := NewIdentity(2)
	require.NoError(t, err)
	b, err := NewZeros(1, 2)
	require.NoError(t, err)
	require.NoError(t, b.WriteBit(0, 1, 1))

	st, err := Stack(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, st.Rows())
	require.Equal(t, 2, st.Cols())
	require.Equal(t, 1, st.ReadBit(0, 0))
	require.Equal(t, 1, st.ReadBit(2, 1))

	_, err = Stack(a, NewMatrixMustForTest(1, 3))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSubmatrixIsIndependentCopy(t *testing.T) {
	m, err := NewMatrix(4, 70)
	require.NoError(t, err)
	m.Randomize()

	sub, err := Submatrix(m, 1, 2, 3, 66)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 64, sub.Cols())

	before := sub.ReadBit(0, 0)
	require.NoError(t, m.WriteBit(1, 2, 1-before))
	require.Equal(t, before, sub.ReadBit(0, 0), "Submatrix must not alias the parent")
}

func TestCompareOrdersByFirstDifferingWord(t *testing.T) {
	a, err := NewZeros(2, 4)
	require.NoError(t, err)
	b, err := NewZeros(2, 4)
	require.NoError(t, err)

	cmp, err := Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, cmp)

	require.NoError(t, b.WriteBit(0, 0, 1))
	cmp, err = Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, -1, cmp)

	cmp, err = Compare(b, a)
	require.NoError(t, err)
	require.Equal(t, 1, cmp)

	_, err = Compare(a, NewMatrixMustForTest(3, 4))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

// NewMatrixMustForTest panics on error; test-only convenience to build
// mismatched-shape fixtures inline.
func NewMatrixMustForTest(r, c int) *Matrix {
	m, err := NewMatrix(r, c)
	if err != nil {
		panic(err)
	}

	return m
}
