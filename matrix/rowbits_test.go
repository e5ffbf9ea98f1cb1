package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBitsLowOrder(t *testing.T) {
	m, err := NewMatrix(1, 10)
	require.NoError(t, err)
	require.NoError(t, m.WriteBit(0, 2, 1))
	require.NoError(t, m.WriteBit(0, 4, 1))

	v, err := m.ReadBits(0, 2, 4)
	require.NoError(t, err)
	// columns 2..5: bit0(col2)=1, bit1(col3)=0, bit2(col4)=1, bit3(col5)=0 -> 0b0101 = 5
	require.Equal(t, uint64(5), v)

	_, err = m.ReadBits(0, 0, 0)
	require.ErrorIs(t, err, ErrBitRangeTooWide)
	_, err = m.ReadBits(0, 0, 65)
	require.ErrorIs(t, err, ErrBitRangeTooWide)
}

func TestXorAndClearBits(t *testing.T) {
	m, err := NewMatrix(1, 16)
	require.NoError(t, err)

	require.NoError(t, m.XorBits(0, 0, 4, 0b1011))
	v, err := m.ReadBits(0, 0, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1011), v)

	require.NoError(t, m.XorBits(0, 0, 4, 0b1011))
	v, err = m.ReadBits(0, 0, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)

	require.NoError(t, m.AndBits(0, 4, 4, 0b1111))
	require.NoError(t, m.XorBits(0, 4, 4, 0b1100))
	v, err = m.ReadBits(0, 4, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1100), v)

	require.NoError(t, m.ClearBits(0, 4, 4))
	v, err = m.ReadBits(0, 4, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
}

func TestRowSwapFastAndFallback(t *testing.T) {
	m, err := NewMatrix(2, 70)
	require.NoError(t, err)
	require.NoError(t, m.WriteBit(0, 5, 1))
	require.NoError(t, m.WriteBit(1, 68, 1))

	require.NoError(t, m.RowSwap(0, 1))
	require.Equal(t, 0, m.ReadBit(0, 5))
	require.Equal(t, 1, m.ReadBit(1, 5))
	require.Equal(t, 1, m.ReadBit(0, 68))

	win, err := m.Window(0, 1, 2, 69)
	require.NoError(t, err)
	require.NotZero(t, win.Offset(), "window starting at column 1 has non-zero offset")
	require.NoError(t, win.RowSwap(0, 1))
}

func TestColSwapInRows(t *testing.T) {
	m, err := NewMatrix(3, 5)
	require.NoError(t, err)
	require.NoError(t, m.WriteBit(0, 1, 1))
	require.NoError(t, m.WriteBit(2, 1, 1))

	require.NoError(t, m.ColSwapInRows(1, 3, 0, 3))
	require.Equal(t, 0, m.ReadBit(0, 1))
	require.Equal(t, 1, m.ReadBit(0, 3))
	require.Equal(t, 0, m.ReadBit(2, 1))
	require.Equal(t, 1, m.ReadBit(2, 3))
}

func TestCombineEvenAndWeirdPaths(t *testing.T) {
	a, err := NewMatrix(2, 64)
	require.NoError(t, err)
	b, err := NewMatrix(2, 64)
	require.NoError(t, err)
	require.NoError(t, a.WriteBit(0, 3, 1))
	require.NoError(t, b.WriteBit(0, 3, 1))
	require.NoError(t, b.WriteBit(0, 10, 1))

	require.NoError(t, Combine(a, 0, b, 0))
	require.Equal(t, 0, a.ReadBit(0, 3))
	require.Equal(t, 1, a.ReadBit(0, 10))

	parent, err := NewMatrix(2, 66)
	require.NoError(t, err)
	win, err := parent.Window(0, 2, 2, 66)
	require.NoError(t, err)
	require.NoError(t, win.WriteBit(0, 0, 1))
	require.NoError(t, Combine(a, 1, win, 0))
	require.Equal(t, 1, a.ReadBit(1, 0))
}
