package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulStrassenMatchesNaiveEvenShapes(t *testing.T) {
	a, err := NewMatrix(16, 16)
	require.NoError(t, err)
	a.Randomize()
	b, err := NewMatrix(16, 16)
	require.NoError(t, err)
	b.Randomize()

	want, err := a.MulNaive(b)
	require.NoError(t, err)
	got, err := a.MulStrassen(b, 4)
	require.NoError(t, err)

	eq, err := Equal(want, got)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestMulStrassenOddDimensions(t *testing.T) {
	a, err := NewMatrix(13, 17)
	require.NoError(t, err)
	a.Randomize()
	b, err := NewMatrix(17, 9)
	require.NoError(t, err)
	b.Randomize()

	want, err := a.MulNaive(b)
	require.NoError(t, err)
	got, err := a.MulStrassen(b, 4)
	require.NoError(t, err)

	eq, err := Equal(want, got)
	require.NoError(t, err)
	require.True(t, eq, "strassen must handle odd/non-power-of-two shapes without caller padding")
}

func TestMulStrassenCutoffFallsBackToNaive(t *testing.T) {
	a, err := NewMatrix(4, 4)
	require.NoError(t, err)
	a.Randomize()
	b, err := NewMatrix(4, 4)
	require.NoError(t, err)
	b.Randomize()

	want, err := a.MulNaive(b)
	require.NoError(t, err)
	got, err := a.MulStrassen(b, 100) // cutoff above matrix size: always naive
	require.NoError(t, err)

	eq, err := Equal(want, got)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestMulStrassenDimensionMismatch(t *testing.T) {
	a, err := NewMatrix(2, 3)
	require.NoError(t, err)
	b, err := NewMatrix(4, 2)
	require.NoError(t, err)
	_, err = a.MulStrassen(b, 4)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
