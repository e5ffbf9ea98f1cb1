package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitAndFiniLibraryRebuild(t *testing.T) {
	InitLibrary()
	t1 := tableFor(4)
	require.NotNil(t, t1)

	FiniLibrary()
	t2 := tableFor(4)
	require.NotNil(t, t2, "a table must be rebuildable after teardown")
	require.Equal(t, t1.ord, t2.ord)
}

func TestSeedRNGReproducible(t *testing.T) {
	SeedRNG(42)
	a, err := NewMatrix(4, 64)
	require.NoError(t, err)
	a.Randomize()

	SeedRNG(42)
	b, err := NewMatrix(4, 64)
	require.NoError(t, err)
	b.Randomize()

	eq, err := Equal(a, b)
	require.NoError(t, err)
	require.True(t, eq, "same seed must produce the same random fill")
}

func TestRandomizeRespectsDontCareBits(t *testing.T) {
	m, err := NewMatrix(3, 70)
	require.NoError(t, err)
	m.Randomize()

	for i := 0; i < 3; i++ {
		lastWord := m.block[m.rows[i]+m.width-1]
		require.Zero(t, lastWord&^m.highBitmask, "bits beyond ncols in the last word must stay zero")
	}
}
