package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrayCodeIsBijectionAndSingleBitStep(t *testing.T) {
	const k = 4
	n := 1 << k
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		g := grayCode(i, k)
		require.False(t, seen[g], "gray code must be a bijection over 0..2^k-1")
		seen[g] = true
		if i > 0 {
			prev := grayCode(i-1, k)
			diff := g ^ prev
			require.Equal(t, 1, popcount(uint64(diff)), "consecutive gray codes differ in exactly one bit")
		}
	}
}

func TestBuildCodeIncMatchesOrd(t *testing.T) {
	tbl := buildCode(3)
	n := 1 << 3
	require.Len(t, tbl.ord, n)
	require.Len(t, tbl.inc, n)
	for i := 0; i < n-1; i++ {
		diff := tbl.ord[i] ^ tbl.ord[i+1]
		require.Equal(t, 1, popcount(uint64(diff)))
		require.Equal(t, 1<<uint(tbl.inc[i]), diff, "inc[i] names the bit flipped from ord[i] to ord[i+1]")
	}
}

func TestOptK(t *testing.T) {
	require.GreaterOrEqual(t, optK(1, 1), 1)
	require.LessOrEqual(t, optK(1<<20, 1<<20), MaxKay)
	require.Equal(t, optK(4, 100), optK(100, 4), "optK depends only on min(a,b)")
}

func TestTableForBuildsOnDemand(t *testing.T) {
	defer FiniLibrary()
	tbl := tableFor(5)
	require.Equal(t, 5, tbl.k)
	require.Len(t, tbl.ord, 1<<5)
}
