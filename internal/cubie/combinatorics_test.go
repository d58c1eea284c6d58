package cubie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnrankPermutationConcrete(t *testing.T) {
	require.Equal(t, []int{0, 1, 2, 3}, UnrankPermutation(4, 0))
	require.Equal(t, []int{3, 2, 1, 0}, UnrankPermutation(4, 23))
}

func TestRankPermutationConcrete(t *testing.T) {
	require.Equal(t, 0, RankPermutation([]int{0, 1, 2, 3}))
	require.Equal(t, 23, RankPermutation([]int{3, 2, 1, 0}))
}

func TestPermutationRoundTrip(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for k := 0; k < factorial[n]; k++ {
			perm := UnrankPermutation(n, k)
			require.Equal(t, k, RankPermutation(perm), "n=%d k=%d perm=%v", n, k, perm)
		}
	}
}

func TestSubsetRoundTrip(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for k := 0; k <= n; k++ {
			total := binomial(n, k)
			for i := 0; i < total; i++ {
				subset := UnrankSubset(n, k, i)
				require.Equal(t, i, RankSubset(subset), "n=%d k=%d i=%d subset=%v", n, k, i, subset)
			}
		}
	}
}

func TestBinomialOutOfRange(t *testing.T) {
	require.Equal(t, 0, binomial(3, 5))
	require.Equal(t, 0, binomial(-1, 0))
	require.Equal(t, 1, binomial(5, 0))
}
