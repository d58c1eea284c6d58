// Package cubie implements the cubie-level group-theoretic model of a
// 3x3x3 Rubik's Cube: cube state, transformation composition, the
// 48-element symmetry group, and the integer coordinates a two-phase
// solver indexes its pruning tables with.
package cubie

// maxN bounds the combinatorics helpers below. 12! fits in a 64-bit
// int with plenty of room, and nothing in this package ranks a
// sequence longer than the 12 edge positions.
const maxN = 12

// factorial[i] = i!
var factorial [maxN + 1]int

func init() {
	factorial[0] = 1
	for i := 1; i <= maxN; i++ {
		factorial[i] = factorial[i-1] * i
	}
}

// binomial returns n choose k, or 0 if the combination is out of range.
func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	return factorial[n] / (factorial[n-k] * factorial[k])
}

// fenwick is a Fenwick (binary indexed) tree over the value domain
// 0..n, used by RankPermutation to count inversions in O(n log n).
type fenwick struct {
	tree []int
}

func newFenwick(n int) *fenwick {
	return &fenwick{tree: make([]int, n+1)}
}

func (f *fenwick) add(i int, delta int) {
	for i++; i < len(f.tree); i += i & (-i) {
		f.tree[i] += delta
	}
}

func (f *fenwick) prefixSum(i int) int {
	sum := 0
	for i++; i > 0; i -= i & (-i) {
		sum += f.tree[i]
	}
	return sum
}

// RankPermutation maps a permutation of 0..n (n exclusive) to its
// Lehmer-code rank in [0, n!), in O(n log n) via a Fenwick tree over
// the value domain: for each position, count how many smaller values
// still lie ahead and weight that count by the factorial of the
// remaining suffix length.
func RankPermutation(perm []int) int {
	n := len(perm)
	tree := newFenwick(n)
	for _, v := range perm {
		tree.add(v, 1)
	}

	rank := 0
	for i, v := range perm {
		tree.add(v, -1)
		smallerRemaining := tree.prefixSum(v - 1)
		rank += smallerRemaining * factorial[n-1-i]
	}
	return rank
}

// UnrankPermutation returns the k-th permutation of 0..n under the
// ordering RankPermutation imposes. O(n^2); n never exceeds 12 here.
func UnrankPermutation(n, k int) []int {
	available := make([]int, n)
	for i := range available {
		available[i] = i
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		f := factorial[n-1-i]
		idx := k / f
		k %= f
		out[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
	}
	return out
}

// RankSubset maps a boolean selection of length n (with k trues) to
// its rank in the colexicographic ordering of the C(n,k) subsets, in
// [0, C(n,k)).
func RankSubset(chosen []bool) int {
	rank := 0
	k := 0
	for pos, isChosen := range chosen {
		if isChosen {
			k++
		} else if k > 0 {
			rank += binomial(pos, k-1)
		}
	}
	return rank
}

// UnrankSubset returns the i-th subset of n choose k, inverse of
// RankSubset.
func UnrankSubset(n, k, i int) []bool {
	out := make([]bool, n)
	if k == 0 {
		return out
	}

	x := i
	remaining := k - 1
	for pos := n - 1; pos >= 0; pos-- {
		ways := binomial(pos, remaining)
		if x >= ways {
			x -= ways
		} else {
			out[pos] = true
			if remaining == 0 {
				break
			}
			remaining--
		}
	}
	return out
}
