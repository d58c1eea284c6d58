package cubie

// The five coordinates below are the integer indices a two-phase
// solver's pruning tables are keyed on: each collapses one slice of
// the cube's state into a small range so a table lookup can replace a
// search. They are pure projections of a CubieCube: computing one
// never mutates its argument.

// NumCornerOrientations is the size of the corner-orientation
// coordinate space: 8 corners, 3 choices each, but the last is
// determined by the other seven (corner-twist-sum invariant).
const NumCornerOrientations = 2187 // 3^7

// NumEdgeOrientations is the size of the edge-orientation coordinate
// space: 12 edges, the last determined by the other eleven.
const NumEdgeOrientations = 2048 // 2^11

// NumUDSliceCoords is the number of ways to choose which 4 of the 12
// edge positions hold the UD-slice edges.
const NumUDSliceCoords = 495 // C(12,4)

// NumCornerPermutations and NumEdgePermutations bound the full
// permutation coordinates used once phase one narrows the cube down
// to the <U,D,L2,R2,F2,B2> subgroup.
const (
	NumCornerPermutations = 40320 // 8!
	NumEdgePermutations   = 40320 // 8!
)

// CornerOrientationCoord packs the 7 independent corner orientations
// into a single base-3 number, most significant digit first, dropping
// DBL (the last corner) since it is fixed by the others.
func CornerOrientationCoord(c CubieCube) int {
	coord := 0
	for i := 0; i < NumCorners-1; i++ {
		coord = coord*3 + c.Corners[i].Ori%3
	}
	return coord
}

// SetCornerOrientationCoord overwrites the orientation field of every
// corner in c to match coord, computing the dropped corner's
// orientation from the corner-twist-sum invariant. Piece identities
// and all edge data are left untouched.
func SetCornerOrientationCoord(c *CubieCube, coord int) {
	sum := 0
	for i := NumCorners - 2; i >= 0; i-- {
		ori := coord % 3
		coord /= 3
		c.Corners[i].Ori = ori
		sum += ori
	}
	c.Corners[NumCorners-1].Ori = mod(-sum, 3)
}

// EdgeOrientationCoord packs the 11 independent edge orientations into
// a base-2 number, most significant bit first, dropping FL (the last
// edge) since it is fixed by the edge-flip-sum invariant.
func EdgeOrientationCoord(c CubieCube) int {
	coord := 0
	for i := 0; i < NumEdges-1; i++ {
		coord = coord*2 + c.Edges[i].Ori%2
	}
	return coord
}

// SetEdgeOrientationCoord is the SetCornerOrientationCoord analogue
// for edges.
func SetEdgeOrientationCoord(c *CubieCube, coord int) {
	sum := 0
	for i := NumEdges - 2; i >= 0; i-- {
		ori := coord % 2
		coord /= 2
		c.Edges[i].Ori = ori
		sum += ori
	}
	c.Edges[NumEdges-1].Ori = mod(-sum, 2)
}

// UDSliceCoord ranks which four of the twelve edge positions currently
// hold a UD-slice piece (FR, BR, BL, or FL), as a colexicographic
// subset rank in [0, C(12,4)). It ignores which of the four slice
// edges sits where and ignores every non-slice edge's identity.
func UDSliceCoord(c CubieCube) int {
	var chosen [NumEdges]bool
	for i, es := range c.Edges {
		if int(es.Piece) >= UDSliceStart {
			chosen[i] = true
		}
	}
	return RankSubset(chosen[:])
}

// CornerPermutationCoord ranks the permutation of all eight corner
// pieces (ignoring orientation) in [0, 8!).
func CornerPermutationCoord(c CubieCube) int {
	perm := make([]int, NumCorners)
	for i, cs := range c.Corners {
		perm[i] = int(cs.Piece)
	}
	return RankPermutation(perm)
}

// EdgePermutationCoord ranks the permutation of the first eight edge
// positions (the non-UD-slice edges) in [0, 8!), matching
// NumEdgePermutations. Callers in phase two only ever call this once
// the UD-slice coordinate has confirmed those eight positions hold
// exactly the eight non-slice pieces; it is meaningless otherwise,
// since RankPermutation requires a permutation of 0..7.
func EdgePermutationCoord(c CubieCube) int {
	perm := make([]int, UDSliceStart)
	for i := 0; i < UDSliceStart; i++ {
		perm[i] = int(c.Edges[i].Piece)
	}
	return RankPermutation(perm)
}
