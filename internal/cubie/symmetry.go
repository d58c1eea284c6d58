package cubie

// The 48-element symmetry group of the cube is generated from four
// rigid motions of space: a 120-degree rotation about the URF-DBL
// body diagonal, a 180-degree rotation about the front-back axis, a
// 90-degree rotation about the up-down axis, and a mirror reflection
// through the left-right plane. Rather than hand-transcribing the
// resulting 48 piece/orientation tables as literals (error-prone, and
// opaque to a reader), this file derives them from those four 3x3
// signed-permutation matrices at init() time, the same "describe the
// geometry, generate the table" discipline the teacher's
// ring_generators.go uses for sticker permutations.

// vec3 is a point in the coordinate system x=Left/Right, y=Down/Up,
// z=Back/Front (Right, Up, Front positive), used only to derive the
// symmetry tables below.
type vec3 [3]int

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// signedAxis says "this output coordinate equals sign times the input
// coordinate on the given axis": one row of a signed permutation
// matrix.
type signedAxis struct {
	axis int
	sign int
}

// mat3 is a signed permutation matrix: a rigid rotation or reflection
// that maps the cube onto itself.
type mat3 [3]signedAxis

func apply(m mat3, v vec3) vec3 {
	var out vec3
	for i, row := range m {
		out[i] = row.sign * v[row.axis]
	}
	return out
}

// det returns the determinant of m: +1 for a rotation, -1 for a
// reflection.
func (m mat3) det() int {
	var full [3][3]int
	for i, row := range m {
		full[i][row.axis] = row.sign
	}
	return full[0][0]*(full[1][1]*full[2][2]-full[1][2]*full[2][1]) -
		full[0][1]*(full[1][0]*full[2][2]-full[1][2]*full[2][0]) +
		full[0][2]*(full[1][0]*full[2][1]-full[1][1]*full[2][0])
}

// The four named rigid motions, as signed permutation matrices acting
// on (x, y, z).
var (
	matURF3 = mat3{{axisY, 1}, {axisZ, 1}, {axisX, 1}} // (x,y,z) -> (y,z,x)
	matF2   = mat3{{axisX, -1}, {axisY, -1}, {axisZ, 1}}
	matU4   = mat3{{axisZ, -1}, {axisY, 1}, {axisX, 1}} // (x,y,z) -> (-z,y,x)
	matLR   = mat3{{axisX, -1}, {axisY, 1}, {axisZ, 1}}
)

var cornerCoord = [NumCorners]vec3{
	URF: {1, 1, 1}, UBR: {1, 1, -1}, DLF: {-1, -1, 1}, DFR: {1, -1, 1},
	ULB: {-1, 1, -1}, UFL: {-1, 1, 1}, DRB: {1, -1, -1}, DBL: {-1, -1, -1},
}

var edgeCoord = [NumEdges]vec3{
	UF: {0, 1, 1}, UR: {1, 1, 0}, UB: {0, 1, -1}, UL: {-1, 1, 0},
	DF: {0, -1, 1}, DR: {1, -1, 0}, DB: {0, -1, -1}, DL: {-1, -1, 0},
	FR: {1, 0, 1}, BR: {1, 0, -1}, BL: {-1, 0, -1}, FL: {-1, 0, 1},
}

var cornerByCoord map[vec3]CornerPosition
var edgeByCoord map[vec3]EdgePosition

func init() {
	cornerByCoord = make(map[vec3]CornerPosition, NumCorners)
	for pos, c := range cornerCoord {
		cornerByCoord[c] = CornerPosition(pos)
	}
	edgeByCoord = make(map[vec3]EdgePosition, NumEdges)
	for pos, c := range edgeCoord {
		edgeByCoord[c] = EdgePosition(pos)
	}
}

// chirality is +1 or -1 depending on the octant a corner sits in;
// it alternates with CornerPosition's index by construction. It fixes
// which of the two possible clockwise-as-seen-from-outside axis
// orderings applies at that corner.
func chirality(v vec3) int {
	return v[0] * v[1] * v[2]
}

// axisOf returns which axis a signed unit vector lies on.
func axisOf(v vec3) int {
	for axis, c := range v {
		if c != 0 {
			return axis
		}
	}
	return axisY
}

// cornerTwistSteps returns the number of clockwise twists (0-2) from
// the up/down axis to the given axis, in the cyclic order that
// corner's chirality implies.
func cornerTwistSteps(axis, chir int) int {
	if axis == axisY {
		return 0
	}
	if chir > 0 {
		if axis == axisZ {
			return 1
		}
		return 2
	}
	if axis == axisX {
		return 1
	}
	return 2
}

// edgeRefAxis is the axis an edge's orientation is measured against:
// the up/down axis for the eight edges that touch U or D, and the
// left/right axis for the four UD-slice edges that don't.
func edgeRefAxis(coord vec3) int {
	if coord[axisY] != 0 {
		return axisY
	}
	return axisX
}

// buildSymmetryTransform derives the CubieCube transformation a rigid
// motion m induces, by asking, for every position, which source piece
// lands there and how its reference sticker is reoriented.
func buildSymmetryTransform(m mat3) CubieCube {
	var t CubieCube

	mirrored := m.det() < 0
	refY := apply(m, vec3{0: 0, 1: 1, 2: 0})
	refYAxis := axisOf(refY)

	for p, coord := range cornerCoord {
		dest := apply(m, coord)
		q := cornerByCoord[dest]
		twist := cornerTwistSteps(refYAxis, chirality(dest))
		ori := twist
		if mirrored {
			ori += 3
		}
		t.Corners[q] = CornerSticker{Piece: CornerPosition(p), Ori: ori}
	}

	for p, coord := range edgeCoord {
		dest := apply(m, coord)
		q := edgeByCoord[dest]

		srcRefAxis := edgeRefAxis(coord)
		var refVec vec3
		refVec[srcRefAxis] = 1
		w := apply(m, refVec)
		axisW := axisOf(w)

		flip := 1
		if axisW == edgeRefAxis(dest) {
			flip = 0
		}
		t.Edges[q] = EdgeSticker{Piece: EdgePosition(p), Ori: flip}
	}

	return t
}

// CornerTwist computes the orientation (0-2) of a corner piece sitting
// at position p, given which of its three reference axes currently
// carries the piece's up/down colored sticker: 0 for up/down, 1 for
// front/back, 2 for left/right, the same slot order CornerColorsInOrder
// uses. internal/facelet uses this to turn a read facelet triple into
// an orientation without re-deriving corner chirality.
func CornerTwist(p CornerPosition, referenceSlot int) int {
	axis := [3]int{axisY, axisZ, axisX}[referenceSlot]
	return cornerTwistSteps(axis, chirality(cornerCoord[p]))
}

// EdgeTouchesUpOrDown reports whether an edge position has a facelet
// on the up or down face; internal/facelet uses this to know which of
// an edge's two stickers is its orientation reference.
func EdgeTouchesUpOrDown(p EdgePosition) bool {
	return edgeCoord[p][axisY] != 0
}

var (
	symURF3 CubieCube
	symF2   CubieCube
	symU4   CubieCube
	symLR   CubieCube
)

// NumSymmetries is the size of the cube's symmetry group.
const NumSymmetries = 48

// symmetries holds all 48 generated elements, indexed by
// 16*x1 + 8*x2 + 2*x3 + x4 as spec.md §4.3 requires, for
// cross-compatibility with any pruning table indexed the same way.
var symmetries [NumSymmetries]CubieCube

// symInverse[s] is the index j such that Chain(symmetries[s],
// symmetries[j]) is the identity, found by the direct double loop
// spec.md §4.3 describes.
var symInverse [NumSymmetries]int

func chainPow(t CubieCube, n int) CubieCube {
	result := Solved()
	for i := 0; i < n; i++ {
		result = Chain(result, t)
	}
	return result
}

func init() {
	symURF3 = buildSymmetryTransform(matURF3)
	symF2 = buildSymmetryTransform(matF2)
	symU4 = buildSymmetryTransform(matU4)
	symLR = buildSymmetryTransform(matLR)

	for x1 := 0; x1 < 3; x1++ {
		for x2 := 0; x2 < 2; x2++ {
			for x3 := 0; x3 < 4; x3++ {
				for x4 := 0; x4 < 2; x4++ {
					idx := 16*x1 + 8*x2 + 2*x3 + x4
					elem := chainPow(symURF3, x1)
					elem = Chain(elem, chainPow(symF2, x2))
					elem = Chain(elem, chainPow(symU4, x3))
					elem = Chain(elem, chainPow(symLR, x4))
					symmetries[idx] = elem
				}
			}
		}
	}

	for i := range symInverse {
		symInverse[i] = -1
	}
	identity := Solved()
	for i := 0; i < NumSymmetries; i++ {
		for j := 0; j < NumSymmetries; j++ {
			if Chain(symmetries[i], symmetries[j]) == identity {
				symInverse[i] = j
				break
			}
		}
	}
}

// Symmetry returns the cube C would be if the world were rotated by
// symmetry index s: Chain(S_s, Chain(c, S_inv[s])).
func Symmetry(c CubieCube, s int) CubieCube {
	return Chain(symmetries[s], Chain(c, symmetries[symInverse[s]]))
}

// SymmetryInverse returns Symmetry(c, inverse-of-s).
func SymmetryInverse(c CubieCube, s int) CubieCube {
	return Symmetry(c, symInverse[s])
}

// SymmetryCount returns the number of generated symmetries (always
// NumSymmetries); exposed for tests and callers that want to iterate.
func SymmetryCount() int {
	return len(symmetries)
}

// SymmetryAt returns the s-th generated symmetry transformation.
func SymmetryAt(s int) CubieCube {
	return symmetries[s]
}

// InverseIndex returns the index of the inverse of symmetry s.
func InverseIndex(s int) int {
	return symInverse[s]
}
