package facelet

import "github.com/behrlich/cubie/internal/cubie"

// This file derives, once at init() time, which of the 54 facelets
// belongs to each corner and edge piece slot, the array-cube analog
// of internal/cubie/symmetry.go's "describe the geometry, generate the
// table" approach, applied here to facelet layout instead of
// transformation tables.

type vec3 [3]int

const (
	axisX = 0 // Left/Right
	axisY = 1 // Down/Up
	axisZ = 2 // Back/Front
)

type axisSign struct {
	axis int
	sign int
}

type faceAxes struct {
	normal axisSign
	right  axisSign
	up     axisSign
}

// faceGeometry fixes, for each face, which spatial axis points out of
// it (normal), and which axes its row/column run along as drawn in
// String and consumed by ParseFacelets.
var faceGeometry = map[cubie.Face]faceAxes{
	cubie.Up:    {normal: axisSign{axisY, 1}, right: axisSign{axisX, 1}, up: axisSign{axisZ, -1}},
	cubie.Down:  {normal: axisSign{axisY, -1}, right: axisSign{axisX, 1}, up: axisSign{axisZ, 1}},
	cubie.Back:  {normal: axisSign{axisZ, -1}, right: axisSign{axisX, -1}, up: axisSign{axisY, 1}},
	cubie.Front: {normal: axisSign{axisZ, 1}, right: axisSign{axisX, 1}, up: axisSign{axisY, 1}},
	cubie.Left:  {normal: axisSign{axisX, -1}, right: axisSign{axisZ, 1}, up: axisSign{axisY, 1}},
	cubie.Right: {normal: axisSign{axisX, 1}, right: axisSign{axisZ, -1}, up: axisSign{axisY, 1}},
}

// cornerCoord and edgeCoord mirror internal/cubie's private geometric
// coordinate tables. They are kept separately here, rather than
// exported from cubie, because facelet's use of them (sticker layout)
// is a different concern from cubie's (transformation derivation);
// duplicating six lines of literals is cheaper than coupling the two
// packages' internals together.
var cornerCoord = [cubie.NumCorners]vec3{
	cubie.URF: {1, 1, 1}, cubie.UBR: {1, 1, -1}, cubie.DLF: {-1, -1, 1}, cubie.DFR: {1, -1, 1},
	cubie.ULB: {-1, 1, -1}, cubie.UFL: {-1, 1, 1}, cubie.DRB: {1, -1, -1}, cubie.DBL: {-1, -1, -1},
}

var edgeCoord = [cubie.NumEdges]vec3{
	cubie.UF: {0, 1, 1}, cubie.UR: {1, 1, 0}, cubie.UB: {0, 1, -1}, cubie.UL: {-1, 1, 0},
	cubie.DF: {0, -1, 1}, cubie.DR: {1, -1, 0}, cubie.DB: {0, -1, -1}, cubie.DL: {-1, -1, 0},
	cubie.FR: {1, 0, 1}, cubie.BR: {1, 0, -1}, cubie.BL: {-1, 0, -1}, cubie.FL: {-1, 0, 1},
}

// axisToCornerSlot converts a spatial axis to the slot index
// cubie.CornerColorsInOrder and cubie.CornerTwist use: 0 for up/down,
// 1 for front/back, 2 for left/right.
func axisToCornerSlot(axis int) int {
	switch axis {
	case axisY:
		return 0
	case axisZ:
		return 1
	default:
		return 2
	}
}

// faceletLoc is one sticker's address in a Cube.
type faceletLoc struct {
	face     cubie.Face
	row, col int
}

func facePosition(f cubie.Face, v vec3) (row, col int) {
	g := faceGeometry[f]
	row = 1 - g.up.sign*v[g.up.axis]
	col = 1 + g.right.sign*v[g.right.axis]
	return row, col
}

var faceByAxisSign map[axisSign]cubie.Face
var cornerFacelets [cubie.NumCorners]map[int]faceletLoc
var edgeFacelets [cubie.NumEdges]map[int]faceletLoc

func init() {
	faceByAxisSign = make(map[axisSign]cubie.Face, 6)
	for f, g := range faceGeometry {
		faceByAxisSign[g.normal] = f
	}

	for p, v := range cornerCoord {
		locs := make(map[int]faceletLoc, 3)
		for axis := 0; axis < 3; axis++ {
			if v[axis] == 0 {
				continue
			}
			f := faceByAxisSign[axisSign{axis, v[axis]}]
			row, col := facePosition(f, v)
			locs[axis] = faceletLoc{face: f, row: row, col: col}
		}
		cornerFacelets[p] = locs
	}

	for p, v := range edgeCoord {
		locs := make(map[int]faceletLoc, 2)
		for axis := 0; axis < 3; axis++ {
			if v[axis] == 0 {
				continue
			}
			f := faceByAxisSign[axisSign{axis, v[axis]}]
			row, col := facePosition(f, v)
			locs[axis] = faceletLoc{face: f, row: row, col: col}
		}
		edgeFacelets[p] = locs
	}
}

// chirality matches internal/cubie's corner chirality rule; it governs
// which of the two possible axis cycles a corner's orientation steps
// run through.
func chirality(v vec3) int {
	return v[0] * v[1] * v[2]
}

func axisCycle(chir int) [3]int {
	if chir > 0 {
		return [3]int{axisY, axisZ, axisX}
	}
	return [3]int{axisY, axisX, axisZ}
}

func cyclePos(chir, axis int) int {
	for i, a := range axisCycle(chir) {
		if a == axis {
			return i
		}
	}
	return 0
}

func axisAtCyclePos(chir, idx int) int {
	return axisCycle(chir)[((idx%3)+3)%3]
}

// edgeReferenceAxis is the axis an edge position's orientation is
// measured against: up/down for the eight edges that touch U or D,
// left/right for the four UD-slice edges, the same rule
// internal/cubie/symmetry.go uses, so a facelet round-trip agrees with
// what ApplyTurn produces.
func edgeReferenceAxis(p cubie.EdgePosition) int {
	if cubie.EdgeTouchesUpOrDown(p) {
		return axisY
	}
	return axisX
}
