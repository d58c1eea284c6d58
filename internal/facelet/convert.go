package facelet

import (
	"fmt"

	"github.com/behrlich/cubie/internal/cubie"
)

// ToCubie reads a cube's cubie-level state off its facelets: which
// piece occupies each of the 20 movable slots, and at what
// orientation. Grounded on the teacher's cfen.ToCube, which performs
// the same per-slot color-to-piece lookup; the orientation arithmetic
// here follows internal/cubie/symmetry.go's geometric rules instead of
// the teacher's literal case tables.
func ToCubie(c Cube) (cubie.CubieCube, error) {
	if err := checkCenters(c); err != nil {
		return cubie.CubieCube{}, err
	}

	var out cubie.CubieCube

	for p := cubie.CornerPosition(0); int(p) < cubie.NumCorners; p++ {
		locs := cornerFacelets[p]
		yLoc, zLoc, xLoc := locs[axisY], locs[axisZ], locs[axisX]
		colorY := c.At(yLoc.face, yLoc.row, yLoc.col)
		colorZ := c.At(zLoc.face, zLoc.row, zLoc.col)
		colorX := c.At(xLoc.face, xLoc.row, xLoc.col)

		piece, err := cubie.ParseCornerByColors(colorY, colorZ, colorX)
		if err != nil {
			return cubie.CubieCube{}, fmt.Errorf("corner slot %v: %w", p, err)
		}

		refColor := cubie.CornerColorsInOrder(piece)[0]
		var refAxis int
		switch refColor {
		case colorY:
			refAxis = axisY
		case colorZ:
			refAxis = axisZ
		default:
			refAxis = axisX
		}
		out.Corners[p] = cubie.CornerSticker{
			Piece: piece,
			Ori:   cubie.CornerTwist(p, axisToCornerSlot(refAxis)),
		}
	}

	for p := cubie.EdgePosition(0); int(p) < cubie.NumEdges; p++ {
		locs := edgeFacelets[p]
		refAxis := edgeReferenceAxis(cubie.EdgePosition(p))
		var otherAxis int
		for axis := range locs {
			if axis != refAxis {
				otherAxis = axis
			}
		}
		refLoc, otherLoc := locs[refAxis], locs[otherAxis]
		refColor := c.At(refLoc.face, refLoc.row, refLoc.col)
		otherColor := c.At(otherLoc.face, otherLoc.row, otherLoc.col)

		piece, err := cubie.ParseEdgeByColors(refColor, otherColor)
		if err != nil {
			return cubie.CubieCube{}, fmt.Errorf("edge slot %v: %w", p, err)
		}

		ori := 0
		if refColor != cubie.EdgeColorsInOrder(piece)[0] {
			ori = 1
		}
		out.Edges[p] = cubie.EdgeSticker{Piece: piece, Ori: ori}
	}

	return out, nil
}

// checkCenters verifies each face's center facelet carries that face's
// own color, the minimal sanity check that a facelet array names its
// faces the way this package expects before any piece lookup runs.
func checkCenters(c Cube) error {
	for _, f := range allFaces {
		want := cubie.Color(f)
		if got := c.At(f, 1, 1); got != want {
			return &ParseError{Detail: fmt.Sprintf("face %v center is %v, want %v", f, got, want)}
		}
	}
	return nil
}

// FromCubie renders a cubie-level cube state onto facelets, the
// inverse of ToCubie. Grounded on the teacher's cfen.FromCube.
func FromCubie(cc cubie.CubieCube) Cube {
	out := Solved()

	for p := cubie.CornerPosition(0); int(p) < cubie.NumCorners; p++ {
		sticker := cc.Corners[p]
		chir := chirality(cornerCoord[p])
		pieceChir := chirality(cornerCoord[sticker.Piece])
		homeColors := cubie.CornerColorsInOrder(sticker.Piece)
		for axis, loc := range cornerFacelets[p] {
			homeAxis := axisAtCyclePos(pieceChir, cyclePos(chir, axis)-sticker.Ori)
			out.set(loc.face, loc.row, loc.col, homeColors[axisToCornerSlot(homeAxis)])
		}
	}

	for p := cubie.EdgePosition(0); int(p) < cubie.NumEdges; p++ {
		sticker := cc.Edges[p]
		homeColors := cubie.EdgeColorsInOrder(sticker.Piece)
		refAxis := edgeReferenceAxis(cubie.EdgePosition(p))
		locs := edgeFacelets[p]
		var otherAxis int
		for axis := range locs {
			if axis != refAxis {
				otherAxis = axis
			}
		}
		refColor, otherColor := homeColors[0], homeColors[1]
		if sticker.Ori == 1 {
			refColor, otherColor = otherColor, refColor
		}
		refLoc, otherLoc := locs[refAxis], locs[otherAxis]
		out.set(refLoc.face, refLoc.row, refLoc.col, refColor)
		out.set(otherLoc.face, otherLoc.row, otherLoc.col, otherColor)
	}

	return out
}
