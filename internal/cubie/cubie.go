package cubie

import "fmt"

// CornerSticker names the piece currently occupying a corner position
// and how it is twisted there. Ori is 0-2 on any cube reached by
// physical turns; 3-5 only appears inside a Transformation produced by
// a mirror symmetry (see chain.go).
type CornerSticker struct {
	Piece CornerPosition
	Ori   int
}

// EdgeSticker names the piece currently occupying an edge position and
// whether it is flipped there (0 or 1).
type EdgeSticker struct {
	Piece EdgePosition
	Ori   int
}

// CubieCube is the cubie-level state of a cube: for each position, the
// piece sitting there and its orientation. A Transformation (the
// effect of a turn or a symmetry) has the same shape and is chained
// against a CubieCube with Chain; this package does not define a
// separate Transformation type, matching the "one struct, two uses"
// choice in the teacher's Permutation type.
type CubieCube struct {
	Corners [NumCorners]CornerSticker
	Edges   [NumEdges]EdgeSticker
}

// Solved returns the identity cube: every piece at its own position,
// orientation 0. This is both the solved cube state and the identity
// transformation.
func Solved() CubieCube {
	var c CubieCube
	for i := range c.Corners {
		c.Corners[i] = CornerSticker{Piece: CornerPosition(i), Ori: 0}
	}
	for i := range c.Edges {
		c.Edges[i] = EdgeSticker{Piece: EdgePosition(i), Ori: 0}
	}
	return c
}

// ApplyTurn mutates c by applying a single turn, the only mutator in
// this package.
func (c *CubieCube) ApplyTurn(t Turn) {
	*c = Chain(*c, turnTable[t.Face][t.Amount])
}

// ApplyTurns applies a sequence of turns in order.
func (c *CubieCube) ApplyTurns(turns []Turn) {
	for _, t := range turns {
		c.ApplyTurn(t)
	}
}

// Validate checks the four invariants of a solvable cube (piece
// multiset, corner-twist sum, edge-flip sum, permutation-parity
// match) and returns one ValidityError per violation, in a fixed
// order so callers can rely on the order for display. A nil/empty
// return means the cube is solvable.
func (c CubieCube) Validate() []error {
	var errs []error

	var seenCorner [NumCorners]bool
	cornerTwist := 0
	cornerPieces := make([]int, NumCorners)
	for i, cs := range c.Corners {
		if cs.Piece < 0 || int(cs.Piece) >= NumCorners {
			errs = append(errs, &ValidityError{Kind: PieceMultiset, Detail: fmt.Sprintf("corner position %d holds out-of-range piece %d", i, cs.Piece)})
			continue
		}
		seenCorner[cs.Piece] = true
		cornerTwist += cs.Ori % 3
		cornerPieces[i] = int(cs.Piece)
	}
	for _, seen := range seenCorner {
		if !seen {
			errs = append(errs, &ValidityError{Kind: PieceMultiset, Detail: "a corner piece is missing from the cube"})
			break
		}
	}
	if cornerTwist%3 != 0 {
		errs = append(errs, &ValidityError{Kind: CornerTwistSum, Detail: fmt.Sprintf("sum of corner orientations is %d mod 3, want 0", cornerTwist%3)})
	}

	var seenEdge [NumEdges]bool
	edgeFlip := 0
	edgePieces := make([]int, NumEdges)
	for i, es := range c.Edges {
		if es.Piece < 0 || int(es.Piece) >= NumEdges {
			errs = append(errs, &ValidityError{Kind: PieceMultiset, Detail: fmt.Sprintf("edge position %d holds out-of-range piece %d", i, es.Piece)})
			continue
		}
		seenEdge[es.Piece] = true
		edgeFlip += es.Ori % 2
		edgePieces[i] = int(es.Piece)
	}
	for _, seen := range seenEdge {
		if !seen {
			errs = append(errs, &ValidityError{Kind: PieceMultiset, Detail: "an edge piece is missing from the cube"})
			break
		}
	}
	if edgeFlip%2 != 0 {
		errs = append(errs, &ValidityError{Kind: EdgeFlipSum, Detail: fmt.Sprintf("sum of edge orientations is %d mod 2, want 0", edgeFlip%2)})
	}

	cornerParity := permutationParity(cornerPieces)
	edgeParity := permutationParity(edgePieces)
	if cornerParity != edgeParity {
		errs = append(errs, &ValidityError{Kind: ParityMismatch, Detail: "corner permutation parity does not match edge permutation parity"})
	}

	return errs
}

// permutationParity returns 0 for an even permutation, 1 for odd,
// counted by inversions.
func permutationParity(p []int) int {
	inversions := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}
