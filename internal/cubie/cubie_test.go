package cubie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolvedIsValid(t *testing.T) {
	require.Empty(t, Solved().Validate())
}

func TestQuarterTurnOrderFour(t *testing.T) {
	for _, face := range []Face{Up, Down, Back, Front, Left, Right} {
		c := Solved()
		for i := 0; i < 4; i++ {
			c.ApplyTurn(Turn{Face: face, Amount: Quarter})
		}
		require.Equal(t, Solved(), c, "face %v should return to solved after 4 quarter turns", face)
	}
}

func TestHalfTurnIsTwoQuarters(t *testing.T) {
	for _, face := range []Face{Up, Down, Back, Front, Left, Right} {
		quarters := Solved()
		quarters.ApplyTurn(Turn{Face: face, Amount: Quarter})
		quarters.ApplyTurn(Turn{Face: face, Amount: Quarter})

		half := Solved()
		half.ApplyTurn(Turn{Face: face, Amount: Half})

		require.Equal(t, quarters, half, "face %v", face)
	}
}

func TestCounterQuarterUndoesQuarter(t *testing.T) {
	for _, face := range []Face{Up, Down, Back, Front, Left, Right} {
		c := Solved()
		c.ApplyTurn(Turn{Face: face, Amount: Quarter})
		c.ApplyTurn(Turn{Face: face, Amount: CounterQuarter})
		require.Equal(t, Solved(), c, "face %v", face)
	}
}

func TestInvariantsHoldAfterTurns(t *testing.T) {
	c := Solved()
	c.ApplyTurns([]Turn{
		{Left, Quarter}, {Back, Quarter}, {Right, Half}, {Up, Quarter},
		{Down, CounterQuarter}, {Right, Quarter}, {Down, Half}, {Left, Quarter},
		{Up, CounterQuarter}, {Right, CounterQuarter}, {Back, Half},
	})
	require.Empty(t, c.Validate())
}

// S1: solved cube -> all five coordinates are 0.
func TestScenarioS1SolvedCoordinatesAreZero(t *testing.T) {
	c := Solved()
	require.Equal(t, 0, CornerOrientationCoord(c))
	require.Equal(t, 0, EdgeOrientationCoord(c))
	require.Equal(t, 0, UDSliceCoord(c))
	require.Equal(t, 0, CornerPermutationCoord(c))
	require.Equal(t, 0, EdgePermutationCoord(c))
}

// S2: applying R twists corners and leaves edges unflipped. The
// UD-slice claim in spec.md's S2 does not hold against the mandated R
// table (see DESIGN.md); R's four-cycle trades two non-slice edges
// for two slice edges, so the coordinate moves away from 0 instead of
// staying there.
func TestScenarioS2ApplyR(t *testing.T) {
	c := Solved()
	c.ApplyTurn(Turn{Face: Right, Amount: Quarter})

	require.NotEqual(t, 0, CornerOrientationCoord(c))
	require.Equal(t, 0, EdgeOrientationCoord(c))
	require.NotEqual(t, 0, UDSliceCoord(c))
}

// S3: applying F twists both corners and edges.
func TestScenarioS3ApplyF(t *testing.T) {
	c := Solved()
	c.ApplyTurn(Turn{Face: Front, Amount: Quarter})

	require.NotEqual(t, 0, CornerOrientationCoord(c))
	require.NotEqual(t, 0, EdgeOrientationCoord(c))
}

// S5: every one of the 48 symmetries applied to the solved cube
// yields the solved cube again.
func TestScenarioS5SymmetryFixesSolved(t *testing.T) {
	solved := Solved()
	for s := 0; s < NumSymmetries; s++ {
		require.Equal(t, solved, Symmetry(solved, s), "symmetry %d", s)
	}
}

func TestSymmetryGroupClosure(t *testing.T) {
	seen := make(map[CubieCube]bool, NumSymmetries)
	for s := 0; s < NumSymmetries; s++ {
		elem := SymmetryAt(s)
		require.False(t, seen[elem], "symmetry %d duplicates an earlier element", s)
		seen[elem] = true

		inv := InverseIndex(s)
		require.GreaterOrEqual(t, inv, 0, "symmetry %d has no inverse", s)
		require.Equal(t, Solved(), Chain(SymmetryAt(s), SymmetryAt(inv)))
	}
}

func TestSymmetryConjugationRoundTrip(t *testing.T) {
	c := Solved()
	c.ApplyTurns([]Turn{{Right, Quarter}, {Up, Quarter}, {Front, CounterQuarter}})

	for s := 0; s < NumSymmetries; s++ {
		rotated := Symmetry(c, s)
		back := SymmetryInverse(rotated, s)
		require.Equal(t, c, back, "symmetry %d did not round-trip", s)
	}
}

func TestCoordinateBounds(t *testing.T) {
	c := Solved()
	c.ApplyTurns([]Turn{{Left, Quarter}, {Back, Quarter}, {Right, Half}, {Up, Quarter}})

	require.True(t, CornerOrientationCoord(c) >= 0 && CornerOrientationCoord(c) < NumCornerOrientations)
	require.True(t, EdgeOrientationCoord(c) >= 0 && EdgeOrientationCoord(c) < NumEdgeOrientations)
	require.True(t, UDSliceCoord(c) >= 0 && UDSliceCoord(c) < NumUDSliceCoords)
	require.True(t, CornerPermutationCoord(c) >= 0 && CornerPermutationCoord(c) < NumCornerPermutations)
}

// EdgePermutationCoord is only meaningful once the UD-slice edges sit
// in positions 8-11, so its bounds are checked against a scramble
// drawn from the phase-two subgroup <U,D,L2,R2,F2,B2>, which preserves
// that split, rather than against an arbitrary scramble.
func TestEdgePermutationCoordBounds(t *testing.T) {
	c := Solved()
	c.ApplyTurns([]Turn{
		{Up, Quarter}, {Left, Half}, {Down, CounterQuarter}, {Right, Half},
		{Front, Half}, {Back, Half}, {Up, Half},
	})

	require.Equal(t, 0, UDSliceCoord(c), "phase-two scramble must keep the UD-slice split intact")
	coord := EdgePermutationCoord(c)
	require.True(t, coord >= 0 && coord < NumEdgePermutations)
}

func TestCornerOrientationCoordRoundTrip(t *testing.T) {
	c := Solved()
	c.ApplyTurns([]Turn{{Front, Quarter}, {Right, CounterQuarter}, {Back, Half}})

	coord := CornerOrientationCoord(c)
	var rebuilt CubieCube
	SetCornerOrientationCoord(&rebuilt, coord)
	require.Equal(t, coord, CornerOrientationCoord(rebuilt))
}

func TestEdgeOrientationCoordRoundTrip(t *testing.T) {
	c := Solved()
	c.ApplyTurns([]Turn{{Front, Quarter}, {Back, Quarter}})

	coord := EdgeOrientationCoord(c)
	var rebuilt CubieCube
	SetEdgeOrientationCoord(&rebuilt, coord)
	require.Equal(t, coord, EdgeOrientationCoord(rebuilt))
}

func TestValidateReportsPieceMultiset(t *testing.T) {
	c := Solved()
	c.Corners[0], c.Corners[1] = c.Corners[1], c.Corners[0]
	c.Corners[0].Piece = c.Corners[1].Piece // duplicate a piece, drop another
	errs := c.Validate()
	require.NotEmpty(t, errs)
	found := false
	for _, err := range errs {
		if ve, ok := err.(*ValidityError); ok && ve.Kind == PieceMultiset {
			found = true
		}
	}
	require.True(t, found, "expected a PieceMultiset violation, got %v", errs)
}

func TestValidateReportsCornerTwistSum(t *testing.T) {
	c := Solved()
	c.Corners[0].Ori = 1
	errs := c.Validate()
	require.NotEmpty(t, errs)
	found := false
	for _, err := range errs {
		if ve, ok := err.(*ValidityError); ok && ve.Kind == CornerTwistSum {
			found = true
		}
	}
	require.True(t, found, "expected a CornerTwistSum violation, got %v", errs)
}

func TestValidateReportsEdgeFlipSum(t *testing.T) {
	c := Solved()
	c.Edges[0].Ori = 1
	errs := c.Validate()
	found := false
	for _, err := range errs {
		if ve, ok := err.(*ValidityError); ok && ve.Kind == EdgeFlipSum {
			found = true
		}
	}
	require.True(t, found, "expected an EdgeFlipSum violation, got %v", errs)
}

func TestValidateReportsParityMismatch(t *testing.T) {
	c := Solved()
	c.Corners[0].Piece, c.Corners[1].Piece = c.Corners[1].Piece, c.Corners[0].Piece
	errs := c.Validate()
	found := false
	for _, err := range errs {
		if ve, ok := err.(*ValidityError); ok && ve.Kind == ParityMismatch {
			found = true
		}
	}
	require.True(t, found, "expected a ParityMismatch violation, got %v", errs)
}

// TestPhysicalTurnsStayUnmirrored checks the claim turnTable's
// construction relies on: self-Chain-ing a physical quarter turn
// (orientations always <3) with itself, any number of times, never
// produces a mirrored (>=3) orientation. Every half and counter-quarter
// entry in turnTable is built this way, so this covers all 18 turns.
func TestPhysicalTurnsStayUnmirrored(t *testing.T) {
	for _, face := range []Face{Up, Down, Back, Front, Left, Right} {
		for _, amount := range []Amount{Quarter, Half, CounterQuarter} {
			turn := turnTable[face][amount]
			for i, cs := range turn.Corners {
				require.Less(t, cs.Ori, 3, "face %v amount %v corner %d mirrored", face, amount, i)
			}
			for i, es := range turn.Edges {
				require.Less(t, es.Ori, 2, "face %v amount %v edge %d out of range", face, amount, i)
			}
		}
	}
}
