package cubie

// Amount is how far a turn rotates a face, in quarter turns clockwise.
type Amount int

const (
	Quarter        Amount = 1 // 90 degrees clockwise
	Half           Amount = 2 // 180 degrees
	CounterQuarter Amount = 3 // 270 degrees clockwise == 90 degrees counter-clockwise
)

// Turn is a single face move: which face, how far.
type Turn struct {
	Face   Face
	Amount Amount
}

// turnTable[face][amount] is the precomputed transformation for every
// one of the 18 turns, built once in init() from the six literal
// quarter-turn tables below. Read-only after init; safe for any
// number of concurrent readers.
var turnTable [6][4]CubieCube

// quarterTurnCorners/quarterTurnEdges are the canonical base
// quarter-turn transformations, transcribed verbatim from spec.md §6.
// Each entry lists the sticker landing at the position with that
// index, in CornerPosition/EdgePosition order.
var quarterTurnCorners = [6][NumCorners]CornerSticker{
	Up: {
		URF: {UBR, 0}, UBR: {ULB, 0}, DLF: {DLF, 0}, DFR: {DFR, 0},
		ULB: {UFL, 0}, UFL: {URF, 0}, DRB: {DRB, 0}, DBL: {DBL, 0},
	},
	Down: {
		URF: {URF, 0}, UBR: {UBR, 0}, DLF: {DBL, 0}, DFR: {DLF, 0},
		ULB: {ULB, 0}, UFL: {UFL, 0}, DRB: {DFR, 0}, DBL: {DRB, 0},
	},
	Back: {
		URF: {URF, 0}, UBR: {DRB, 1}, DLF: {DLF, 0}, DFR: {DFR, 0},
		ULB: {UBR, 2}, UFL: {UFL, 0}, DRB: {DBL, 2}, DBL: {ULB, 1},
	},
	Front: {
		URF: {UFL, 2}, UBR: {UBR, 0}, DLF: {DFR, 2}, DFR: {URF, 1},
		ULB: {ULB, 0}, UFL: {DLF, 1}, DRB: {DRB, 0}, DBL: {DBL, 0},
	},
	Left: {
		URF: {URF, 0}, UBR: {UBR, 0}, DLF: {UFL, 1}, DFR: {DFR, 0},
		ULB: {DBL, 1}, UFL: {ULB, 2}, DRB: {DRB, 0}, DBL: {DLF, 2},
	},
	Right: {
		URF: {DFR, 1}, UBR: {URF, 2}, DLF: {DLF, 0}, DFR: {DRB, 2},
		ULB: {ULB, 0}, UFL: {UFL, 0}, DRB: {UBR, 1}, DBL: {DBL, 0},
	},
}

var quarterTurnEdges = [6][NumEdges]EdgeSticker{
	Up: {
		UF: {UR, 0}, UR: {UB, 0}, UB: {UL, 0}, UL: {UF, 0},
		DF: {DF, 0}, DR: {DR, 0}, DB: {DB, 0}, DL: {DL, 0},
		FR: {FR, 0}, BR: {BR, 0}, BL: {BL, 0}, FL: {FL, 0},
	},
	Down: {
		UF: {UF, 0}, UR: {UR, 0}, UB: {UB, 0}, UL: {UL, 0},
		DF: {DL, 0}, DR: {DF, 0}, DB: {DR, 0}, DL: {DB, 0},
		FR: {FR, 0}, BR: {BR, 0}, BL: {BL, 0}, FL: {FL, 0},
	},
	Back: {
		UF: {UF, 0}, UR: {UR, 0}, UB: {BR, 1}, UL: {UL, 0},
		DF: {DF, 0}, DR: {DR, 0}, DB: {BL, 1}, DL: {DL, 0},
		FR: {FR, 0}, BR: {DB, 1}, BL: {UB, 1}, FL: {FL, 0},
	},
	Front: {
		UF: {FL, 1}, UR: {UR, 0}, UB: {UB, 0}, UL: {UL, 0},
		DF: {FR, 1}, DR: {DR, 0}, DB: {DB, 0}, DL: {DL, 0},
		FR: {UF, 1}, BR: {BR, 0}, BL: {BL, 0}, FL: {DF, 1},
	},
	Left: {
		UF: {UF, 0}, UR: {UR, 0}, UB: {UB, 0}, UL: {BL, 0},
		DF: {DF, 0}, DR: {DR, 0}, DB: {DB, 0}, DL: {FL, 0},
		FR: {FR, 0}, BR: {BR, 0}, BL: {DL, 0}, FL: {UL, 0},
	},
	Right: {
		UF: {UF, 0}, UR: {FR, 0}, UB: {UB, 0}, UL: {UL, 0},
		DF: {DF, 0}, DR: {BR, 0}, DB: {DB, 0}, DL: {DL, 0},
		FR: {DR, 0}, BR: {UR, 0}, BL: {BL, 0}, FL: {FL, 0},
	},
}

func init() {
	for _, face := range []Face{Up, Down, Back, Front, Left, Right} {
		quarter := CubieCube{Corners: quarterTurnCorners[face], Edges: quarterTurnEdges[face]}
		half := Chain(quarter, quarter)
		counter := Chain(half, quarter)

		turnTable[face][Quarter] = quarter
		turnTable[face][Half] = half
		turnTable[face][CounterQuarter] = counter
	}
}
