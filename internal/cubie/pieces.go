package cubie

// Face identifies one of the six faces of the cube, named by its
// center color in the solved state. The order is also the face order
// of internal/facelet's 54-sticker array and the numbering of Color,
// so it cannot change without changing that layout.
type Face int

const (
	Up Face = iota
	Down
	Back
	Front
	Left
	Right
)

func (f Face) String() string {
	return [...]string{"U", "D", "B", "F", "L", "R"}[f]
}

// Color is a sticker color, one per face in the solved cube.
type Color int

const (
	ColorUp Color = iota
	ColorDown
	ColorBack
	ColorFront
	ColorLeft
	ColorRight
)

func (c Color) String() string {
	return [...]string{"U", "D", "B", "F", "L", "R"}[c]
}

// CornerPosition is one of the eight corner slots on the cube. The
// order is load-bearing: every coordinate, table, and saved pruning
// index downstream is keyed by this ordering. The left-right mirror
// (symLR) pairs URF/UFL, UBR/ULB, DLF/DFR and DRB/DBL; symmetry.go
// derives it from the corner coordinates, not from this order.
type CornerPosition int

const (
	URF CornerPosition = iota
	UBR
	DLF
	DFR
	ULB
	UFL
	DRB
	DBL
)

func (p CornerPosition) String() string {
	return [...]string{"URF", "UBR", "DLF", "DFR", "ULB", "UFL", "DRB", "DBL"}[p]
}

// NumCorners is the number of corner positions.
const NumCorners = 8

// cornerColors gives the three solved-state sticker colors for each
// corner position, listed in the order (U/D face, F/B face, L/R
// face), the same convention original_source/src/cube/mod.rs uses to
// build its color hash.
var cornerColors = [NumCorners][3]Color{
	URF: {ColorUp, ColorFront, ColorRight},
	UBR: {ColorUp, ColorBack, ColorRight},
	DLF: {ColorDown, ColorFront, ColorLeft},
	DFR: {ColorDown, ColorFront, ColorRight},
	ULB: {ColorUp, ColorBack, ColorLeft},
	UFL: {ColorUp, ColorFront, ColorLeft},
	DRB: {ColorDown, ColorBack, ColorRight},
	DBL: {ColorDown, ColorBack, ColorLeft},
}

// EdgePosition is one of the twelve edge slots on the cube. The last
// four (FR, BR, BL, FL) are the UD-slice.
type EdgePosition int

const (
	UF EdgePosition = iota
	UR
	UB
	UL
	DF
	DR
	DB
	DL
	FR
	BR
	BL
	FL
)

func (p EdgePosition) String() string {
	return [...]string{"UF", "UR", "UB", "UL", "DF", "DR", "DB", "DL", "FR", "BR", "BL", "FL"}[p]
}

// NumEdges is the number of edge positions.
const NumEdges = 12

// UDSliceStart is the index of the first UD-slice edge position; the
// four positions from here to NumEdges-1 are FR, BR, BL, FL.
const UDSliceStart = 8

var edgeColors = [NumEdges][2]Color{
	UF: {ColorUp, ColorFront},
	UR: {ColorUp, ColorRight},
	UB: {ColorUp, ColorBack},
	UL: {ColorUp, ColorLeft},
	DF: {ColorDown, ColorFront},
	DR: {ColorDown, ColorRight},
	DB: {ColorDown, ColorBack},
	DL: {ColorDown, ColorLeft},
	FR: {ColorRight, ColorFront},
	BR: {ColorRight, ColorBack},
	BL: {ColorLeft, ColorBack},
	FL: {ColorLeft, ColorFront},
}

// colorBit hashes a set of colors into a bitmask, one bit per color,
// the same technique original_source/src/cube/mod.rs uses to identify
// a piece from its stickers in O(1) instead of scanning every known
// piece's color list.
func colorBit(colors ...Color) uint8 {
	var mask uint8
	for _, c := range colors {
		mask |= 1 << uint(c)
	}
	return mask
}

var cornerByColorMask map[uint8]CornerPosition
var edgeByColorMask map[uint8]EdgePosition

func init() {
	cornerByColorMask = make(map[uint8]CornerPosition, NumCorners)
	for pos, colors := range cornerColors {
		cornerByColorMask[colorBit(colors[0], colors[1], colors[2])] = CornerPosition(pos)
	}

	edgeByColorMask = make(map[uint8]EdgePosition, NumEdges)
	for pos, colors := range edgeColors {
		edgeByColorMask[colorBit(colors[0], colors[1])] = EdgePosition(pos)
	}
}

// ParseCornerByColors identifies the corner piece carrying the given
// three stickers, in any order. It returns PieceIdentificationError if
// no corner carries that combination of colors.
func ParseCornerByColors(a, b, c Color) (CornerPosition, error) {
	pos, ok := cornerByColorMask[colorBit(a, b, c)]
	if !ok {
		return 0, &PieceIdentificationError{Colors: []Color{a, b, c}}
	}
	return pos, nil
}

// CornerColorsInOrder returns a corner's three solved-state sticker
// colors in (U/D face, F/B face, L/R face) order, the slot order
// orientation 0, 1, 2 is measured against.
func CornerColorsInOrder(p CornerPosition) [3]Color {
	return cornerColors[p]
}

// EdgeColorsInOrder returns an edge's two solved-state sticker colors
// with the orientation-reference color first: the U/D color for the
// eight U- and D-layer edges, the L/R color for the four UD-slice edges.
// This matches the reference axis internal/facelet and symmetry.go use
// to measure edge orientation, not the axis order cornerColors uses.
func EdgeColorsInOrder(p EdgePosition) [2]Color {
	return edgeColors[p]
}

// ParseEdgeByColors identifies the edge piece carrying the given two
// stickers, in any order. It returns PieceIdentificationError if no
// edge carries that combination of colors.
func ParseEdgeByColors(a, b Color) (EdgePosition, error) {
	pos, ok := edgeByColorMask[colorBit(a, b)]
	if !ok {
		return 0, &PieceIdentificationError{Colors: []Color{a, b}}
	}
	return pos, nil
}
