package cubie

// Chain composes two cube-shaped values by the non-commutative rule
// spec.md pins down: to find what sits at position i after right is
// applied on top of left, ask right which source position fed
// position i, then ask left what was at that source. Left-to-right
// order matters and must be preserved by every call site.
func Chain(left, right CubieCube) CubieCube {
	var result CubieCube
	for i, r := range right.Corners {
		l := left.Corners[r.Piece]
		result.Corners[i] = CornerSticker{
			Piece: l.Piece,
			Ori:   combineCornerOri(l.Ori, r.Ori),
		}
	}
	for i, r := range right.Edges {
		l := left.Edges[r.Piece]
		result.Edges[i] = EdgeSticker{
			Piece: l.Piece,
			Ori:   combineEdgeOri(l.Ori, r.Ori),
		}
	}
	return result
}

// combineCornerOri implements the augmented-group orientation
// arithmetic of spec.md §4.2: orientations 0-2 are plain twists,
// orientations 3-5 mean "mirrored, twist is value mod 3". The four
// cases are not reducible to a single modular formula because mixing
// a mirrored and an unmirrored operand changes whether the mirror bit
// survives.
func combineCornerOri(o1, o2 int) int {
	switch {
	case o1 < 3 && o2 < 3:
		return (o1 + o2) % 3
	case o1 >= 3 && o2 >= 3:
		return mod(o1-o2, 3)
	case o1 < 3 && o2 >= 3:
		sum := o1 + o2
		if sum >= 6 {
			sum -= 3
		}
		return sum
	default: // o1 >= 3 && o2 < 3
		return mod(o1-o2, 3)
	}
}

// combineEdgeOri is plain mod-2 addition; edges never mirror-encode.
func combineEdgeOri(o1, o2 int) int {
	return (o1 + o2) % 2
}

func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
