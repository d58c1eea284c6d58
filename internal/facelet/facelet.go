// Package facelet implements the flat 54-sticker array form of a cube
// and the two conversions to and from the cubie-level model in
// internal/cubie. It is the array-cube boundary of this module: no
// move engine, no display editor, construction and conversion only.
package facelet

import (
	"fmt"
	"strings"

	"github.com/behrlich/cubie/internal/cubie"
)

// NumFacelets is the size of the flat sticker array: six faces of
// nine stickers each.
const NumFacelets = 54

// Cube is the array-cube representation: 54 sticker colors, six
// 9-byte faces in the order UP, DOWN, BACK, FRONT, LEFT, RIGHT, each
// face in row-major order as seen from outside the cube.
type Cube struct {
	Facelets [NumFacelets]cubie.Color
}

// faceOffset is the index of a face's first facelet.
func faceOffset(f cubie.Face) int {
	return int(f) * 9
}

// Solved returns the cube with every face filled with its own color.
func Solved() Cube {
	var c Cube
	for _, f := range allFaces {
		color := cubie.Color(f)
		for i := 0; i < 9; i++ {
			c.Facelets[faceOffset(f)+i] = color
		}
	}
	return c
}

var allFaces = [6]cubie.Face{cubie.Up, cubie.Down, cubie.Back, cubie.Front, cubie.Left, cubie.Right}

// At returns the sticker at (face, row, col), row and col in [0,3).
func (c Cube) At(f cubie.Face, row, col int) cubie.Color {
	return c.Facelets[faceOffset(f)+row*3+col]
}

func (c *Cube) set(f cubie.Face, row, col int, color cubie.Color) {
	c.Facelets[faceOffset(f)+row*3+col] = color
}

// String renders the cube as six lines, one face per line in the
// canonical UP/DOWN/BACK/FRONT/LEFT/RIGHT order: the face letter, a
// space, then its nine stickers as color letters. This is a display
// form; Digits is the form ParseFacelets reads back.
func (c Cube) String() string {
	var b strings.Builder
	for i, f := range allFaces {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s ", f)
		for j := 0; j < 9; j++ {
			b.WriteString(c.Facelets[faceOffset(f)+j].String())
		}
	}
	return b.String()
}

// Digits renders the cube as NumFacelets single-digit color codes with
// no separators, the flat form ParseFacelets reads back.
func (c Cube) Digits() string {
	var b strings.Builder
	b.Grow(NumFacelets)
	for _, color := range c.Facelets {
		fmt.Fprintf(&b, "%d", color)
	}
	return b.String()
}

// ParseError reports a malformed facelet string: wrong length or an
// unrecognized color code.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("facelet parse error: %s", e.Detail)
}

// ParseFacelets reads a cube from exactly NumFacelets single-digit
// color codes (0-5, in UP/DOWN/BACK/FRONT/LEFT/RIGHT/ color order).
// The digits 6-9 are rejected as unrecognized color codes; any
// non-digit character is ignored as a separator.
func ParseFacelets(s string) (Cube, error) {
	var c Cube
	i := 0
	for _, r := range s {
		if r >= '6' && r <= '9' {
			return Cube{}, &ParseError{Detail: fmt.Sprintf("unrecognized color code %q", r)}
		}
		if r < '0' || r > '5' {
			continue
		}
		if i >= NumFacelets {
			return Cube{}, &ParseError{Detail: fmt.Sprintf("too many stickers, want %d", NumFacelets)}
		}
		c.Facelets[i] = cubie.Color(r - '0')
		i++
	}
	if i != NumFacelets {
		return Cube{}, &ParseError{Detail: fmt.Sprintf("got %d stickers, want %d", i, NumFacelets)}
	}
	return c, nil
}
