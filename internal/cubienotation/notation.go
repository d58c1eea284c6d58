// Package cubienotation tokenizes face-turn move sequences into
// cubie.Turn values. Grounded on the teacher's move_parser.go, reduced
// to the face-turn-only grammar this module models: no wide, slice, or
// whole-cube-rotation tokens, which belong to the array-cube/TUI layer
// this module does not implement.
package cubienotation

import (
	"fmt"
	"strings"

	"github.com/behrlich/cubie/internal/cubie"
)

// ParseError reports a token or sequence this package's grammar
// cannot recognize.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("move notation parse error: %s", e.Detail)
}

var faceLetters = map[byte]cubie.Face{
	'U': cubie.Up,
	'D': cubie.Down,
	'B': cubie.Back,
	'F': cubie.Front,
	'L': cubie.Left,
	'R': cubie.Right,
}

// ParseTurn parses a single token in the grammar <face>[2|'], where
// face is one of U, D, B, F, L, R; a bare face letter is a clockwise
// quarter turn, a trailing 2 a half turn, and a trailing ' a
// counterclockwise quarter turn.
func ParseTurn(token string) (cubie.Turn, error) {
	if len(token) == 0 {
		return cubie.Turn{}, &ParseError{Detail: "empty token"}
	}

	face, ok := faceLetters[token[0]]
	if !ok {
		return cubie.Turn{}, &ParseError{Detail: fmt.Sprintf("unknown face letter %q in %q", token[0], token)}
	}

	rest := token[1:]
	amount := cubie.Quarter
	switch rest {
	case "":
		amount = cubie.Quarter
	case "2":
		amount = cubie.Half
	case "'":
		amount = cubie.CounterQuarter
	default:
		return cubie.Turn{}, &ParseError{Detail: fmt.Sprintf("unrecognized modifier %q in %q", rest, token)}
	}

	return cubie.Turn{Face: face, Amount: amount}, nil
}

// ParseSequence splits a whitespace-separated move sequence and parses
// each token with ParseTurn, in order.
func ParseSequence(s string) ([]cubie.Turn, error) {
	fields := strings.Fields(s)
	turns := make([]cubie.Turn, 0, len(fields))
	for _, token := range fields {
		turn, err := ParseTurn(token)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", token, err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}
