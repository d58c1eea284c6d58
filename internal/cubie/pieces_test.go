package cubie

import "testing"

func TestParseCornerByColorsAnyOrder(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Color
		want    CornerPosition
	}{
		{"in order", ColorUp, ColorFront, ColorRight, URF},
		{"reversed", ColorRight, ColorFront, ColorUp, URF},
		{"shuffled", ColorFront, ColorUp, ColorRight, URF},
		{"DBL", ColorDown, ColorBack, ColorLeft, DBL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCornerByColors(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCornerByColors(%v,%v,%v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestParseCornerByColorsInvalid(t *testing.T) {
	_, err := ParseCornerByColors(ColorUp, ColorDown, ColorFront)
	if err == nil {
		t.Fatal("expected error for a color combination no corner carries")
	}
	if _, ok := err.(*PieceIdentificationError); !ok {
		t.Errorf("got error type %T, want *PieceIdentificationError", err)
	}
}

func TestParseEdgeByColorsAnyOrder(t *testing.T) {
	got, err := ParseEdgeByColors(ColorRight, ColorUp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != UR {
		t.Errorf("ParseEdgeByColors(R,U) = %v, want UR", got)
	}
}

func TestParseEdgeByColorsInvalid(t *testing.T) {
	if _, err := ParseEdgeByColors(ColorUp, ColorDown); err == nil {
		t.Fatal("expected error for opposite-face colors")
	}
}
