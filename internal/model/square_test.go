package model

import "testing"

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  Square
		ok    bool
	}{
		{"a1", Square{File: 0, Rank: 0}, true},
		{"h8", Square{File: 7, Rank: 7}, true},
		{"e4", Square{File: 4, Rank: 3}, true},
		{"", Square{}, false},
		{"e", Square{}, false},
		{"e44", Square{}, false},
		{"i1", Square{}, false},
		{"a0", Square{}, false},
		{"a9", Square{}, false},
		{"E4", Square{}, false},
		{"4e", Square{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseSquare(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseSquare(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseSquare(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		deltaFile int
		deltaRank int
		want      string
		ok        bool
	}{
		{"one up", "e4", 0, 1, "e5", true},
		{"diagonal", "e4", 1, 1, "f5", true},
		{"off left edge", "a1", -1, 0, "", false},
		{"off bottom edge", "a1", 0, -1, "", false},
		{"off right edge", "h8", 1, 0, "", false},
		{"off top edge", "h8", 0, 1, "", false},
		{"long jump off board", "e4", 0, 5, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, ok := ParseSquare(tt.from)
			if !ok {
				t.Fatalf("bad test square %q", tt.from)
			}
			got, ok := from.Offset(tt.deltaFile, tt.deltaRank)
			if ok != tt.ok {
				t.Fatalf("Offset(%d, %d) ok = %v, want %v", tt.deltaFile, tt.deltaRank, ok, tt.ok)
			}
			if ok && got.Notation() != tt.want {
				t.Fatalf("Offset(%d, %d) = %s, want %s", tt.deltaFile, tt.deltaRank, got.Notation(), tt.want)
			}
		})
	}
}

func TestSquareNotationRoundTrip(t *testing.T) {
	squares := AllSquares()
	if len(squares) != 64 {
		t.Fatalf("AllSquares returned %d squares, want 64", len(squares))
	}
	seen := make(map[string]bool)
	for _, sq := range squares {
		n := sq.Notation()
		if seen[n] {
			t.Fatalf("duplicate square %s", n)
		}
		seen[n] = true
		parsed, ok := ParseSquare(n)
		if !ok || parsed != sq {
			t.Fatalf("round trip failed for %s", n)
		}
	}
}
