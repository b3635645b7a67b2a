package board

import "testing"

func TestTopologyInvariants(t *testing.T) {
	if len(Units) != NumUnits {
		t.Fatalf("expected %d units, got %d", NumUnits, len(Units))
	}
	for s := 0; s < NumSquares; s++ {
		if len(Peers[s]) != 20 {
			t.Fatalf("square %d: expected 20 peers, got %d", s, len(Peers[s]))
		}
		seen := map[Square]bool{}
		for _, p := range Peers[s] {
			if p == Square(s) {
				t.Fatalf("square %d lists itself as a peer", s)
			}
			if seen[p] {
				t.Fatalf("square %d lists peer %d twice", s, p)
			}
			seen[p] = true
		}
	}
	for _, u := range Units {
		seen := map[Square]bool{}
		for _, s := range u.Squares {
			if seen[s] {
				t.Fatalf("unit %v has duplicate square %d", u.Kind, s)
			}
			seen[s] = true
		}
	}
}

func TestParseStringPadsAndSkipsIgnoredChars(t *testing.T) {
	v, err := ParseString("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v[0] != 5 || v[1] != 3 || v[2] != 0 {
		t.Fatalf("unexpected leading cells: %v", v[:3])
	}

	short, err := ParseString("53")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if short[0] != 5 || short[1] != 3 || short[2] != 0 || short[80] != 0 {
		t.Fatalf("short input not zero-padded: %v", short)
	}

	ignored, err := ParseString("5 3\n..#7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ignored[0] != 5 || ignored[1] != 3 || ignored[2] != 0 || ignored[3] != 0 || ignored[4] != 7 {
		t.Fatalf("unexpected cells with ignored chars: %v", ignored[:5])
	}
}

func TestRowConflictGrid(t *testing.T) {
	v, err := ParseString("11" + repeat(".", 79))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conf := Conflicts(v)
	if len(conf) == 0 {
		t.Fatalf("expected a conflict for duplicate 1s in row 0")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	solved := Values{}
	for i := range solved {
		solved[i] = Digit((i % 9) + 1)
	}
	s, err := Serialize(solved)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	back, err := Deserialize(s)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if back != solved {
		t.Fatalf("round trip mismatch: got %v want %v", back, solved)
	}
}

func TestSerializeRejectsUnsolved(t *testing.T) {
	var v Values
	if _, err := Serialize(v); err != ErrNotSolved {
		t.Fatalf("expected ErrNotSolved, got %v", err)
	}
}

func TestDeserializeExpandsRuns(t *testing.T) {
	// "a" = 1 empty, "f" = 6 empties: 81 = 9*(1 digit + "f") -> 9 + 9*6 = 63, not 81.
	// Build a string that is exactly 81 logical cells: one digit followed by
	// a run of 8 empties ('d'=4, 'd'=4), repeated 9 times.
	in := ""
	for i := 0; i < 9; i++ {
		in += "1dd"
	}
	v, err := Deserialize(in)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if v[0] != 1 || v[1] != 0 || v[8] != 0 {
		t.Fatalf("unexpected expansion: %v", v[:9])
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
