package solver

import (
	"context"
	"testing"
	"time"

	"sudoku.dev/engine/internal/board"
)

const sampleEasy = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestParseGridAndSolveEasy(t *testing.T) {
	st, err := ParseGrid(sampleEasy)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, stats, err := Solve(ctx, st, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d)", err, stats.Nodes)
	}
	if !out.IsSolved() {
		t.Fatalf("solution has empty cells: %v", out.Values)
	}
	if conf := board.Conflicts(out.Values); len(conf) != 0 {
		t.Fatalf("solution has conflicts: %v", conf)
	}
}

func TestRowConflictFailsToParse(t *testing.T) {
	input := "11" + repeatDots(79)
	if _, err := ParseGrid(input); err == nil {
		t.Fatalf("expected malformed input error for duplicate row clues")
	}
}

func TestEmptyGridSolvesButNotUnique(t *testing.T) {
	st, err := ParseGrid(repeatDots(81))
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, _, err = Solve(ctx, st, DefaultOptions())
	if err != nil {
		t.Fatalf("expected a solution for the empty grid: %v", err)
	}

	unique, _, err := IsUnique(ctx, st, DefaultOptions())
	if err != nil {
		t.Fatalf("IsUnique failed: %v", err)
	}
	if unique {
		t.Fatalf("empty grid must not be unique")
	}
}

func TestIsUniqueOnEasyPuzzle(t *testing.T) {
	st, err := ParseGrid(sampleEasy)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	unique, _, err := IsUnique(ctx, st, DefaultOptions())
	if err != nil {
		t.Fatalf("IsUnique failed: %v", err)
	}
	if !unique {
		t.Fatalf("classic easy puzzle expected to be unique")
	}
}

func TestSampleFullGridIsComplete(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	st, _, err := SampleFullGrid(ctx, nil)
	if err != nil {
		t.Fatalf("SampleFullGrid failed: %v", err)
	}
	if !st.IsSolved() {
		t.Fatalf("sampled grid is not fully placed")
	}
	if conf := board.Conflicts(st.Values); len(conf) != 0 {
		t.Fatalf("sampled grid has conflicts: %v", conf)
	}
}

func repeatDots(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '.'
	}
	return string(b)
}
