package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"sudoku.dev/engine/internal/board"
)

func TestGenerateWithCluesReachesTargetOrFewer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rng := rand.New(rand.NewSource(42))
	st, err := GenerateWithClues(ctx, rng, 30)
	if err != nil {
		t.Fatalf("GenerateWithClues: %v", err)
	}
	if st.GivenCount() > 30 {
		t.Fatalf("expected at most 30 givens, got %d", st.GivenCount())
	}
	if conf := board.Conflicts(st.Values); len(conf) != 0 {
		t.Fatalf("carved puzzle has conflicts: %v", conf)
	}
}

func TestGenerateWithDifficultyReturnsUsablePuzzle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	opts := Options{
		Target:      10,
		Tolerance:   8,
		MaxAttempts: 200,
		Rand:        rand.New(rand.NewSource(7)),
	}
	result, err := GenerateWithDifficulty(ctx, opts)
	if err != nil {
		t.Fatalf("GenerateWithDifficulty: %v", err)
	}
	if conf := board.Conflicts(result.Puzzle); len(conf) != 0 {
		t.Fatalf("generated puzzle has conflicts: %v", conf)
	}
	if result.Difficulty <= 0 {
		t.Fatalf("expected a positive difficulty score, got %d", result.Difficulty)
	}
}

func TestGenerateByCategoryFastPath(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	result, err := GenerateByCategory(ctx, "trivial", Options{Rand: rand.New(rand.NewSource(3))})
	if err != nil {
		t.Fatalf("GenerateByCategory: %v", err)
	}
	if conf := board.Conflicts(result.Puzzle); len(conf) != 0 {
		t.Fatalf("category puzzle has conflicts: %v", conf)
	}
}
