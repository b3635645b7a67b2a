package scorer

import (
	"testing"

	"sudoku.dev/engine/internal/hint"
)

func TestScoreUnsolvedIsGrandmaster(t *testing.T) {
	trace := hint.Trace{Solved: false}
	d, cat, _ := Score(trace)
	if d != 100 {
		t.Fatalf("expected difficulty 100, got %d", d)
	}
	if cat != "grandmaster" {
		t.Fatalf("expected category grandmaster, got %s", cat)
	}
}

func TestScoreAllZeroStepsIsOne(t *testing.T) {
	trace := hint.Trace{
		Solved: true,
		Steps: []hint.Step{
			{Technique: hint.IncorrectValue, Difficulty: 0},
			{Technique: hint.MissingCandidate, Difficulty: 0},
		},
	}
	d, cat, _ := Score(trace)
	if d != 1 {
		t.Fatalf("expected difficulty 1, got %d", d)
	}
	if cat != "trivial" {
		t.Fatalf("expected category trivial, got %s", cat)
	}
}

func TestScoreWeightedFormula(t *testing.T) {
	trace := hint.Trace{
		Solved: true,
		Steps: []hint.Step{
			{Technique: hint.NakedSingle, Difficulty: 1},
			{Technique: hint.HiddenSingle, Difficulty: 7},
			{Technique: hint.NakedPairs, Difficulty: 9},
		},
	}
	d, _, b := Score(trace)
	if b.MaxDifficulty != 9 {
		t.Fatalf("expected max 9, got %d", b.MaxDifficulty)
	}
	if b.DistinctNonTrivial != 3 {
		t.Fatalf("expected 3 distinct techniques, got %d", b.DistinctNonTrivial)
	}
	// M=9, A=(1+7+9)/3=5.667, bonus=min(1.5,5)=1.5 -> 0.7*9+0.2*5.667+1.5=6.3+1.133+1.5=8.933 -> round 9
	if d != 9 {
		t.Fatalf("expected weighted score 9, got %d", d)
	}
}

func TestDifficultyToCategoryBands(t *testing.T) {
	cases := map[int]string{
		0:   "error",
		1:   "trivial",
		8:   "trivial",
		9:   "basic",
		45:  "intermediate",
		46:  "tough",
		84:  "diabolical",
		92:  "extreme",
		96:  "master",
		97:  "grandmaster",
		100: "grandmaster",
	}
	for d, want := range cases {
		if got := DifficultyToCategory(d); got != want {
			t.Errorf("DifficultyToCategory(%d) = %s, want %s", d, got, want)
		}
	}
}

func TestTechniqueDifficultyDefaultsForUnknown(t *testing.T) {
	if got := TechniqueDifficulty("not_a_real_technique"); got != 50 {
		t.Fatalf("expected default 50, got %d", got)
	}
	if got := TechniqueDifficulty(hint.XWing); got != 46 {
		t.Fatalf("expected 46, got %d", got)
	}
}
