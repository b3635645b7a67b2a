// Package scorer implements the weighted difficulty score and category
// bands of §4.4, driven off a hint.Trace produced by solve_with_hints.
package scorer

import (
	"math"

	"sudoku.dev/engine/internal/hint"
)

// TechniqueDifficulty looks up a technique's canonical difficulty from the
// §4.3 table. Techniques outside the known battery (a future addition, or a
// caller-supplied extension) default to 50 — comfortably mid-scale, so an
// unrecognized technique doesn't silently zero out a puzzle's difficulty.
func TechniqueDifficulty(tech hint.Technique) int {
	if d, ok := hint.Difficulty[tech]; ok {
		return d
	}
	return 50
}

// Breakdown reports the inputs that produced a Score result, for callers
// that want to explain a difficulty rating rather than just display it.
type Breakdown struct {
	MaxDifficulty    int
	MeanDifficulty   float64
	DistinctNonTrivial int
	StepCount        int
}

// Score implements score(trace) -> (difficulty, category, breakdown) from
// §4.4. An unsolved trace (the hint battery stalled before full placement)
// scores 100/grandmaster outright. A trace with no nonzero-difficulty steps
// (only error corrections) scores 1. Otherwise the weighted formula
// combines the hardest technique used, the mean difficulty across all
// steps, and a capped bonus for how many distinct techniques contributed.
func Score(trace hint.Trace) (int, string, Breakdown) {
	if !trace.Solved {
		return 100, DifficultyToCategory(100), Breakdown{}
	}

	var nonzero []int
	seen := map[hint.Technique]bool{}
	for _, step := range trace.Steps {
		if step.Difficulty == 0 {
			continue
		}
		nonzero = append(nonzero, step.Difficulty)
		seen[step.Technique] = true
	}
	if len(nonzero) == 0 {
		return 1, DifficultyToCategory(1), Breakdown{StepCount: len(trace.Steps)}
	}

	maxD := 0
	sum := 0
	for _, d := range nonzero {
		if d > maxD {
			maxD = d
		}
		sum += d
	}
	mean := float64(sum) / float64(len(nonzero))
	k := len(seen)
	diversityBonus := math.Min(0.5*float64(k), 5.0)

	weighted := 0.7*float64(maxD) + 0.2*mean + diversityBonus
	score := int(math.Round(weighted))
	if score < 1 {
		score = 1
	}
	if score > 100 {
		score = 100
	}

	return score, DifficultyToCategory(score), Breakdown{
		MaxDifficulty:      maxD,
		MeanDifficulty:     mean,
		DistinctNonTrivial: k,
		StepCount:          len(trace.Steps),
	}
}

// band names a category's inclusive difficulty range.
type band struct {
	name     string
	lo, hi   int
}

// bands mirrors §4.3's category table exactly.
var bands = []band{
	{"error", 0, 0},
	{"trivial", 1, 8},
	{"basic", 9, 25},
	{"intermediate", 26, 45},
	{"tough", 46, 68},
	{"diabolical", 69, 84},
	{"extreme", 85, 92},
	{"master", 93, 96},
	{"grandmaster", 97, 100},
}

// DifficultyToCategory maps a clamped 0-100 difficulty to its band name.
// 100 (unsolvable-by-logic) falls into grandmaster, which the table already
// extends to cover per §4.4's explicit "unsolved -> grandmaster" rule.
func DifficultyToCategory(d int) string {
	for _, b := range bands {
		if d >= b.lo && d <= b.hi {
			return b.name
		}
	}
	return "grandmaster"
}
