package generator

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// categoryPreset names the (target, tolerance) midpoint for a named
// category, per §4.4's table.
type categoryPreset struct {
	target    float64
	tolerance float64
}

var categoryPresets = map[string]categoryPreset{
	"trivial":      {4, 4},
	"basic":        {17, 8},
	"intermediate": {35.5, 9.5},
	"tough":        {56, 12},
	"diabolical":   {76, 8},
	"extreme":      {88, 4},
	"master":       {94, 2},
	"grandmaster":  {98, 1},
}

// fastPathRounds bounds how many generate_with_clues attempts
// GenerateByCategory tries before falling back to annealing, for the
// easy categories where clue-count alone reliably predicts difficulty.
const fastPathRounds = 8

// fastPathCategories are attempted via the cheap clue-removal baseline
// before reaching for the full local search.
var fastPathCategories = map[string][2]int{
	"trivial":      {36, 45},
	"basic":        {30, 38},
	"intermediate": {24, 32},
}

// GenerateByCategory implements generate_by_category(cat, opts): resolve
// cat to its (target, tolerance) preset, then either take the fast path
// (repeated generate_with_clues filtered by scorer, for the easier bands)
// or fall back to GenerateWithDifficulty's annealing search.
func GenerateByCategory(ctx context.Context, category string, opts Options) (Result, error) {
	preset, ok := categoryPresets[category]
	if !ok {
		preset = categoryPresets["basic"]
	}
	if opts.Target == 0 {
		opts.Target = int(math.Round(preset.target))
	}
	if opts.Tolerance == 0 {
		opts.Tolerance = int(math.Ceil(preset.tolerance))
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if cluesRange, fast := fastPathCategories[category]; fast {
		if result, ok := tryFastPath(ctx, rng, cluesRange, opts); ok {
			return result, nil
		}
	}

	return GenerateWithDifficulty(ctx, opts)
}

func tryFastPath(ctx context.Context, rng *rand.Rand, cluesRange [2]int, opts Options) (Result, bool) {
	lo, hi := cluesRange[0], cluesRange[1]
	for i := 0; i < fastPathRounds; i++ {
		if ctx.Err() != nil {
			return Result{}, false
		}
		n := lo
		if hi > lo {
			n = lo + rng.Intn(hi-lo+1)
		}
		st, err := GenerateWithClues(ctx, rng, n)
		if err != nil {
			continue
		}
		score, cat, err := evaluate(ctx, st.Values)
		if err != nil {
			continue
		}
		if abs(score-opts.Target) <= opts.Tolerance {
			return Result{Puzzle: st.Values, Difficulty: score, Category: cat, Evaluations: i + 1, Success: true}, true
		}
	}
	return Result{}, false
}
