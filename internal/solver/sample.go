package solver

import (
	"context"
	"math/rand"

	"sudoku.dev/engine/internal/board"
)

// SampleFullGrid implements §4.2's sample_full_grid: solve({}) with
// ChooseDigit=Random to produce a randomly permuted complete grid, seeding
// the generator. rng may be nil, in which case Solve seeds a fresh
// time-based source itself.
func SampleFullGrid(ctx context.Context, rng *rand.Rand) (*board.State, Stats, error) {
	st := &board.State{}
	for i := range st.Candidates {
		st.Candidates[i] = board.Full
	}
	opts := Options{ChooseSquare: MinDigits, ChooseDigit: RandomDigit, Rand: rng}
	return Solve(ctx, st, opts)
}
