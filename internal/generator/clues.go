// Package generator implements the puzzle generator of §4.4: a
// clue-removal baseline and a difficulty-targeted local search layered on
// top of it.
package generator

import (
	"context"
	"math/rand"
	"time"

	"sudoku.dev/engine/internal/board"
	"sudoku.dev/engine/internal/solver"
)

// GenerateWithClues implements generate_with_clues(n): sample a full grid,
// shuffle the 81 squares, and repeatedly try removing the next square,
// restoring it iff removal breaks uniqueness, until n clues remain (or no
// further removal preserves uniqueness).
func GenerateWithClues(ctx context.Context, rng *rand.Rand, n int) (*board.State, error) {
	full, _, err := solver.SampleFullGrid(ctx, rng)
	if err != nil {
		return nil, err
	}
	return carveToTarget(ctx, rng, full.Values, n)
}

// carveToTarget removes clues from a completed grid, in random square
// order, stopping once GivenCount reaches target or the shuffled order is
// exhausted. It never breaks uniqueness.
func carveToTarget(ctx context.Context, rng *rand.Rand, full board.Values, target int) (*board.State, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	working := full
	order := make([]int, board.NumSquares)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	st := board.NewState(working)
	for _, idx := range order {
		if st.GivenCount() <= target {
			break
		}
		if ctx.Err() != nil {
			return st, ctx.Err()
		}
		sq := board.Square(idx)
		if st.Values[sq] == 0 {
			continue
		}
		old := st.Values[sq]
		st.Values[sq] = 0
		candidate := board.NewState(st.Values)
		unique, _, err := solver.IsUnique(ctx, candidate, solver.DefaultOptions())
		if err != nil || !unique {
			st.Values[sq] = old
			continue
		}
		st = candidate
	}
	return st, nil
}
