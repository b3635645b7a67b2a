package solver

import (
	"context"

	"sudoku.dev/engine/internal/board"
)

// IsUnique implements §4.2's is_unique: solve once with ChooseDigit=MinDigit
// and once with ChooseDigit=MaxDigit, reporting unique iff both runs
// succeed with identical placements (P4). Any solver failure other than
// "no solution" (i.e. a budget overrun) is surfaced as
// ErrUniquenessIndeterminate rather than silently reported as non-unique.
func IsUnique(ctx context.Context, st *board.State, opts Options) (bool, Stats, error) {
	minOpts := opts
	minOpts.ChooseDigit = MinDigit
	first, stats, err := Solve(ctx, st, minOpts)
	if err == ErrNoSolution {
		return false, stats, nil
	}
	if err != nil {
		return false, stats, ErrUniquenessIndeterminate
	}

	maxOpts := opts
	maxOpts.ChooseDigit = MaxDigit
	second, stats2, err := Solve(ctx, st, maxOpts)
	stats.Nodes += stats2.Nodes
	stats.Duration += stats2.Duration
	if err == ErrNoSolution {
		// Contradictory: the min-order run found a solution but the
		// max-order run did not. Treat conservatively as indeterminate
		// rather than reporting a possibly-wrong uniqueness verdict.
		return false, stats, ErrUniquenessIndeterminate
	}
	if err != nil {
		return false, stats, ErrUniquenessIndeterminate
	}

	return first.Values == second.Values, stats, nil
}
