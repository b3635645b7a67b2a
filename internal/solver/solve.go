package solver

import (
	"context"
	"time"

	"sudoku.dev/engine/internal/board"
)

// Stats captures search effort, mirroring the teacher's ports.Stats shape.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solve implements §4.2's solve: given already-propagated state, if every
// cell is a singleton it returns immediately; otherwise it picks an
// unfilled square per opts.ChooseSquare and tries each remaining digit (in
// opts.ChooseDigit order) in turn, recursing on a copy of the state. It
// returns the first success, or ErrNoSolution if no digit at any branch
// leads to one. Ties within MinDigits/MaxDigits are broken by ascending
// square index, so {min,min} and {max,max} runs are reproducible (used by
// IsUnique).
func Solve(ctx context.Context, st *board.State, opts Options) (*board.State, Stats, error) {
	start := time.Now()
	nodes := 0
	result, err := search(ctx, st.Clone(), &opts, &nodes)
	stats := Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	return result, stats, nil
}

func search(ctx context.Context, st *board.State, opts *Options, nodes *int) (*board.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrOverbudget
	}
	if opts.MaxNodes > 0 && *nodes >= opts.MaxNodes {
		return nil, ErrOverbudget
	}
	if st.IsSolved() {
		return st, nil
	}

	square, ok := pickSquare(st, opts)
	if !ok {
		return nil, ErrNoSolution
	}
	digits := pickDigitOrder(st.Candidates[square], opts)

	for _, d := range digits {
		(*nodes)++
		branch := st.Clone()
		if err := Assign(branch, square, d); err != nil {
			continue // contradiction on this branch, ordinary control flow
		}
		result, err := search(ctx, branch, opts, nodes)
		if err == nil {
			return result, nil
		}
		if err == ErrOverbudget {
			return nil, err
		}
	}
	return nil, ErrNoSolution
}

// pickSquare selects the next unfilled square per opts.ChooseSquare, with
// deterministic ties (ascending square index) for MinDigits/MaxDigits.
func pickSquare(st *board.State, opts *Options) (board.Square, bool) {
	switch opts.ChooseSquare {
	case RandomSquare:
		var candidates []board.Square
		for s := 0; s < board.NumSquares; s++ {
			if st.Values[s] == 0 {
				candidates = append(candidates, board.Square(s))
			}
		}
		if len(candidates) == 0 {
			return 0, false
		}
		return candidates[opts.rng().Intn(len(candidates))], true
	case MaxDigits:
		best := board.Square(-1)
		bestCount := -1
		for s := 0; s < board.NumSquares; s++ {
			if st.Values[s] != 0 {
				continue
			}
			c := st.Candidates[s].Count()
			if c > bestCount {
				bestCount = c
				best = board.Square(s)
			}
		}
		return best, best >= 0
	default: // MinDigits (MRV)
		best := board.Square(-1)
		bestCount := 10
		for s := 0; s < board.NumSquares; s++ {
			if st.Values[s] != 0 {
				continue
			}
			c := st.Candidates[s].Count()
			if c < bestCount {
				bestCount = c
				best = board.Square(s)
				if bestCount <= 1 {
					break
				}
			}
		}
		return best, best >= 0
	}
}

// pickDigitOrder returns m's digits ordered per opts.ChooseDigit.
func pickDigitOrder(m board.Mask, opts *Options) []board.Digit {
	digits := m.Digits()
	switch opts.ChooseDigit {
	case MaxDigit:
		for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
	case RandomDigit:
		r := opts.rng()
		r.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	}
	return digits
}
