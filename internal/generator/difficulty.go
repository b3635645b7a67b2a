package generator

import (
	"context"
	"math"
	"math/rand"
	"time"

	"sudoku.dev/engine/internal/board"
	"sudoku.dev/engine/internal/hint"
	"sudoku.dev/engine/internal/scorer"
	"sudoku.dev/engine/internal/solver"
)

// Options configures GenerateWithDifficulty, per §4.4.
type Options struct {
	Target      int
	Tolerance   int
	MaxAttempts int
	StartPuzzle *board.Values
	Rand        *rand.Rand
}

// Result is the outcome of a difficulty-targeted generation run: the best
// puzzle found, its measured score/category, and how many evaluations it
// took. Success is false only when Target/Tolerance was never met — the
// puzzle returned is still usable (the generator's failure semantics always
// return *some* result).
type Result struct {
	Puzzle      board.Values
	Difficulty  int
	Category    string
	Evaluations int
	Success     bool
}

const (
	stepsPerRound  = 50
	innerAttempts  = 20
	initialTemp    = 10.0
	coolingRate    = 0.995
	minimalClues   = 24
	minimalSpread  = 6 // minimal carve target is in [minimalClues, minimalClues+minimalSpread]
)

// GenerateWithDifficulty implements generate_with_difficulty(opts) from
// §4.4: start from a minimal (or caller-supplied) puzzle, then locally
// search add/remove/swap moves with Boltzmann acceptance, a one-move tabu,
// multi-start restarts, and geometric cooling until the score lands within
// tolerance of target (or attempts run out, in which case the closest
// puzzle seen is returned).
func GenerateWithDifficulty(ctx context.Context, opts Options) (Result, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 2000
	}
	rounds := maxAttempts / 100
	if rounds < 1 {
		rounds = 1
	}

	var best Result
	best.Difficulty = -1
	bestGap := math.MaxInt32
	evaluations := 0

	for round := 0; round < rounds; round++ {
		if ctx.Err() != nil {
			return best, ctx.Err()
		}

		full, current, err := seedRound(ctx, rng, opts, round)
		if err != nil {
			continue
		}

		score, cat, err := evaluate(ctx, current)
		if err != nil {
			continue
		}
		evaluations++

		temp := initialTemp
		lastMoved := board.Square(-1)

		for step := 0; step < stepsPerRound; step++ {
			gap := score - opts.Target
			if abs(gap) <= opts.Tolerance {
				return Result{Puzzle: current, Difficulty: score, Category: cat, Evaluations: evaluations, Success: true}, nil
			}
			if abs(gap) < bestGap {
				bestGap = abs(gap)
				best = Result{Puzzle: current, Difficulty: score, Category: cat, Evaluations: evaluations, Success: false}
			}

			improved := false
			for attempt := 0; attempt < innerAttempts && !improved; attempt++ {
				var next board.Values
				var moved board.Square
				var ok bool
				if gap > 0 {
					next, moved, ok = tryAddClue(rng, current, full, lastMoved)
				} else {
					next, moved, ok = tryRemoveClue(ctx, rng, current, lastMoved)
				}
				if !ok {
					if attempt > innerAttempts/2 {
						if swapped, swapMoved, swapOK := trySwap(ctx, rng, current, full, lastMoved); swapOK {
							next, moved, ok = swapped, swapMoved, true
						}
					}
					if !ok {
						continue
					}
				}

				nextScore, nextCat, err := evaluate(ctx, next)
				if err != nil {
					continue
				}
				evaluations++
				nextGap := abs(nextScore - opts.Target)

				accept := nextGap < abs(gap)
				if !accept {
					delta := float64(abs(gap) - nextGap)
					accept = rng.Float64() < math.Exp(delta/temp)
				}
				if accept {
					current, score, cat = next, nextScore, nextCat
					lastMoved = moved
					improved = true
				}
			}
			temp *= coolingRate
		}
	}

	if best.Difficulty < 0 {
		return best, solver.ErrNoSolution
	}
	return best, nil
}

func seedRound(ctx context.Context, rng *rand.Rand, opts Options, round int) (full board.Values, current board.Values, err error) {
	if round == 0 && opts.StartPuzzle != nil {
		current = *opts.StartPuzzle
		st, _, serr := solver.Solve(ctx, board.NewState(current), solver.DefaultOptions())
		if serr != nil {
			return full, current, serr
		}
		return st.Values, current, nil
	}
	fullState, _, serr := solver.SampleFullGrid(ctx, rng)
	if serr != nil {
		return full, current, serr
	}
	target := minimalClues + rng.Intn(minimalSpread+1)
	carved, cerr := carveToTarget(ctx, rng, fullState.Values, target)
	if cerr != nil {
		return full, current, cerr
	}
	return fullState.Values, carved.Values, nil
}

func evaluate(ctx context.Context, values board.Values) (int, string, error) {
	st := board.NewState(values)
	solved, _, err := solver.Solve(ctx, st, solver.DefaultOptions())
	if err != nil {
		return 0, "", err
	}
	battery := hint.NewBattery(&solved.Values)
	_, trace, herr := hint.SolveWithHints(battery, st, hint.DefaultStepCap)
	if herr != nil && herr != hint.ErrNoLogicalProgress && herr != hint.ErrOverbudget {
		return 0, "", herr
	}
	score, cat, _ := scorer.Score(trace)
	return score, cat, nil
}

func tryAddClue(rng *rand.Rand, current board.Values, full board.Values, tabu board.Square) (board.Values, board.Square, bool) {
	var holes []board.Square
	for s := 0; s < board.NumSquares; s++ {
		sq := board.Square(s)
		if current[sq] == 0 && sq != tabu {
			holes = append(holes, sq)
		}
	}
	if len(holes) == 0 {
		return current, 0, false
	}
	pick := holes[rng.Intn(len(holes))]
	next := current
	next[pick] = full[pick]
	return next, pick, true
}

func tryRemoveClue(ctx context.Context, rng *rand.Rand, current board.Values, tabu board.Square) (board.Values, board.Square, bool) {
	var clues []board.Square
	for s := 0; s < board.NumSquares; s++ {
		sq := board.Square(s)
		if current[sq] != 0 && sq != tabu {
			clues = append(clues, sq)
		}
	}
	rng.Shuffle(len(clues), func(i, j int) { clues[i], clues[j] = clues[j], clues[i] })
	for _, sq := range clues {
		next := current
		next[sq] = 0
		unique, _, err := solver.IsUnique(ctx, board.NewState(next), solver.DefaultOptions())
		if err == nil && unique {
			return next, sq, true
		}
	}
	return current, 0, false
}

func trySwap(ctx context.Context, rng *rand.Rand, current board.Values, full board.Values, tabu board.Square) (board.Values, board.Square, bool) {
	added, addedSq, ok := tryAddClue(rng, current, full, tabu)
	if !ok {
		return current, 0, false
	}
	removed, removedSq, ok := tryRemoveClue(ctx, rng, added, addedSq)
	if !ok {
		return current, 0, false
	}
	return removed, removedSq, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
