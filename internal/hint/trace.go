package hint

import "sudoku.dev/engine/internal/board"

// Step records one application in a SolveWithHints trace: the technique
// used, its difficulty, the hint itself, and a snapshot of the board right
// after applying it.
type Step struct {
	Technique  Technique
	Difficulty int
	Hint       Hint
	Snapshot   board.Values
}

// Trace is the record produced by SolveWithHints: the ordered steps taken
// and whether the board reached a fully placed state.
type Trace struct {
	Steps  []Step
	Solved bool
}

// DefaultStepCap is the default budget for SolveWithHints, per §4.3.
const DefaultStepCap = 1000

// SolveWithHints implements solve_with_hints: repeatedly query GetHint and
// Apply against a clone of st until the board is fully placed, GetHint
// returns nil (ErrNoLogicalProgress), or stepCap steps have been taken
// (ErrOverbudget). stepCap <= 0 uses DefaultStepCap.
func SolveWithHints(b *Battery, st *board.State, stepCap int) (*board.State, Trace, error) {
	if stepCap <= 0 {
		stepCap = DefaultStepCap
	}
	work := st.Clone()
	var trace Trace

	for len(trace.Steps) < stepCap {
		if work.IsSolved() {
			trace.Solved = true
			return work, trace, nil
		}
		h := b.GetHint(work)
		if h == nil {
			return work, trace, ErrNoLogicalProgress
		}
		if !Apply(h, work) {
			return work, trace, ErrNoLogicalProgress
		}
		info := h.Info()
		trace.Steps = append(trace.Steps, Step{
			Technique:  info.TechniqueName,
			Difficulty: info.DifficultyVal,
			Hint:       h,
			Snapshot:   work.Values,
		})
	}

	if work.IsSolved() {
		trace.Solved = true
		return work, trace, nil
	}
	return work, trace, ErrOverbudget
}
