package hint

import "sudoku.dev/engine/internal/board"

// Apply implements apply(hint, values, candidates) -> progressed?, per
// §4.3's apply-hint state transition table. It mutates st in place and
// reports whether the state actually changed.
func Apply(h Hint, st *board.State) bool {
	switch hint := h.(type) {
	case *ErrorHint:
		return applyError(hint, st)
	case *MissingCandidateHint:
		return applyMissingCandidate(hint, st)
	case *SingleCellHint:
		return applySingleCell(hint, st)
	default:
		return applyEliminations(h.Info().Eliminations, st)
	}
}

func applyError(h *ErrorHint, st *board.State) bool {
	st.Values[h.Square] = h.CorrectValue
	st.Candidates[h.Square] = board.Mask(0).With(h.CorrectValue)
	for _, p := range board.Peers[h.Square] {
		if st.Values[p] == 0 {
			st.Candidates[p] = st.Candidates[p].Without(h.CorrectValue)
		}
	}
	return true
}

func applyMissingCandidate(h *MissingCandidateHint, st *board.State) bool {
	before := st.Candidates[h.Square]
	st.Candidates[h.Square] = st.Candidates[h.Square].With(h.MissingDigit)
	return st.Candidates[h.Square] != before
}

func applySingleCell(h *SingleCellHint, st *board.State) bool {
	if st.Values[h.Square] == h.Digit {
		return false
	}
	st.Values[h.Square] = h.Digit
	st.Candidates[h.Square] = board.Mask(0).With(h.Digit)
	for _, p := range board.Peers[h.Square] {
		if st.Values[p] == 0 {
			st.Candidates[p] = st.Candidates[p].Without(h.Digit)
		}
	}
	return true
}

// applyEliminations covers every set/intersection/fish/wing/coloring/chute
// variant, which all reduce to "remove these digits from these cells".
func applyEliminations(eliminations []Elimination, st *board.State) bool {
	progressed := false
	for _, e := range eliminations {
		if st.Values[e.Square] != 0 {
			continue
		}
		before := st.Candidates[e.Square]
		st.Candidates[e.Square] = st.Candidates[e.Square].Without(e.Digit)
		if st.Candidates[e.Square] != before {
			progressed = true
		}
	}
	return progressed
}
