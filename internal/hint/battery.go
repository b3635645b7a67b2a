package hint

import "sudoku.dev/engine/internal/board"

// Battery is the difficulty-ordered technique battery of §4.3. Solution, if
// set, is the ground-truth completed grid the error-detecting techniques
// (incorrect_value, missing_candidate) compare against; callers that cannot
// obtain one (e.g. a puzzle not known to be unique) leave it nil and those
// two techniques never fire.
type Battery struct {
	Solution *board.Values
}

// NewBattery constructs a Battery. solution may be nil.
func NewBattery(solution *board.Values) *Battery {
	return &Battery{Solution: solution}
}

// GetHint implements get_hint: it runs each technique in ascending
// difficulty order and returns the first one that yields a hint which
// actually changes state (a placement, or at least one elimination).
// Returns nil if no technique in the battery applies.
func (b *Battery) GetHint(st *board.State) Hint {
	v, c := &st.Values, &st.Candidates

	if h := detectIncorrectValue(v, b.Solution); h != nil {
		return h
	}
	if h := detectMissingCandidate(v, c, b.Solution); h != nil {
		return h
	}
	if h := detectNakedSingle(v, c); h != nil {
		return h
	}
	if h := detectLastRemaining(v, LastInBox); h != nil {
		return h
	}
	if h := detectLastRemaining(v, LastInRow); h != nil {
		return h
	}
	if h := detectLastRemaining(v, LastInColumn); h != nil {
		return h
	}
	if h := detectHiddenSingle(v, c); h != nil {
		return h
	}
	if h := detectNakedSet(v, c, 2); h != nil {
		return h
	}
	if h := detectPointingPairs(v, c); h != nil {
		return h
	}
	if h := detectBoxLineReduction(v, c); h != nil {
		return h
	}
	if h := detectHiddenSet(v, c, 2); h != nil {
		return h
	}
	if h := detectNakedSet(v, c, 3); h != nil {
		return h
	}
	if h := detectHiddenSet(v, c, 3); h != nil {
		return h
	}
	if h := detectNakedSet(v, c, 4); h != nil {
		return h
	}
	if h := detectHiddenSet(v, c, 4); h != nil {
		return h
	}
	if h := detectFish(v, c, 2, XWing); h != nil {
		return h
	}
	if h := detectYWing(v, c); h != nil {
		return h
	}
	if h := detectChuteRemotePairs(v, c); h != nil {
		return h
	}
	if h := detectSimpleColoring(v, c); h != nil {
		return h
	}
	if h := detectFish(v, c, 3, Swordfish); h != nil {
		return h
	}
	return nil
}
