package solver

import "sudoku.dev/engine/internal/board"

// ParseGrid implements §4.2's parse_grid: initialize every cell to {1..9}
// then assign each clue via Assign/Eliminate propagation, returning the
// propagated state or a contradiction/malformed-input failure.
func ParseGrid(input string) (*board.State, error) {
	raw, err := board.ParseString(input)
	if err != nil {
		return nil, ErrMalformedInput
	}
	st := &board.State{}
	for i := range st.Candidates {
		st.Candidates[i] = board.Full
	}
	for s := 0; s < board.NumSquares; s++ {
		if raw[s] == 0 {
			continue
		}
		if st.Values[s] != 0 {
			// Already placed by an earlier propagation step; a differing
			// given here is a genuine input contradiction.
			if st.Values[s] != raw[s] {
				return nil, ErrMalformedInput
			}
			continue
		}
		if err := Assign(st, board.Square(s), raw[s]); err != nil {
			return nil, ErrMalformedInput
		}
	}
	return st, nil
}
