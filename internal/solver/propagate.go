package solver

import "sudoku.dev/engine/internal/board"

// Assign reduces st's candidates at s to the singleton {d} by eliminating
// every other remaining candidate there, per §4.2's assign. It fails (via
// ErrContradiction) if any resulting elimination contradicts the board.
func Assign(st *board.State, s board.Square, d board.Digit) error {
	for _, other := range st.Candidates[s].Digits() {
		if other == d {
			continue
		}
		if err := Eliminate(st, s, other); err != nil {
			return err
		}
	}
	// A square whose candidates were already exactly {d} (as in an
	// unpropagated board.NewState) triggers no elimination above, so d is
	// placed and propagated to the peers here.
	if st.Values[s] == 0 {
		if !st.Candidates[s].Has(d) {
			return ErrContradiction
		}
		st.Values[s] = d
		for _, p := range board.Peers[s] {
			if err := Eliminate(st, p, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// Eliminate removes d from st's candidates at s, per §4.2's eliminate:
//   - if the candidate set becomes empty, that is a contradiction (I2);
//   - if it shrinks to a singleton, the remaining digit propagates to every
//     peer (naked-single propagation);
//   - for every unit containing s, if d now has zero remaining places that
//     is a contradiction (I3), and if it has exactly one place that place is
//     assigned d (hidden-single propagation).
func Eliminate(st *board.State, s board.Square, d board.Digit) error {
	if !st.Candidates[s].Has(d) {
		return nil // already eliminated, nothing to do
	}
	st.Candidates[s] = st.Candidates[s].Without(d)

	switch st.Candidates[s].Count() {
	case 0:
		return ErrContradiction
	case 1:
		d2, _ := st.Candidates[s].Single()
		st.Values[s] = d2
		for _, p := range board.Peers[s] {
			if err := Eliminate(st, p, d2); err != nil {
				return err
			}
		}
	}

	for _, ui := range board.SquareUnits[s] {
		if err := checkUnitPlaces(st, board.Units[ui], d); err != nil {
			return err
		}
	}
	return nil
}

// checkUnitPlaces implements the per-unit hidden-single check described
// inside §4.2's eliminate: count the places in unit where d can still
// appear, failing on zero and assigning on exactly one.
func checkUnitPlaces(st *board.State, unit board.Unit, d board.Digit) error {
	place := board.Square(-1)
	count := 0
	for _, sq := range unit.Squares {
		if st.Values[sq] == d {
			// Already placed elsewhere in the unit: the unit is satisfied
			// for this digit, nothing further to check.
			return nil
		}
		if st.Values[sq] == 0 && st.Candidates[sq].Has(d) {
			count++
			place = sq
		}
	}
	switch count {
	case 0:
		return ErrContradiction
	case 1:
		if st.Values[place] == 0 {
			return Assign(st, place, d)
		}
	}
	return nil
}
