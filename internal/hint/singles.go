package hint

import "sudoku.dev/engine/internal/board"

// detectIncorrectValue implements incorrect_value: a placed cell whose digit
// disagrees with the supplied ground-truth solution. Only runs when a
// solution is available (per §4.3, "used only when a ground-truth solution
// is obtainable").
func detectIncorrectValue(v *board.Values, solution *board.Values) *ErrorHint {
	if solution == nil {
		return nil
	}
	for s := 0; s < board.NumSquares; s++ {
		actual := v[s]
		if actual == 0 {
			continue
		}
		want := solution[board.Square(s)]
		if actual != want {
			return &ErrorHint{
				Base: Base{
					TechniqueName: IncorrectValue,
					DifficultyVal: Difficulty[IncorrectValue],
				},
				Square:       board.Square(s),
				ActualValue:  actual,
				CorrectValue: want,
			}
		}
	}
	return nil
}

// detectMissingCandidate implements missing_candidate: an empty cell whose
// pencil-mark set has lost the digit it must eventually take, relative to
// the ground-truth solution. Only runs when a solution is available.
func detectMissingCandidate(v *board.Values, c *board.Candidates, solution *board.Values) *MissingCandidateHint {
	if solution == nil {
		return nil
	}
	for s := 0; s < board.NumSquares; s++ {
		if v[s] != 0 {
			continue
		}
		want := solution[board.Square(s)]
		if want == 0 {
			continue
		}
		if !c[s].Has(want) {
			return &MissingCandidateHint{
				Base: Base{
					TechniqueName: MissingCandidate,
					DifficultyVal: Difficulty[MissingCandidate],
				},
				Square:       board.Square(s),
				MissingDigit: want,
			}
		}
	}
	return nil
}

// detectNakedSingle implements naked_single: the first empty cell (in
// square-index order) whose candidate mask has exactly one member.
func detectNakedSingle(v *board.Values, c *board.Candidates) *SingleCellHint {
	for s := 0; s < board.NumSquares; s++ {
		if v[s] != 0 {
			continue
		}
		if d, ok := c[s].Single(); ok {
			return &SingleCellHint{
				Base: Base{
					TechniqueName: NakedSingle,
					DifficultyVal: Difficulty[NakedSingle],
				},
				Square: board.Square(s),
				Digit:  d,
			}
		}
	}
	return nil
}

// lastRemainingKind maps a Technique to the UnitKind detectLastRemaining
// should scan for it.
var lastRemainingKind = map[Technique]board.UnitKind{
	LastInBox:    board.BoxUnit,
	LastInRow:    board.RowUnit,
	LastInColumn: board.ColumnUnit,
}

// detectLastRemaining implements last_remaining_in_{box,row,column}: a unit
// of the given kind with exactly one empty cell, whose digit is whatever is
// missing from the unit's 8 placed cells. Unlike hidden_single this never
// consults candidate masks — it only counts empty cells.
func detectLastRemaining(v *board.Values, tech Technique) *SingleCellHint {
	kind := lastRemainingKind[tech]
	var units []board.Unit
	switch kind {
	case board.BoxUnit:
		units = board.BoxUnits()
	case board.RowUnit:
		units = board.RowUnits()
	case board.ColumnUnit:
		units = board.ColumnUnits()
	}
	for _, u := range units {
		var empty board.Square
		emptyCount := 0
		present := board.Mask(0)
		for _, sq := range u.Squares {
			if v[sq] == 0 {
				empty = sq
				emptyCount++
				continue
			}
			present = present.With(v[sq])
		}
		if emptyCount != 1 {
			continue
		}
		missing := board.Full &^ present
		d, ok := missing.Single()
		if !ok {
			continue // shouldn't happen on a consistent grid
		}
		unitCopy := u
		return &SingleCellHint{
			Base: Base{
				TechniqueName: tech,
				DifficultyVal: Difficulty[tech],
			},
			Square: empty,
			Digit:  d,
			Unit:   &unitCopy,
		}
	}
	return nil
}

// detectHiddenSingle implements hidden_single: within some unit, a digit is
// a candidate of exactly one empty cell.
func detectHiddenSingle(v *board.Values, c *board.Candidates) *SingleCellHint {
	for _, u := range board.UnitsAllKinds() {
		for d := board.Digit(1); d <= 9; d++ {
			count := 0
			var last board.Square
			placed := false
			for _, sq := range u.Squares {
				if v[sq] == d {
					placed = true
					break
				}
				if v[sq] == 0 && c[sq].Has(d) {
					count++
					last = sq
				}
			}
			if placed || count != 1 {
				continue
			}
			unitCopy := u
			return &SingleCellHint{
				Base: Base{
					TechniqueName: HiddenSingle,
					DifficultyVal: Difficulty[HiddenSingle],
				},
				Square: last,
				Digit:  d,
				Unit:   &unitCopy,
			}
		}
	}
	return nil
}
