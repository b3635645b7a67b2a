package hint

import "sudoku.dev/engine/internal/board"

// detectPointingPairs implements pointing_pairs: within one box, a digit's
// candidate cells are confined to a single row or column; eliminate that
// digit from the rest of that row/column outside the box.
func detectPointingPairs(v *board.Values, c *board.Candidates) *IntersectionRemovalHint {
	for _, box := range board.BoxUnits() {
		for d := board.Digit(1); d <= 9; d++ {
			var cells []board.Square
			for _, sq := range box.Squares {
				if v[sq] == 0 && c[sq].Has(d) {
					cells = append(cells, sq)
				}
			}
			if len(cells) < 2 || len(cells) > 3 {
				continue
			}
			if hint := pointingAlongRow(v, c, d, cells, box); hint != nil {
				return hint
			}
			if hint := pointingAlongColumn(v, c, d, cells, box); hint != nil {
				return hint
			}
		}
	}
	return nil
}

func pointingAlongRow(v *board.Values, c *board.Candidates, d board.Digit, cells []board.Square, box board.Unit) *IntersectionRemovalHint {
	row := cells[0].Row()
	for _, sq := range cells[1:] {
		if sq.Row() != row {
			return nil
		}
	}
	rowUnit := board.Units[row]
	memberSet := toSet(cells)
	var elim []board.Square
	for _, sq := range rowUnit.Squares {
		if memberSet[sq] || v[sq] != 0 || !c[sq].Has(d) {
			continue
		}
		elim = append(elim, sq)
	}
	if len(elim) == 0 {
		return nil
	}
	return buildIntersectionHint(PointingPairs, d, cells, box, board.BoxUnit, rowUnit, board.RowUnit, elim)
}

func pointingAlongColumn(v *board.Values, c *board.Candidates, d board.Digit, cells []board.Square, box board.Unit) *IntersectionRemovalHint {
	col := cells[0].Col()
	for _, sq := range cells[1:] {
		if sq.Col() != col {
			return nil
		}
	}
	colUnit := board.Units[9+col]
	memberSet := toSet(cells)
	var elim []board.Square
	for _, sq := range colUnit.Squares {
		if memberSet[sq] || v[sq] != 0 || !c[sq].Has(d) {
			continue
		}
		elim = append(elim, sq)
	}
	if len(elim) == 0 {
		return nil
	}
	return buildIntersectionHint(PointingPairs, d, cells, box, board.BoxUnit, colUnit, board.ColumnUnit, elim)
}

// detectBoxLineReduction implements box_line_reduction: within one row or
// column, a digit's candidate cells are confined to a single box; eliminate
// that digit from the rest of the box outside the line.
func detectBoxLineReduction(v *board.Values, c *board.Candidates) *IntersectionRemovalHint {
	for _, line := range append(append([]board.Unit{}, board.RowUnits()...), board.ColumnUnits()...) {
		for d := board.Digit(1); d <= 9; d++ {
			var cells []board.Square
			for _, sq := range line.Squares {
				if v[sq] == 0 && c[sq].Has(d) {
					cells = append(cells, sq)
				}
			}
			if len(cells) < 2 || len(cells) > 3 {
				continue
			}
			box0 := cells[0].Box()
			sameBox := true
			for _, sq := range cells[1:] {
				if sq.Box() != box0 {
					sameBox = false
					break
				}
			}
			if !sameBox {
				continue
			}
			boxUnit := board.Units[18+box0]
			memberSet := toSet(cells)
			var elim []board.Square
			for _, sq := range boxUnit.Squares {
				if memberSet[sq] || v[sq] != 0 || !c[sq].Has(d) {
					continue
				}
				elim = append(elim, sq)
			}
			if len(elim) == 0 {
				continue
			}
			return buildIntersectionHint(BoxLineReduction, d, cells, line, line.Kind, boxUnit, board.BoxUnit, elim)
		}
	}
	return nil
}

func buildIntersectionHint(tech Technique, d board.Digit, cells []board.Square, primary board.Unit, primaryKind board.UnitKind, secondary board.Unit, secondaryKind board.UnitKind, elim []board.Square) *IntersectionRemovalHint {
	elims := make([]Elimination, len(elim))
	for i, sq := range elim {
		elims[i] = Elimination{Square: sq, Digit: d}
	}
	return &IntersectionRemovalHint{
		Base: Base{
			TechniqueName: tech,
			DifficultyVal: Difficulty[tech],
			Eliminations:  elims,
		},
		Digit:             d,
		Squares:           cells,
		PrimaryUnit:       primary,
		PrimaryUnitType:   primaryKind,
		SecondaryUnit:     secondary,
		SecondaryUnitType: secondaryKind,
		EliminationCells:  elim,
	}
}

func toSet(sqs []board.Square) map[board.Square]bool {
	m := make(map[board.Square]bool, len(sqs))
	for _, s := range sqs {
		m[s] = true
	}
	return m
}
