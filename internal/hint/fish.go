package hint

import "sudoku.dev/engine/internal/board"

// detectFish implements x_wing (size 2) and swordfish (size 3): size base
// units (rows or columns) in which a digit's candidates all fall within the
// same size cover lines (columns or rows respectively); eliminate the digit
// from the cover lines outside the base units.
func detectFish(v *board.Values, c *board.Candidates, size int, tech Technique) *XWingHint {
	if hint := fishByOrientation(v, c, size, tech, board.RowUnit); hint != nil {
		return hint
	}
	return fishByOrientation(v, c, size, tech, board.ColumnUnit)
}

func fishByOrientation(v *board.Values, c *board.Candidates, size int, tech Technique, baseKind board.UnitKind) *XWingHint {
	var baseUnits []board.Unit
	if baseKind == board.RowUnit {
		baseUnits = board.RowUnits()
	} else {
		baseUnits = board.ColumnUnits()
	}

	for d := board.Digit(1); d <= 9; d++ {
		var candidateLines []board.Unit
		var candidateCrosses [][]int // the cover-line indices each base line touches
		for _, u := range baseUnits {
			var crosses []int
			for _, sq := range u.Squares {
				if v[sq] == 0 && c[sq].Has(d) {
					if baseKind == board.RowUnit {
						crosses = append(crosses, sq.Col())
					} else {
						crosses = append(crosses, sq.Row())
					}
				}
			}
			if len(crosses) >= 2 && len(crosses) <= size {
				candidateLines = append(candidateLines, u)
				candidateCrosses = append(candidateCrosses, crosses)
			}
		}
		if len(candidateLines) < size {
			continue
		}
		if hint := combineFish(v, c, d, tech, baseKind, candidateLines, candidateCrosses, size); hint != nil {
			return hint
		}
	}
	return nil
}

func combineFish(v *board.Values, c *board.Candidates, d board.Digit, tech Technique, baseKind board.UnitKind, lines []board.Unit, crosses [][]int, size int) *XWingHint {
	n := len(lines)
	combo := make([]int, size)
	var rec func(start, depth int) *XWingHint
	rec = func(start, depth int) *XWingHint {
		if depth == size {
			coverSet := map[int]bool{}
			for _, idx := range combo {
				for _, x := range crosses[idx] {
					coverSet[x] = true
				}
			}
			if len(coverSet) != size {
				return nil
			}
			var corners []board.Square
			for _, idx := range combo {
				u := lines[idx]
				for _, sq := range u.Squares {
					if v[sq] == 0 && c[sq].Has(d) {
						corners = append(corners, sq)
					}
				}
			}
			var coverUnits []board.Unit
			for x := 0; x < 9; x++ {
				if !coverSet[x] {
					continue
				}
				if baseKind == board.RowUnit {
					coverUnits = append(coverUnits, board.Units[9+x])
				} else {
					coverUnits = append(coverUnits, board.Units[x])
				}
			}
			cornerSet := toSet(corners)
			var elim []board.Square
			for _, u := range coverUnits {
				for _, sq := range u.Squares {
					if cornerSet[sq] || v[sq] != 0 || !c[sq].Has(d) {
						continue
					}
					elim = append(elim, sq)
				}
			}
			if len(elim) == 0 {
				return nil
			}
			var baseUnits []board.Unit
			for _, idx := range combo {
				baseUnits = append(baseUnits, lines[idx])
			}
			elims := make([]Elimination, len(elim))
			for i, sq := range elim {
				elims[i] = Elimination{Square: sq, Digit: d}
			}
			return &XWingHint{
				Base: Base{
					TechniqueName: tech,
					DifficultyVal: Difficulty[tech],
					Eliminations:  elims,
				},
				Digit:            d,
				Corners:          corners,
				PrimaryUnits:     baseUnits,
				SecondaryUnits:   coverUnits,
				EliminationCells: elim,
			}
		}
		for i := start; i <= n-(size-depth); i++ {
			combo[depth] = i
			if h := rec(i+1, depth+1); h != nil {
				return h
			}
		}
		return nil
	}
	return rec(0, 0)
}
