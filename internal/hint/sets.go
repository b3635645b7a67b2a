package hint

import "sudoku.dev/engine/internal/board"

var nakedSetTechnique = map[int]Technique{2: NakedPairs, 3: NakedTriples, 4: NakedQuads}
var hiddenSetTechnique = map[int]Technique{2: HiddenPairs, 3: HiddenTriples, 4: HiddenQuads}

// detectNakedSet implements naked_pair/triple/quad for the given size: size
// empty cells within one unit whose combined candidate mask has exactly
// size members eliminate those digits from the unit's other cells.
func detectNakedSet(v *board.Values, c *board.Candidates, size int) *NakedSetHint {
	tech := nakedSetTechnique[size]
	for _, u := range board.UnitsAllKinds() {
		var empties []board.Square
		for _, sq := range u.Squares {
			if v[sq] == 0 {
				empties = append(empties, sq)
			}
		}
		if len(empties) < size {
			continue
		}
		if hint := combineNakedSets(empties, c, size, tech, u); hint != nil {
			return hint
		}
	}
	return nil
}

func combineNakedSets(empties []board.Square, c *board.Candidates, size int, tech Technique, u board.Unit) *NakedSetHint {
	n := len(empties)
	combo := make([]int, size)
	var rec func(start, depth int) *NakedSetHint
	rec = func(start, depth int) *NakedSetHint {
		if depth == size {
			union := board.Mask(0)
			for _, idx := range combo {
				union = union.Union(c[empties[idx]])
			}
			if union.Count() != size {
				return nil
			}
			members := make(map[board.Square]bool, size)
			for _, idx := range combo {
				members[empties[idx]] = true
			}
			var elimCells []board.Square
			var elimDigits []board.Digit
			for _, sq := range empties {
				if members[sq] {
					continue
				}
				common := c[sq].Intersect(union)
				if common == 0 {
					continue
				}
				for _, d := range common.Digits() {
					elimCells = append(elimCells, sq)
					elimDigits = append(elimDigits, d)
				}
			}
			if len(elimCells) == 0 {
				return nil
			}
			squares := make([]board.Square, size)
			for i, idx := range combo {
				squares[i] = empties[idx]
			}
			elims := make([]Elimination, len(elimCells))
			for i := range elimCells {
				elims[i] = Elimination{Square: elimCells[i], Digit: elimDigits[i]}
			}
			return &NakedSetHint{
				Base: Base{
					TechniqueName: tech,
					DifficultyVal: Difficulty[tech],
					Eliminations:  elims,
				},
				Squares:           squares,
				Digits:            union.Digits(),
				Unit:              u,
				EliminationCells:  elimCells,
				EliminationDigits: elimDigits,
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

// detectHiddenSet implements hidden_pair/triple/quad: size digits within one
// unit collectively confined to size cells; eliminate every other candidate
// from those cells.
func detectHiddenSet(v *board.Values, c *board.Candidates, size int) *HiddenSetHint {
	tech := hiddenSetTechnique[size]
	for _, u := range board.UnitsAllKinds() {
		digitCells := map[board.Digit][]board.Square{}
		for _, sq := range u.Squares {
			if v[sq] != 0 {
				continue
			}
			for _, d := range c[sq].Digits() {
				digitCells[d] = append(digitCells[d], sq)
			}
		}
		var candidates []board.Digit
		for d := board.Digit(1); d <= 9; d++ {
			if n := len(digitCells[d]); n > 0 && n <= size {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) < size {
			continue
		}
		if hint := combineHiddenSets(candidates, digitCells, c, size, tech, u); hint != nil {
			return hint
		}
	}
	return nil
}

func combineHiddenSets(candidates []board.Digit, digitCells map[board.Digit][]board.Square, c *board.Candidates, size int, tech Technique, u board.Unit) *HiddenSetHint {
	n := len(candidates)
	combo := make([]int, size)
	var rec func(start, depth int) *HiddenSetHint
	rec = func(start, depth int) *HiddenSetHint {
		if depth == size {
			cellSet := map[board.Square]bool{}
			digitSet := map[board.Digit]bool{}
			for _, idx := range combo {
				d := candidates[idx]
				digitSet[d] = true
				for _, sq := range digitCells[d] {
					cellSet[sq] = true
				}
			}
			if len(cellSet) != size {
				return nil
			}
			var squares []board.Square
			var elimCells []board.Square
			var elimDigits []board.Digit
			for _, sq := range u.Squares {
				if cellSet[sq] {
					squares = append(squares, sq)
				}
			}
			for _, sq := range squares {
				for _, d := range c[sq].Digits() {
					if digitSet[d] {
						continue
					}
					elimCells = append(elimCells, sq)
					elimDigits = append(elimDigits, d)
				}
			}
			if len(elimCells) == 0 {
				return nil
			}
			digits := make([]board.Digit, size)
			for i, idx := range combo {
				digits[i] = candidates[idx]
			}
			elims := make([]Elimination, len(elimCells))
			for i := range elimCells {
				elims[i] = Elimination{Square: elimCells[i], Digit: elimDigits[i]}
			}
			return &HiddenSetHint{
				Base: Base{
					TechniqueName: tech,
					DifficultyVal: Difficulty[tech],
					Eliminations:  elims,
				},
				Squares:           squares,
				Digits:            digits,
				Unit:              u,
				EliminationCells:  elimCells,
				EliminationDigits: elimDigits,
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
