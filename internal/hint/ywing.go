package hint

import "sudoku.dev/engine/internal/board"

// detectYWing implements y_wing: a bi-value pivot AB seeing two bi-value
// pincers AC and BC; C is eliminated from any cell seeing both pincers.
func detectYWing(v *board.Values, c *board.Candidates) *YWingHint {
	var biValue []board.Square
	for s := 0; s < board.NumSquares; s++ {
		if v[s] == 0 && c[s].Count() == 2 {
			biValue = append(biValue, board.Square(s))
		}
	}
	if len(biValue) < 3 {
		return nil
	}
	for i := range biValue {
		for j := range biValue {
			if i == j {
				continue
			}
			for k := range biValue {
				if k == i || k == j {
					continue
				}
				if hint := checkYWing(v, c, biValue[i], biValue[j], biValue[k]); hint != nil {
					return hint
				}
			}
		}
	}
	return nil
}

func sees(a, b board.Square) bool {
	if a == b {
		return false
	}
	for _, p := range board.Peers[a] {
		if p == b {
			return true
		}
	}
	return false
}

func checkYWing(v *board.Values, c *board.Candidates, pivot, p1, p2 board.Square) *YWingHint {
	if !sees(pivot, p1) || !sees(pivot, p2) {
		return nil
	}
	cp, c1, c2 := c[pivot], c[p1], c[p2]
	all := cp.Union(c1).Union(c2)
	if all.Count() != 3 {
		return nil
	}
	a := cp.Intersect(c1)
	b := cp.Intersect(c2)
	if a.Count() != 1 || b.Count() != 1 || a == b {
		return nil
	}
	candC1 := c1.Without(mustSingle(a))
	candC2 := c2.Without(mustSingle(b))
	if candC1.Count() != 1 || candC2.Count() != 1 || candC1 != candC2 {
		return nil
	}
	digitC, _ := candC1.Single()

	var elim []board.Square
	for s := 0; s < board.NumSquares; s++ {
		sq := board.Square(s)
		if v[sq] != 0 || sq == pivot || sq == p1 || sq == p2 {
			continue
		}
		if !c[sq].Has(digitC) {
			continue
		}
		if sees(sq, p1) && sees(sq, p2) {
			elim = append(elim, sq)
		}
	}
	if len(elim) == 0 {
		return nil
	}
	digitA, _ := a.Single()
	digitB, _ := b.Single()
	elims := make([]Elimination, len(elim))
	for i, sq := range elim {
		elims[i] = Elimination{Square: sq, Digit: digitC}
	}
	return &YWingHint{
		Base: Base{
			TechniqueName: YWing,
			DifficultyVal: Difficulty[YWing],
			Eliminations:  elims,
		},
		Pivot:            pivot,
		Pincer1:          p1,
		Pincer2:          p2,
		CandidateA:       digitA,
		CandidateB:       digitB,
		CandidateC:       digitC,
		EliminationCells: elim,
	}
}

func mustSingle(m board.Mask) board.Digit {
	d, _ := m.Single()
	return d
}
