package hint

import "sudoku.dev/engine/internal/board"

// rowChutes groups the 9 boxes into the 3 row-bands; columnChutes groups
// them into the 3 column-bands. Box indices follow board.Units[18:27].
var rowChutes = [3][3]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}
var columnChutes = [3][3]int{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}}

// detectChuteRemotePairs implements chute_remote_pairs: two non-peer
// bi-value cells sharing candidate pair {X,Y} in two different boxes of one
// chute. If the chute's third box contains exactly one of {X,Y} (as a
// placed digit or a candidate) the other digit is eliminated from any cell
// seeing both remote cells.
func detectChuteRemotePairs(v *board.Values, c *board.Candidates) *ChuteRemotePairsHint {
	if hint := scanChutes(v, c, rowChutes, board.RowUnit); hint != nil {
		return hint
	}
	return scanChutes(v, c, columnChutes, board.ColumnUnit)
}

func scanChutes(v *board.Values, c *board.Candidates, chutes [3][3]int, orientation board.UnitKind) *ChuteRemotePairsHint {
	for _, chute := range chutes {
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				if a == b {
					continue
				}
				thirdSlot := 3 - a - b
				boxA, boxB, boxC := chute[a], chute[b], chute[thirdSlot]
				if hint := checkChutePair(v, c, boxA, boxB, boxC, orientation); hint != nil {
					return hint
				}
			}
		}
	}
	return nil
}

func checkChutePair(v *board.Values, c *board.Candidates, boxA, boxB, boxC int, orientation board.UnitKind) *ChuteRemotePairsHint {
	cellsA := biValueCells(v, c, boxA)
	cellsB := biValueCells(v, c, boxB)
	for _, sa := range cellsA {
		for _, sb := range cellsB {
			if c[sa] != c[sb] || c[sa].Count() != 2 {
				continue
			}
			if sees(sa, sb) {
				continue
			}
			digits := c[sa].Digits()
			x, y := digits[0], digits[1]
			presentX, presentY := boxHasDigit(v, c, boxC, x), boxHasDigit(v, c, boxC, y)
			var present, absent board.Digit
			switch {
			case presentX && !presentY:
				present, absent = x, y
			case presentY && !presentX:
				present, absent = y, x
			default:
				continue
			}
			var elim []board.Square
			for s := 0; s < board.NumSquares; s++ {
				sq := board.Square(s)
				if v[sq] != 0 || sq == sa || sq == sb {
					continue
				}
				if !c[sq].Has(absent) {
					continue
				}
				if sees(sq, sa) && sees(sq, sb) {
					elim = append(elim, sq)
				}
			}
			if len(elim) == 0 {
				continue
			}
			elims := make([]Elimination, len(elim))
			for i, sq := range elim {
				elims[i] = Elimination{Square: sq, Digit: absent}
			}
			return &ChuteRemotePairsHint{
				Base: Base{
					TechniqueName: ChuteRemotePairs,
					DifficultyVal: Difficulty[ChuteRemotePairs],
					Eliminations:  elims,
				},
				PresentDigit:     present,
				AbsentDigit:      absent,
				RemoteSquares:    [2]board.Square{sa, sb},
				ChuteOrientation: orientation,
				ThirdBoxSquares:  append([]board.Square{}, board.Units[18+boxC].Squares[:]...),
				EliminationCells: elim,
			}
		}
	}
	return nil
}

func biValueCells(v *board.Values, c *board.Candidates, box int) []board.Square {
	var out []board.Square
	for _, sq := range board.Units[18+box].Squares {
		if v[sq] == 0 && c[sq].Count() == 2 {
			out = append(out, sq)
		}
	}
	return out
}

func boxHasDigit(v *board.Values, c *board.Candidates, box int, d board.Digit) bool {
	for _, sq := range board.Units[18+box].Squares {
		if v[sq] == d {
			return true
		}
		if v[sq] == 0 && c[sq].Has(d) {
			return true
		}
	}
	return false
}
