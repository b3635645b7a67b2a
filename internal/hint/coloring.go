package hint

import "sudoku.dev/engine/internal/board"

// detectSimpleColoring implements simple_coloring: for one digit at a time,
// build the graph of conjugate pairs (units where the digit has exactly two
// candidate positions), two-color each connected component, then apply
// Rule 2 (two same-colored cells share a unit -> that color is false) and
// Rule 4 (an outside candidate cell sees both colors -> eliminate it).
func detectSimpleColoring(v *board.Values, c *board.Candidates) *SimpleColoringHint {
	for d := board.Digit(1); d <= 9; d++ {
		adj := buildConjugateGraph(v, c, d)
		if len(adj) == 0 {
			continue
		}
		visited := map[board.Square]bool{}
		for s := 0; s < board.NumSquares; s++ {
			start := board.Square(s)
			if _, ok := adj[start]; !ok || visited[start] {
				continue
			}
			component, colors := colorComponent(adj, start)
			for sq := range component {
				visited[sq] = true
			}
			if hint := ruleTwoConflict(d, colors); hint != nil {
				return hint
			}
			if hint := ruleFourWitness(v, c, d, colors); hint != nil {
				return hint
			}
		}
	}
	return nil
}

func buildConjugateGraph(v *board.Values, c *board.Candidates, d board.Digit) map[board.Square][]board.Square {
	adj := map[board.Square][]board.Square{}
	for _, u := range board.UnitsAllKinds() {
		var cells []board.Square
		for _, sq := range u.Squares {
			if v[sq] == 0 && c[sq].Has(d) {
				cells = append(cells, sq)
			}
		}
		if len(cells) != 2 {
			continue
		}
		a, b := cells[0], cells[1]
		if !containsSquare(adj[a], b) {
			adj[a] = append(adj[a], b)
		}
		if !containsSquare(adj[b], a) {
			adj[b] = append(adj[b], a)
		}
	}
	return adj
}

func containsSquare(list []board.Square, s board.Square) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// colorComponent walks the connected component containing start via DFS,
// two-coloring alternately (1/2), and returns the visited set plus colors.
func colorComponent(adj map[board.Square][]board.Square, start board.Square) (map[board.Square]bool, map[board.Square]int) {
	colors := map[board.Square]int{start: 1}
	component := map[board.Square]bool{start: true}
	stack := []board.Square{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		next := 2
		if colors[node] == 2 {
			next = 1
		}
		for _, nb := range adj[node] {
			if _, ok := colors[nb]; !ok {
				colors[nb] = next
				component[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return component, colors
}

// ruleTwoConflict: if two same-colored cells share a unit, that color is
// contradictory — the whole color is eliminated.
func ruleTwoConflict(d board.Digit, colors map[board.Square]int) *SimpleColoringHint {
	var colorA, colorB []board.Square
	for s := 0; s < board.NumSquares; s++ {
		sq := board.Square(s)
		switch colors[sq] {
		case 1:
			colorA = append(colorA, sq)
		case 2:
			colorB = append(colorB, sq)
		}
	}
	falseColor := 0
	var conflictUnit *board.Unit
	if u := sameUnitConflict(colorA); u != nil {
		falseColor = 1
		conflictUnit = u
	} else if u := sameUnitConflict(colorB); u != nil {
		falseColor = 2
		conflictUnit = u
	}
	if falseColor == 0 {
		return nil
	}
	target := colorA
	if falseColor == 2 {
		target = colorB
	}
	elims := make([]Elimination, len(target))
	for i, sq := range target {
		elims[i] = Elimination{Square: sq, Digit: d}
	}
	chain := append(append([]board.Square{}, colorA...), colorB...)
	return &SimpleColoringHint{
		Base: Base{
			TechniqueName: SimpleColoring,
			DifficultyVal: Difficulty[SimpleColoring],
			Eliminations:  elims,
		},
		Digit:            d,
		Chain:            chain,
		Colors:           colors,
		Rule:             "rule_2",
		ConflictUnit:     conflictUnit,
		EliminationCells: target,
	}
}

func sameUnitConflict(cells []board.Square) *board.Unit {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if !sees(cells[i], cells[j]) {
				continue
			}
			for _, ui := range board.SquareUnits[cells[i]] {
				u := board.Units[ui]
				inUnit := false
				for _, sq := range u.Squares {
					if sq == cells[j] {
						inUnit = true
						break
					}
				}
				if inUnit {
					uc := u
					return &uc
				}
			}
		}
	}
	return nil
}

// ruleFourWitness: an outside candidate cell (not part of the chain) that
// sees both colors can never hold the digit, whichever color turns out
// true.
func ruleFourWitness(v *board.Values, c *board.Candidates, d board.Digit, colors map[board.Square]int) *SimpleColoringHint {
	var elim []board.Square
	for s := 0; s < board.NumSquares; s++ {
		sq := board.Square(s)
		if v[sq] != 0 || !c[sq].Has(d) {
			continue
		}
		if _, inChain := colors[sq]; inChain {
			continue
		}
		seesA, seesB := false, false
		for _, p := range board.Peers[sq] {
			switch colors[p] {
			case 1:
				seesA = true
			case 2:
				seesB = true
			}
		}
		if seesA && seesB {
			elim = append(elim, sq)
		}
	}
	if len(elim) == 0 {
		return nil
	}
	var chain []board.Square
	for s := 0; s < board.NumSquares; s++ {
		sq := board.Square(s)
		if _, ok := colors[sq]; ok {
			chain = append(chain, sq)
		}
	}
	elims := make([]Elimination, len(elim))
	for i, sq := range elim {
		elims[i] = Elimination{Square: sq, Digit: d}
	}
	witness := elim[0]
	return &SimpleColoringHint{
		Base: Base{
			TechniqueName: SimpleColoring,
			DifficultyVal: Difficulty[SimpleColoring],
			Eliminations:  elims,
		},
		Digit:            d,
		Chain:            chain,
		Colors:           colors,
		Rule:             "rule_4",
		WitnessCell:      &witness,
		EliminationCells: elim,
	}
}
