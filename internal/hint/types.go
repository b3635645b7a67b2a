// Package hint implements the technique-ranked hint engine (§4.3): a
// difficulty-ordered battery of detectors, a state-mutating Apply, and a
// trace-based driver that repeatedly applies hints to completion.
package hint

import "sudoku.dev/engine/internal/board"

// Technique names one of the techniques in §4.3's table.
type Technique string

// Technique constants, grouped in the order the difficulty table lists
// them. Values match the spec's contractual 0-99 difficulty scale exactly.
const (
	IncorrectValue    Technique = "incorrect_value"
	MissingCandidate  Technique = "missing_candidate"
	NakedSingle       Technique = "naked_single"
	LastInBox         Technique = "last_remaining_in_box"
	LastInRow         Technique = "last_remaining_in_row"
	LastInColumn      Technique = "last_remaining_in_column"
	HiddenSingle      Technique = "hidden_single"
	NakedPairs        Technique = "naked_pairs"
	PointingPairs     Technique = "pointing_pairs"
	BoxLineReduction  Technique = "box_line_reduction"
	HiddenPairs       Technique = "hidden_pairs"
	NakedTriples      Technique = "naked_triples"
	HiddenTriples     Technique = "hidden_triples"
	NakedQuads        Technique = "naked_quads"
	HiddenQuads       Technique = "hidden_quads"
	XWing             Technique = "x_wing"
	YWing             Technique = "y_wing"
	ChuteRemotePairs  Technique = "chute_remote_pairs"
	SimpleColoring    Technique = "simple_coloring"
	Swordfish         Technique = "swordfish"
)

// Difficulty is the canonical difficulty table from §4.3, used both to
// order the battery and by scorer.TechniqueDifficulty.
var Difficulty = map[Technique]int{
	IncorrectValue:   0,
	MissingCandidate: 0,
	NakedSingle:      1,
	LastInBox:        3,
	LastInRow:        4,
	LastInColumn:     5,
	HiddenSingle:     7,
	NakedPairs:       9,
	PointingPairs:    12,
	BoxLineReduction: 14,
	HiddenPairs:      18,
	NakedTriples:     22,
	HiddenTriples:    28,
	NakedQuads:       35,
	HiddenQuads:      42,
	XWing:            46,
	YWing:            50,
	ChuteRemotePairs: 52,
	SimpleColoring:   54,
	Swordfish:        62,
}

// Placement is a single-cell assignment produced by a hint.
type Placement struct {
	Square board.Square
	Digit  board.Digit
}

// Elimination is a single candidate removal produced by a hint.
type Elimination struct {
	Square board.Square
	Digit  board.Digit
}

// Base carries the fields every Hint variant shares: its technique name and
// numeric difficulty, plus the generic elimination list that Apply uses for
// every elimination variant. Placements is not filled by any detector;
// Apply places error and single-cell hints from their own typed fields.
// Embedding Base in a variant struct
// satisfies the Hint interface via promoted method Info().
type Base struct {
	TechniqueName Technique
	DifficultyVal int
	Placements    []Placement
	Eliminations  []Elimination
}

// Info returns b itself — the promoted method that makes every embedding
// struct satisfy Hint.
func (b Base) Info() Base { return b }

// Hint is the common interface satisfied by every hint variant in §6.
type Hint interface {
	Info() Base
}

// ErrorHint: a placed cell whose digit disagrees with the unique solution.
type ErrorHint struct {
	Base
	Square       board.Square
	ActualValue  board.Digit
	CorrectValue board.Digit
}

// MissingCandidateHint: an empty cell missing the digit it must eventually
// take from its pencil marks.
type MissingCandidateHint struct {
	Base
	Square       board.Square
	MissingDigit board.Digit
}

// SingleCellHint covers naked_single, hidden_single, and the three
// last_remaining_in_* variants — all of which place one digit in one cell,
// differing only in which unit (if any) justified the placement.
type SingleCellHint struct {
	Base
	Square board.Square
	Digit  board.Digit
	Unit   *board.Unit // nil for naked_single, which is not unit-justified
}

// NakedSetHint: k cells in one unit whose combined candidates have size k.
type NakedSetHint struct {
	Base
	Squares         []board.Square
	Digits          []board.Digit
	Unit            board.Unit
	EliminationCells []board.Square
	EliminationDigits []board.Digit
}

// HiddenSetHint: k digits in one unit confined to k cells.
type HiddenSetHint struct {
	Base
	Squares           []board.Square
	Digits            []board.Digit
	Unit              board.Unit
	EliminationCells  []board.Square
	EliminationDigits []board.Digit
}

// IntersectionRemovalHint covers pointing_pairs and box_line_reduction:
// a digit confined to the intersection of two units, eliminated from the
// rest of whichever unit does not contain the intersection's other member.
type IntersectionRemovalHint struct {
	Base
	Digit            board.Digit
	Squares          []board.Square // the intersection cells
	PrimaryUnit      board.Unit
	PrimaryUnitType  board.UnitKind
	SecondaryUnit    board.Unit
	SecondaryUnitType board.UnitKind
	EliminationCells []board.Square
}

// XWingHint covers x_wing and (with size generalized to 3) swordfish.
type XWingHint struct {
	Base
	Digit          board.Digit
	Corners        []board.Square
	PrimaryUnits   []board.Unit
	SecondaryUnits []board.Unit
	EliminationCells []board.Square
}

// YWingHint: pivot AB, pincer1 AC, pincer2 BC.
type YWingHint struct {
	Base
	Pivot, Pincer1, Pincer2             board.Square
	CandidateA, CandidateB, CandidateC board.Digit
	EliminationCells                    []board.Square
}

// SimpleColoringHint: one digit's conjugate-pair graph, two-colored, with
// the rule that found an elimination and the cells it implicates.
type SimpleColoringHint struct {
	Base
	Digit        board.Digit
	Chain        []board.Square
	Colors       map[board.Square]int // 1 or 2
	Rule         string               // "rule_2" or "rule_4"
	ConflictUnit *board.Unit
	WitnessCell  *board.Square
	EliminationCells []board.Square
}

// ChuteRemotePairsHint: two remote bi-value cells sharing {X,Y}, with the
// third box of the chute settling which of X/Y is absent.
type ChuteRemotePairsHint struct {
	Base
	PresentDigit, AbsentDigit board.Digit
	RemoteSquares             [2]board.Square
	ChuteOrientation          board.UnitKind // RowUnit or ColumnUnit
	ThirdBoxSquares           []board.Square
	EliminationCells          []board.Square
}
