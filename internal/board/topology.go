package board

// UnitKind classifies a Unit by the topology of its member squares, per
// §4.1's unit_kind: compare the first and last member; shared row -> row,
// shared column -> column, else box.
type UnitKind int

const (
	RowUnit UnitKind = iota
	ColumnUnit
	BoxUnit
)

func (k UnitKind) String() string {
	switch k {
	case RowUnit:
		return "row"
	case ColumnUnit:
		return "column"
	case BoxUnit:
		return "box"
	default:
		return "unknown"
	}
}

// Unit is one row, column, or box: 9 squares.
type Unit struct {
	Kind    UnitKind
	Index   int // 0..8 within its kind
	Squares [9]Square
}

// NumUnits is the number of units (9 rows + 9 columns + 9 boxes).
const NumUnits = 27

// Units holds the 27 units, built once at package init.
var Units [NumUnits]Unit

// SquareUnits[s] holds the indices into Units of the 3 units containing s,
// in (row, column, box) order.
var SquareUnits [NumSquares][3]int

// Peers[s] holds the 20 distinct squares sharing a unit with s.
var Peers [NumSquares][20]Square

func init() {
	buildUnits()
	buildSquareUnits()
	buildPeers()
}

func buildUnits() {
	idx := 0
	for r := 0; r < 9; r++ {
		var sqs [9]Square
		for c := 0; c < 9; c++ {
			sqs[c] = Square(r*9 + c)
		}
		Units[idx] = Unit{Kind: RowUnit, Index: r, Squares: sqs}
		idx++
	}
	for c := 0; c < 9; c++ {
		var sqs [9]Square
		for r := 0; r < 9; r++ {
			sqs[r] = Square(r*9 + c)
		}
		Units[idx] = Unit{Kind: ColumnUnit, Index: c, Squares: sqs}
		idx++
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		var sqs [9]Square
		i := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				sqs[i] = Square((br+dr)*9 + bc + dc)
				i++
			}
		}
		Units[idx] = Unit{Kind: BoxUnit, Index: b, Squares: sqs}
		idx++
	}
}

func buildSquareUnits() {
	for ui, u := range Units {
		slot := 0
		switch u.Kind {
		case RowUnit:
			slot = 0
		case ColumnUnit:
			slot = 1
		case BoxUnit:
			slot = 2
		}
		for _, s := range u.Squares {
			SquareUnits[s][slot] = ui
		}
	}
}

func buildPeers() {
	for s := 0; s < NumSquares; s++ {
		seen := map[Square]bool{}
		n := 0
		for _, ui := range SquareUnits[s] {
			for _, other := range Units[ui].Squares {
				if other == Square(s) || seen[other] {
					continue
				}
				seen[other] = true
				Peers[s][n] = other
				n++
			}
		}
	}
}

// UnitKindOf classifies u by comparing its first and last member, mirroring
// §4.1's unit_kind even though Unit already carries Kind explicitly — kept
// as a standalone helper for callers that only have a raw square list.
func UnitKindOf(squares [9]Square) UnitKind {
	first, last := squares[0], squares[8]
	if first.Row() == last.Row() {
		return RowUnit
	}
	if first.Col() == last.Col() {
		return ColumnUnit
	}
	return BoxUnit
}

// RowUnits, ColumnUnits, BoxUnits return the Units slice restricted to one
// kind, in index order. Convenience for detectors that iterate by kind.
func RowUnits() []Unit { return Units[0:9] }
func ColumnUnits() []Unit { return Units[9:18] }
func BoxUnits() []Unit { return Units[18:27] }

// UnitsAllKinds returns all 27 units ordered rows, then columns, then boxes —
// the canonical traversal order used throughout the hint battery.
func UnitsAllKinds() []Unit { return Units[:] }
