package hint

import (
	"context"
	"testing"
	"time"

	"sudoku.dev/engine/internal/board"
	"sudoku.dev/engine/internal/solver"
)

const sampleEasy = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func mustSolve(t *testing.T, input string) *board.State {
	t.Helper()
	st, err := solver.ParseGrid(input)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, _, err := solver.Solve(ctx, st, solver.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return out
}

func TestDetectNakedSingle(t *testing.T) {
	values, err := board.ParseString(sampleEasy)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	st := board.NewState(values)
	b := NewBattery(nil)
	h := b.GetHint(st)
	if h == nil {
		t.Fatalf("expected a hint on a partially filled easy puzzle")
	}
	info := h.Info()
	if info.DifficultyVal > Difficulty[HiddenSingle] {
		t.Fatalf("expected an early-battery technique first, got %s (difficulty %d)", info.TechniqueName, info.DifficultyVal)
	}
}

func TestApplySingleCellProgresses(t *testing.T) {
	values, err := board.ParseString(sampleEasy)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	st := board.NewState(values)
	before := st.EmptyCount()
	b := NewBattery(nil)
	h := b.GetHint(st)
	if h == nil {
		t.Fatalf("expected a hint")
	}
	if !Apply(h, st) {
		t.Fatalf("expected Apply to report progress")
	}
	if sc, ok := h.(*SingleCellHint); ok {
		if st.Values[sc.Square] != sc.Digit {
			t.Fatalf("expected square %d to hold %d after apply", sc.Square, sc.Digit)
		}
		if st.EmptyCount() != before-1 {
			t.Fatalf("expected empty count to drop by one")
		}
	}
}

func TestSolveWithHintsReachesSolutionOrStalls(t *testing.T) {
	solution := mustSolve(t, sampleEasy)

	values, err := board.ParseString(sampleEasy)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	st := board.NewState(values)
	b := NewBattery(&solution.Values)

	out, trace, err := SolveWithHints(b, st, DefaultStepCap)
	if err != nil && err != ErrNoLogicalProgress {
		t.Fatalf("SolveWithHints: %v", err)
	}
	if err == nil && !trace.Solved {
		t.Fatalf("expected trace.Solved when err is nil")
	}
	if out.GivenCount() < st.GivenCount() {
		t.Fatalf("expected the hint driver to only ever add placements")
	}
	for _, step := range trace.Steps {
		if step.Difficulty < 0 {
			t.Fatalf("unexpected negative difficulty in step %v", step)
		}
	}
}

func TestGetHintOnEmptyBoardFindsNothing(t *testing.T) {
	// On an empty board every candidate set is Full, so no technique in the
	// battery applies and GetHint must report that rather than fabricating
	// a hint.
	st := board.NewState(board.Values{})
	b := NewBattery(nil)
	if h := b.GetHint(st); h != nil {
		t.Fatalf("expected no hint on an empty board, got %v", h.Info())
	}
}
