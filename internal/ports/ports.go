// Package ports declares the interfaces the usecase layer depends on,
// keeping the HTTP/CLI adapters and the storage layer swappable behind the
// engine's actual domain types.
package ports

import (
	"context"

	"sudoku.dev/engine/internal/board"
	"sudoku.dev/engine/internal/generator"
	"sudoku.dev/engine/internal/hint"
)

// Stats mirrors solver.Stats (with Duration as int64 nanoseconds) so callers
// outside internal/solver don't need to import it just to pass performance
// data around.
type Stats struct {
	Nodes    int
	Duration int64 // nanoseconds; avoids importing time here
}

// Solver is component B: constraint propagation plus MRV search.
type Solver interface {
	ParseGrid(input string) (*board.State, error)
	Solve(ctx context.Context, st *board.State) (*board.State, Stats, error)
	IsUnique(ctx context.Context, st *board.State) (bool, Stats, error)
	SampleFullGrid(ctx context.Context) (*board.State, Stats, error)
}

// Hinter is component C: the technique battery, apply, and trace driver.
type Hinter interface {
	GetHint(st *board.State, solution *board.Values) hint.Hint
	Apply(h hint.Hint, st *board.State) bool
	SolveWithHints(st *board.State, solution *board.Values, stepCap int) (*board.State, hint.Trace, error)
}

// Scorer is component D's scoring half.
type Scorer interface {
	Score(trace hint.Trace) (difficulty int, category string)
}

// Generator is component D's generation half.
type Generator interface {
	GenerateWithClues(ctx context.Context, n int) (*board.State, error)
	GenerateWithDifficulty(ctx context.Context, opts generator.Options) (generator.Result, error)
	GenerateByCategory(ctx context.Context, category string, opts generator.Options) (generator.Result, error)
}

// Puzzle bundles a generated/solved board with the metadata storage and the
// HTTP/CLI adapters need to describe it.
type Puzzle struct {
	ID         string
	Seed       int64
	Values     board.Values
	Difficulty int
	Category   string
	CreatedAt  int64
}

// PuzzleMeta is the lightweight listing form of Puzzle.
type PuzzleMeta struct {
	ID         string
	Difficulty int
	Category   string
	CreatedAt  int64
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *Puzzle) error
	Load(ctx context.Context, id string) (*Puzzle, error)
	List(ctx context.Context) ([]PuzzleMeta, error)
}
