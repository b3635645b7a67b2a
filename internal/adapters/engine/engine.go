// Package engine adapts the pure internal/solver, internal/hint,
// internal/scorer, and internal/generator packages to the ports interfaces
// the usecase layer depends on.
package engine

import (
	"context"

	"sudoku.dev/engine/internal/board"
	"sudoku.dev/engine/internal/generator"
	"sudoku.dev/engine/internal/hint"
	"sudoku.dev/engine/internal/ports"
	"sudoku.dev/engine/internal/scorer"
	"sudoku.dev/engine/internal/solver"
)

// SolverAdapter implements ports.Solver over internal/solver.
type SolverAdapter struct {
	Options solver.Options
}

// NewSolverAdapter builds a SolverAdapter with the solver's default search
// policy (MinDigits square choice, ascending MinDigit order, time-seeded rng).
func NewSolverAdapter() *SolverAdapter {
	return &SolverAdapter{Options: solver.DefaultOptions()}
}

func (a *SolverAdapter) ParseGrid(input string) (*board.State, error) {
	return solver.ParseGrid(input)
}

func (a *SolverAdapter) Solve(ctx context.Context, st *board.State) (*board.State, ports.Stats, error) {
	out, stats, err := solver.Solve(ctx, st, a.Options)
	return out, toPortStats(stats), err
}

func (a *SolverAdapter) IsUnique(ctx context.Context, st *board.State) (bool, ports.Stats, error) {
	unique, stats, err := solver.IsUnique(ctx, st, a.Options)
	return unique, toPortStats(stats), err
}

func (a *SolverAdapter) SampleFullGrid(ctx context.Context) (*board.State, ports.Stats, error) {
	out, stats, err := solver.SampleFullGrid(ctx, a.Options.Rand)
	return out, toPortStats(stats), err
}

func toPortStats(s solver.Stats) ports.Stats {
	return ports.Stats{Nodes: s.Nodes, Duration: s.Duration.Nanoseconds()}
}

// HinterAdapter implements ports.Hinter over internal/hint.
type HinterAdapter struct{}

func NewHinterAdapter() *HinterAdapter { return &HinterAdapter{} }

func (a *HinterAdapter) GetHint(st *board.State, solution *board.Values) hint.Hint {
	return hint.NewBattery(solution).GetHint(st)
}

func (a *HinterAdapter) Apply(h hint.Hint, st *board.State) bool {
	return hint.Apply(h, st)
}

func (a *HinterAdapter) SolveWithHints(st *board.State, solution *board.Values, stepCap int) (*board.State, hint.Trace, error) {
	return hint.SolveWithHints(hint.NewBattery(solution), st, stepCap)
}

// ScorerAdapter implements ports.Scorer over internal/scorer.
type ScorerAdapter struct{}

func NewScorerAdapter() *ScorerAdapter { return &ScorerAdapter{} }

func (a *ScorerAdapter) Score(trace hint.Trace) (int, string) {
	d, cat, _ := scorer.Score(trace)
	return d, cat
}

// GeneratorAdapter implements ports.Generator over internal/generator.
type GeneratorAdapter struct{}

func NewGeneratorAdapter() *GeneratorAdapter { return &GeneratorAdapter{} }

func (a *GeneratorAdapter) GenerateWithClues(ctx context.Context, n int) (*board.State, error) {
	return generator.GenerateWithClues(ctx, nil, n)
}

func (a *GeneratorAdapter) GenerateWithDifficulty(ctx context.Context, opts generator.Options) (generator.Result, error) {
	return generator.GenerateWithDifficulty(ctx, opts)
}

func (a *GeneratorAdapter) GenerateByCategory(ctx context.Context, category string, opts generator.Options) (generator.Result, error) {
	return generator.GenerateByCategory(ctx, category, opts)
}
