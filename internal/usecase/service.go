// Package usecase exposes the engine's full operation set behind one
// facade, the way the teacher's Service wires ports together for the HTTP
// and CLI adapters.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"sudoku.dev/engine/internal/board"
	"sudoku.dev/engine/internal/generator"
	"sudoku.dev/engine/internal/hint"
	"sudoku.dev/engine/internal/ports"
)

// Service orchestrates the solver, hint battery, scorer, generator, and
// storage ports behind one call surface.
type Service struct {
	Solver    ports.Solver
	Hinter    ports.Hinter
	Scorer    ports.Scorer
	Generator ports.Generator
	Storage   ports.Storage

	// Log is the §7 NoLogicalProgress diagnostics hook: when set, Trace
	// logs through it whenever solve_with_hints stalls. Nil disables it.
	Log *logrus.Logger
}

// NewService wires a Service from its ports. Any port left nil returns
// errNotConfigured on the operations that need it, rather than panicking.
func NewService(solver ports.Solver, hinter ports.Hinter, scorer ports.Scorer, gen ports.Generator, storage ports.Storage) *Service {
	return &Service{Solver: solver, Hinter: hinter, Scorer: scorer, Generator: gen, Storage: storage}
}

var errNotConfigured = errors.New("usecase: dependency not configured")

// Solve implements the solve operation.
func (s *Service) Solve(ctx context.Context, input string) (*board.State, ports.Stats, error) {
	if s.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	st, err := s.Solver.ParseGrid(input)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return s.Solver.Solve(ctx, st)
}

// IsUnique implements the is_unique operation.
func (s *Service) IsUnique(ctx context.Context, input string) (bool, ports.Stats, error) {
	if s.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	st, err := s.Solver.ParseGrid(input)
	if err != nil {
		return false, ports.Stats{}, err
	}
	return s.Solver.IsUnique(ctx, st)
}

// ParseGrid implements parse_grid, exposed directly for callers that want
// the parsed state without immediately solving it.
func (s *Service) ParseGrid(input string) (*board.State, error) {
	if s.Solver == nil {
		return nil, errNotConfigured
	}
	return s.Solver.ParseGrid(input)
}

// Conflicts implements get_conflicts.
func (s *Service) Conflicts(input string) ([]board.Conflict, error) {
	v, err := board.ParseString(input)
	if err != nil {
		return nil, err
	}
	return board.Conflicts(v), nil
}

// Serialize implements serialize.
func (s *Service) Serialize(v board.Values) (string, error) {
	return board.Serialize(v)
}

// Deserialize implements deserialize.
func (s *Service) Deserialize(input string) (board.Values, error) {
	return board.Deserialize(input)
}

// GetHint implements get_hint. It solves the input once to obtain a
// ground-truth solution (nil if the puzzle isn't solvable) so the
// error-detecting techniques can fire.
func (s *Service) GetHint(ctx context.Context, input string) (hint.Hint, error) {
	if s.Solver == nil || s.Hinter == nil {
		return nil, errNotConfigured
	}
	st, err := s.Solver.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	solution := s.solveForHints(ctx, st)
	return s.Hinter.GetHint(st, solution), nil
}

// Trace implements solve_with_hints.
func (s *Service) Trace(ctx context.Context, input string, stepCap int) (*board.State, hint.Trace, error) {
	if s.Solver == nil || s.Hinter == nil {
		return nil, hint.Trace{}, errNotConfigured
	}
	st, err := s.Solver.ParseGrid(input)
	if err != nil {
		return nil, hint.Trace{}, err
	}
	solution := s.solveForHints(ctx, st)
	start := time.Now()
	out, trace, err := s.Hinter.SolveWithHints(st, solution, stepCap)
	if err == hint.ErrNoLogicalProgress && s.Log != nil {
		last := hint.Technique("")
		if n := len(trace.Steps); n > 0 {
			last = trace.Steps[n-1].Technique
		}
		s.Log.WithFields(logrus.Fields{
			"technique": last,
			"step":      len(trace.Steps),
			"duration":  time.Since(start),
		}).Warn("no_logical_progress")
	}
	return out, trace, err
}

// EvaluatePuzzleDifficulty implements evaluate_puzzle_difficulty: trace the
// puzzle to completion with the hint battery, then score the trace.
func (s *Service) EvaluatePuzzleDifficulty(ctx context.Context, input string) (int, string, error) {
	if s.Scorer == nil {
		return 0, "", errNotConfigured
	}
	_, trace, err := s.Trace(ctx, input, hint.DefaultStepCap)
	if err != nil && err != hint.ErrNoLogicalProgress && err != hint.ErrOverbudget {
		return 0, "", err
	}
	d, cat := s.Scorer.Score(trace)
	return d, cat, nil
}

func (s *Service) solveForHints(ctx context.Context, st *board.State) *board.Values {
	solved, _, err := s.Solver.Solve(ctx, st.Clone())
	if err != nil {
		return nil
	}
	return &solved.Values
}

// GenerateWithClues implements generate_with_clues.
func (s *Service) GenerateWithClues(ctx context.Context, n int) (*board.State, error) {
	if s.Generator == nil {
		return nil, errNotConfigured
	}
	return s.Generator.GenerateWithClues(ctx, n)
}

// GenerateWithDifficulty implements generate_with_difficulty.
func (s *Service) GenerateWithDifficulty(ctx context.Context, opts generator.Options) (generator.Result, error) {
	if s.Generator == nil {
		return generator.Result{}, errNotConfigured
	}
	return s.Generator.GenerateWithDifficulty(ctx, opts)
}

// GenerateByCategory implements generate_by_category.
func (s *Service) GenerateByCategory(ctx context.Context, category string, opts generator.Options) (generator.Result, error) {
	if s.Generator == nil {
		return generator.Result{}, errNotConfigured
	}
	return s.Generator.GenerateByCategory(ctx, category, opts)
}

// Save, Load, List implement the persistence operations kept from the
// teacher.
func (s *Service) Save(ctx context.Context, p *ports.Puzzle) error {
	if s.Storage == nil {
		return errNotConfigured
	}
	return s.Storage.Save(ctx, p)
}

func (s *Service) Load(ctx context.Context, id string) (*ports.Puzzle, error) {
	if s.Storage == nil {
		return nil, errNotConfigured
	}
	return s.Storage.Load(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]ports.PuzzleMeta, error) {
	if s.Storage == nil {
		return nil, errNotConfigured
	}
	return s.Storage.List(ctx)
}
