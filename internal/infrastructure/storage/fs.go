package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"sudoku.dev/engine/internal/ports"
)

// FS persists puzzles as JSON files under dir, one subdirectory per
// difficulty category (trivial, basic, intermediate, ...).
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var categoryDirs = []string{
	"error", "trivial", "basic", "intermediate", "tough",
	"diabolical", "extreme", "master", "grandmaster",
}

func categoryDir(category string) string {
	for _, c := range categoryDirs {
		if c == category {
			return c
		}
	}
	return "basic"
}

func (s *FS) pathFor(id string, category string) string {
	return filepath.Join(s.dir, categoryDir(category), strings.TrimSpace(id)+".json")
}

// Save implements ports.Storage.Save.
func (s *FS) Save(ctx context.Context, p *ports.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("storage: puzzle missing ID")
	}
	target := s.pathFor(p.ID, p.Category)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Load implements ports.Storage.Load. It checks every category
// subdirectory plus a legacy flat layout under dir directly.
func (s *FS) Load(ctx context.Context, id string) (*ports.Puzzle, error) {
	var candidates []string
	for _, c := range categoryDirs {
		candidates = append(candidates, filepath.Join(s.dir, c, id+".json"))
	}
	candidates = append(candidates, filepath.Join(s.dir, id+".json"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var out ports.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

// List implements ports.Storage.List, scanning every category
// subdirectory plus the legacy flat layout.
func (s *FS) List(ctx context.Context) ([]ports.PuzzleMeta, error) {
	var out []ports.PuzzleMeta
	dirs := append([]string{s.dir}, prefixed(s.dir, categoryDirs)...)

	for _, dir := range dirs {
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var p ports.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, ports.PuzzleMeta{
				ID:         p.ID,
				Difficulty: p.Difficulty,
				Category:   p.Category,
				CreatedAt:  p.CreatedAt,
			})
		}
	}
	return out, nil
}

func prefixed(base string, subs []string) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = filepath.Join(base, s)
	}
	return out
}
