package storage

import (
	"context"
	"testing"

	"sudoku.dev/engine/internal/ports"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	p := &ports.Puzzle{ID: "abc123", Difficulty: 42, Category: "intermediate", CreatedAt: 1}
	if err := fs.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := fs.Load(ctx, "abc123")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Difficulty != 42 || got.Category != "intermediate" {
		t.Fatalf("unexpected loaded puzzle: %+v", got)
	}
}

func TestListAcrossCategories(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	fs.Save(ctx, &ports.Puzzle{ID: "a", Category: "trivial"})
	fs.Save(ctx, &ports.Puzzle{ID: "b", Category: "tough"})

	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 puzzles, got %d", len(metas))
	}
}

func TestLoadMissingReturnsError(t *testing.T) {
	fs := NewFS(t.TempDir())
	if _, err := fs.Load(context.Background(), "nope"); err == nil {
		t.Fatalf("expected an error for a missing puzzle")
	}
}
