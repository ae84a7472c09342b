package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/bookmarks/internal/domain"
	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/store/memory"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestResolveDefault(t *testing.T) {
	bookmarks, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(bookmarks) != 1 {
		t.Fatalf("Resolve() = %d bookmarks, want 1", len(bookmarks))
	}
	if bookmarks[0].ID != "1" {
		t.Errorf("seed id = %q, want %q", bookmarks[0].ID, "1")
	}
	if string(bookmarks[0].Rating) != `"5"` {
		t.Errorf("seed rating = %s, want %q", bookmarks[0].Rating, `"5"`)
	}
}

func TestResolveFromFile(t *testing.T) {
	path := writeSeedFile(t, `
bookmarks:
  - id: "1"
    title: Go
    url: https://go.dev
    description: The Go website
    rating: 5
  - title: Chi
    url: https://github.com/go-chi/chi
    rating: "great"
`)

	bookmarks, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(bookmarks) != 2 {
		t.Fatalf("Resolve() = %d bookmarks, want 2", len(bookmarks))
	}
	if bookmarks[0].ID != "1" || bookmarks[0].Title != "Go" {
		t.Errorf("first bookmark = %+v", bookmarks[0])
	}
	if string(bookmarks[0].Rating) != `5` {
		t.Errorf("numeric rating = %s, want 5", bookmarks[0].Rating)
	}
	if bookmarks[1].ID == "" {
		t.Error("entry without id should get a generated id")
	}
	if string(bookmarks[1].Rating) != `"great"` {
		t.Errorf("string rating = %s, want \"great\"", bookmarks[1].Rating)
	}
}

func TestMapRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{
			name: "missing title",
			file: File{Bookmarks: []Entry{{URL: "http://x"}}},
		},
		{
			name: "missing url",
			file: File{Bookmarks: []Entry{{Title: "T"}}},
		},
		{
			name: "duplicate id",
			file: File{Bookmarks: []Entry{
				{ID: "a", Title: "T", URL: "http://x"},
				{ID: "a", Title: "U", URL: "http://y"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Map(tt.file); err == nil {
				t.Error("Map() should have failed")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Error("Load() should fail on a missing file")
	}

	path := writeSeedFile(t, "bookmarks: [unterminated")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() should fail on invalid yaml")
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	log := logger.NewNop()

	added, err := Apply(ctx, s, Default(), log)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if added != 1 {
		t.Errorf("Apply() added %d, want 1", added)
	}

	// A populated store is not seeded twice
	added, err = Apply(ctx, s, []domain.Bookmark{{ID: "x", Title: "x", URL: "http://x"}}, log)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if added != 0 {
		t.Errorf("Apply() on populated store added %d, want 0", added)
	}
	if n, _ := s.Len(ctx); n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
}
