package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/bookmarks/internal/domain"
)

// Loader reads seed bookmarks from a YAML file
type Loader struct {
	filePath string
}

// NewLoader creates a new seed loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return f, nil
}

// Map converts seed entries to domain bookmarks.
// Entries without an id get a random UUID; every entry needs a title and a url.
func Map(f File) ([]domain.Bookmark, error) {
	bookmarks := make([]domain.Bookmark, 0, len(f.Bookmarks))
	seen := make(map[string]bool, len(f.Bookmarks))

	for i, e := range f.Bookmarks {
		input := domain.NewBookmark{
			Title:       e.Title,
			URL:         e.URL,
			Description: e.Description,
		}
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}

		if e.Rating != nil {
			raw, err := json.Marshal(e.Rating)
			if err != nil {
				return nil, fmt.Errorf("seed entry %d: invalid rating: %w", i, err)
			}
			input.Rating = raw
		}

		id := e.ID
		if id == "" {
			id = uuid.New().String()
		}
		if seen[id] {
			return nil, fmt.Errorf("seed entry %d: duplicate id %q", i, id)
		}
		seen[id] = true

		bookmarks = append(bookmarks, input.WithID(id))
	}

	return bookmarks, nil
}
