// Package seed provides the bookmarks a fresh store starts with.
package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/bookmarks/internal/domain"
	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/store"
)

// Default returns the built-in seed record used when no seed file is configured.
func Default() []domain.Bookmark {
	return []domain.Bookmark{{
		ID:          "1",
		Title:       "Bookmark One",
		URL:         "https://bookmarks-app-snowy.vercel.app/add-bookmark",
		Description: "This is bookmark one",
		Rating:      json.RawMessage(`"5"`),
	}}
}

// Resolve returns the seed bookmarks from filePath, or Default when filePath is empty.
func Resolve(filePath string) ([]domain.Bookmark, error) {
	if filePath == "" {
		return Default(), nil
	}

	f, err := NewLoader(filePath).Load()
	if err != nil {
		return nil, err
	}
	return Map(f)
}

// Apply appends bookmarks to s when s is empty. A non-empty store (Redis
// backend after a restart) is left untouched. It returns how many were added.
func Apply(ctx context.Context, s store.Store, bookmarks []domain.Bookmark, log logger.Logger) (int, error) {
	n, err := s.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	if n > 0 {
		log.Info("store already populated, skipping seed", logger.Int("count", n))
		return 0, nil
	}

	for _, b := range bookmarks {
		if err := s.Append(ctx, b); err != nil {
			return 0, fmt.Errorf("failed to seed bookmark %s: %w", b.ID, err)
		}
	}

	log.Info("seeded bookmarks", logger.Int("count", len(bookmarks)))
	return len(bookmarks), nil
}
