package memory

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/bookmarks/internal/domain"
	"github.com/MrSnakeDoc/bookmarks/internal/store"
)

// Store keeps bookmarks in a slice for the lifetime of the process.
// Lookups are linear scans; nothing survives a restart and nothing is shared between processes.
type Store struct {
	mu        sync.RWMutex
	bookmarks []domain.Bookmark
}

// New creates an empty memory store
func New() *Store {
	return &Store{
		bookmarks: make([]domain.Bookmark, 0, 16),
	}
}

// List returns a copy of all bookmarks in insertion order
func (s *Store) List(_ context.Context) ([]domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Bookmark, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out, nil
}

// FindByID retrieves the first bookmark with the given ID
func (s *Store) FindByID(_ context.Context, id string) (domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.bookmarks[i], nil
	}
	return domain.Bookmark{}, store.ErrNotFound
}

// Append adds a bookmark at the end of the list
func (s *Store) Append(_ context.Context, b domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookmarks = append(s.bookmarks, b)
	return nil
}

// RemoveByID splices out the first bookmark with the given ID
func (s *Store) RemoveByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
	return nil
}

// Len returns the number of bookmarks
func (s *Store) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookmarks), nil
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.bookmarks {
		if s.bookmarks[i].ID == id {
			return i
		}
	}
	return -1
}
