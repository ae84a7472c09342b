// Package store defines the bookmark persistence contract shared by the
// in-memory and Redis backends.
package store

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/bookmarks/internal/domain"
)

// ErrNotFound is returned when no bookmark matches the requested id.
var ErrNotFound = errors.New("bookmark not found")

// Store is an ordered collection of bookmarks. Insertion order is the listing order.
type Store interface {
	// List returns every bookmark in insertion order.
	List(ctx context.Context) ([]domain.Bookmark, error)
	// FindByID returns the first bookmark whose id equals id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (domain.Bookmark, error)
	// Append adds b at the end of the collection.
	Append(ctx context.Context, b domain.Bookmark) error
	// RemoveByID removes the first bookmark whose id equals id.
	// It returns ErrNotFound and leaves the collection untouched when there is none.
	RemoveByID(ctx context.Context, id string) error
	// Len returns the number of stored bookmarks.
	Len(ctx context.Context) (int, error)
}

// Pinger is implemented by backends that depend on an external service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks s when it implements Pinger; in-process backends are always reachable.
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
