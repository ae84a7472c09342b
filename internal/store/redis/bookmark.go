package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/bookmarks/internal/domain"
	"github.com/MrSnakeDoc/bookmarks/internal/store"
)

// Append stores a bookmark and pushes its ID at the end of the order list
func (s *Store) Append(ctx context.Context, b domain.Bookmark) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.BookmarkKey(b.ID), data, 0)
		pipe.RPush(ctx, s.OrderKey(), b.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	return nil
}

// FindByID retrieves a bookmark from Redis by ID
func (s *Store) FindByID(ctx context.Context, id string) (domain.Bookmark, error) {
	data, err := s.client.Get(ctx, s.BookmarkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Bookmark{}, store.ErrNotFound
		}
		return domain.Bookmark{}, fmt.Errorf("failed to get bookmark: %w", err)
	}

	var b domain.Bookmark
	if err := json.Unmarshal(data, &b); err != nil {
		return domain.Bookmark{}, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}

	return b, nil
}

// List retrieves all bookmarks in insertion order
func (s *Store) List(ctx context.Context) ([]domain.Bookmark, error) {
	ids, err := s.client.LRange(ctx, s.OrderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark IDs: %w", err)
	}

	if len(ids) == 0 {
		return []domain.Bookmark{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.BookmarkKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	bookmarks := make([]domain.Bookmark, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Skip ids whose payload vanished
			continue
		}
		var b domain.Bookmark
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bookmark %s: %w", ids[i], err)
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, nil
}

// RemoveByID removes a bookmark from the order list and deletes its payload
func (s *Store) RemoveByID(ctx context.Context, id string) error {
	removed, err := s.client.LRem(ctx, s.OrderKey(), 1, id).Result()
	if err != nil {
		return fmt.Errorf("failed to remove bookmark from list: %w", err)
	}
	if removed == 0 {
		return store.ErrNotFound
	}

	if err := s.client.Del(ctx, s.BookmarkKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	return nil
}
