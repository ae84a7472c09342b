package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/MrSnakeDoc/bookmarks/internal/domain"
	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/metrics"
	"github.com/MrSnakeDoc/bookmarks/internal/store/memory"
)

type brokenStore struct{ *memory.Store }

func (brokenStore) Len(context.Context) (int, error) { return 0, errors.New("boom") }

func TestStatsRefresher_Refresh(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	for _, id := range []string{"a", "b", "c"} {
		if err := s.Append(ctx, domain.Bookmark{ID: id, Title: id, URL: "http://" + id}); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	sr := NewStatsRefresher(s, logger.NewNop(), time.Hour)
	n, err := sr.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Refresh() = %d, want 3", n)
	}
	if got := testutil.ToFloat64(metrics.BookmarksStored); got != 3 {
		t.Errorf("bookmarks_stored = %v, want 3", got)
	}
}

func TestStatsRefresher_RefreshError(t *testing.T) {
	sr := NewStatsRefresher(brokenStore{memory.New()}, logger.NewNop(), time.Hour)
	if _, err := sr.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh() should fail when the store cannot count")
	}
}

func TestStatsRefresher_StartStop(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	sr := NewStatsRefresher(s, logger.NewNop(), 10*time.Millisecond)
	if err := sr.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer sr.Stop()

	if err := s.Append(ctx, domain.Bookmark{ID: "x", Title: "x", URL: "http://x"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for testutil.ToFloat64(metrics.BookmarksStored) != 1 {
		if time.Now().After(deadline) {
			t.Fatal("gauge was not refreshed by the background loop")
		}
		time.Sleep(5 * time.Millisecond)
	}

	sr.Stop()
	sr.Stop()
}

func TestStatsRefresher_InvalidInterval(t *testing.T) {
	sr := NewStatsRefresher(memory.New(), logger.NewNop(), 0)
	if err := sr.Start(context.Background()); err == nil {
		t.Fatal("Start() should reject a zero interval")
	}
}
