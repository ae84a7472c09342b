package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/respond"
	"github.com/MrSnakeDoc/bookmarks/internal/store"
)

type storeStatus struct {
	OK        bool   `json:"ok"`
	Backend   string `json:"backend"`
	Bookmarks *int   `json:"bookmarks,omitempty"`
	Shared    bool   `json:"shared"`
	Error     string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                 `json:"mode"`
	Components map[string]storeStatus `json:"components"`
}

// Infra describes the store backend. A memory store is never shared between
// instances, which the "shared" flag makes explicit.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := checkStore(r.Context(), d)

		mode := "operational"
		if !status.OK {
			mode = "degraded"
		}

		respond.JSON(w, http.StatusOK, infraResponse{
			Mode:       mode,
			Components: map[string]storeStatus{"store": status},
		})
	}
}

func checkStore(ctx context.Context, d deps.Deps) storeStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := storeStatus{
		Backend: d.StoreBackend,
		Shared:  d.StoreBackend != "memory",
	}

	if err := store.Ping(ctx, d.Store); err != nil {
		status.Error = "unreachable"
		return status
	}

	n, err := d.Store.Len(ctx)
	if err != nil {
		status.Error = "count failed"
		return status
	}

	status.OK = true
	status.Bookmarks = &n
	return status
}
