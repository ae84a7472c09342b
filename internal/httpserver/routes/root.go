package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/handlers"
)

func init() { Register(registerRoot) }

// The greeting is the only public route.
func registerRoot(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Root())
}
