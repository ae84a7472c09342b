package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Group(func(r chi.Router) {
		r.Use(
			mw.EnforceHost(d.AllowedHosts, d.Logger),
			mw.BearerToken(d.APIToken, d.Logger),
			mw.RateLimit(mw.RateLimitConfig{
				Burst:             d.RateLimitBurst,
				RefillPerIPPerMin: d.RateLimitPerMin,
				TrustProxy:        d.TrustProxy,
			}, d.Logger),
		)

		r.Get("/bookmark", handlers.ListBookmarks(d))
		r.Post("/bookmark", handlers.CreateBookmark(d))
		r.Get("/bookmark/{id}", handlers.GetBookmark(d))
		r.Delete("/bookmark/{id}", handlers.DeleteBookmark(d))
	})
}
