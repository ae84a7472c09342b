package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/respond"
)

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.Text(w, http.StatusOK, "Hello, world!")
	}
}

func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.Text(w, http.StatusNotFound, msgNotFound)
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.Text(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}
}
