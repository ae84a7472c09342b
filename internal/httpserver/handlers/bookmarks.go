package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/bookmarks/internal/domain"
	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/respond"
	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/metrics"
	"github.com/MrSnakeDoc/bookmarks/internal/store"
)

var errTrailingData = errors.New("unexpected data after JSON body")

const (
	msgNotFound    = "Not Found"
	msgInvalidData = "Invalid data"

	maxBodyBytes = 1 << 20
)

// ListBookmarks returns the whole collection in insertion order.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookmarks, err := d.Store.List(r.Context())
		if err != nil {
			serverError(w, d, "list", err)
			return
		}

		metrics.BookmarkOperations.WithLabelValues("list", metrics.ResultOK).Inc()
		respond.JSON(w, http.StatusOK, bookmarks)
	}
}

// GetBookmark returns one bookmark or 404.
func GetBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		bookmark, err := d.Store.FindByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			notFound(w, d, "get", id)
			return
		}
		if err != nil {
			serverError(w, d, "get", err)
			return
		}

		metrics.BookmarkOperations.WithLabelValues("get", metrics.ResultOK).Inc()
		respond.JSON(w, http.StatusOK, bookmark)
	}
}

// CreateBookmark validates the payload, assigns a UUID and appends the bookmark.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeNewBookmark(w, r)
		if err != nil {
			d.Logger.Error("invalid request body", logger.Error(err))
			invalid(w)
			return
		}

		if err := input.Validate(); err != nil {
			d.Logger.Error(err.Error())
			invalid(w)
			return
		}

		bookmark := input.WithID(uuid.New().String())
		if err := d.Store.Append(r.Context(), bookmark); err != nil {
			serverError(w, d, "create", err)
			return
		}

		d.Logger.Info("bookmark created", logger.String("id", bookmark.ID))
		metrics.BookmarkOperations.WithLabelValues("create", metrics.ResultOK).Inc()
		refreshStoredGauge(r.Context(), d)

		w.Header().Set("Location", fmt.Sprintf("http://%s/bookmark/%s", r.Host, bookmark.ID))
		respond.JSON(w, http.StatusCreated, bookmark)
	}
}

// DeleteBookmark removes one bookmark or answers 404.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := d.Store.RemoveByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			notFound(w, d, "delete", id)
			return
		}
		if err != nil {
			serverError(w, d, "delete", err)
			return
		}

		d.Logger.Info("bookmark deleted", logger.String("id", id))
		metrics.BookmarkOperations.WithLabelValues("delete", metrics.ResultOK).Inc()
		refreshStoredGauge(r.Context(), d)

		respond.Text(w, http.StatusOK, fmt.Sprintf("Bookmark with id %s deleted.", id))
	}
}

// decodeNewBookmark reads exactly one JSON value from the body.
func decodeNewBookmark(w http.ResponseWriter, r *http.Request) (domain.NewBookmark, error) {
	var input domain.NewBookmark

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&input); err != nil {
		return input, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return input, errTrailingData
	}
	return input, nil
}

func notFound(w http.ResponseWriter, d deps.Deps, op, id string) {
	d.Logger.Error("bookmark not found", logger.String("id", id))
	metrics.BookmarkOperations.WithLabelValues(op, metrics.ResultNotFound).Inc()
	respond.Text(w, http.StatusNotFound, msgNotFound)
}

func invalid(w http.ResponseWriter) {
	metrics.BookmarkOperations.WithLabelValues("create", metrics.ResultInvalid).Inc()
	respond.Text(w, http.StatusBadRequest, msgInvalidData)
}

func serverError(w http.ResponseWriter, d deps.Deps, op string, err error) {
	d.Logger.Error("bookmark store failure", logger.String("operation", op), logger.Error(err))
	metrics.BookmarkOperations.WithLabelValues(op, metrics.ResultError).Inc()
	respond.ServerError(w, d.Production, err)
}

// refreshStoredGauge updates the stored gauge; count errors are only logged.
func refreshStoredGauge(ctx context.Context, d deps.Deps) {
	n, err := d.Store.Len(ctx)
	if err != nil {
		d.Logger.Debug("failed to count bookmarks", logger.Error(err))
		return
	}
	metrics.BookmarksStored.Set(float64(n))
}
