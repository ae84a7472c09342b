package domain

import (
	"encoding/json"
	"errors"
)

var (
	// ErrTitleRequired is returned when a bookmark has no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrURLRequired is returned when a bookmark has no url.
	ErrURLRequired = errors.New("url is required")
)

// Bookmark is the only stored entity.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is generated server-side on create (random UUID).
	// Compared as a plain string, never coerced to a number.
	ID string `json:"id"`

	// ─────────────────────────────
	// Required fields
	// ─────────────────────────────

	// Title is required at creation time.
	Title string `json:"title"`

	// URL is required at creation time. No format validation.
	URL string `json:"url"`

	// ─────────────────────────────
	// Optional fields
	// ─────────────────────────────

	Description string `json:"description,omitempty"`

	// Rating is stored and echoed back verbatim, whatever its JSON type.
	Rating json.RawMessage `json:"rating,omitempty"`
}

// NewBookmark is the client payload of a create request.
type NewBookmark struct {
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Description string          `json:"description,omitempty"`
	Rating      json.RawMessage `json:"rating,omitempty"`
}

// Validate checks required fields, title first then url.
func (n NewBookmark) Validate() error {
	if n.Title == "" {
		return ErrTitleRequired
	}
	if n.URL == "" {
		return ErrURLRequired
	}
	return nil
}

// WithID builds the stored record for the given id.
func (n NewBookmark) WithID(id string) Bookmark {
	return Bookmark{
		ID:          id,
		Title:       n.Title,
		URL:         n.URL,
		Description: n.Description,
		Rating:      n.Rating,
	}
}
