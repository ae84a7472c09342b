package mw

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/bookmarks/internal/logger"
)

func TestRecover(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		panicValue interface{}
		wantBody   string
	}{
		{
			name:       "production hides the error",
			production: true,
			panicValue: errors.New("database exploded"),
			wantBody:   `{"error":{"message":"server error"}}`,
		},
		{
			name:       "development shows the error",
			production: false,
			panicValue: errors.New("database exploded"),
			wantBody:   `"message":"database exploded"`,
		},
		{
			name:       "non error panic value",
			production: false,
			panicValue: "plain string",
			wantBody:   `"message":"plain string"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Recover(logger.NewNop(), tt.production)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookmark", nil))

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
			if tt.production && strings.Contains(rec.Body.String(), "exploded") {
				t.Errorf("production body leaked the error: %q", rec.Body.String())
			}
		})
	}
}

func TestRecoverPassesThrough(t *testing.T) {
	h := Recover(logger.NewNop(), true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
