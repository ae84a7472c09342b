package mw

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/respond"
	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/metrics"
)

type unauthorizedResponse struct {
	Error string `json:"error"`
}

// BearerToken rejects requests whose Authorization header does not carry apiToken.
// The header is "<scheme> <token>"; the scheme is not checked.
func BearerToken(apiToken string, log logger.Logger) func(http.Handler) http.Handler {
	expected := []byte(apiToken)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := tokenFromHeader(r.Header.Get("Authorization"))
			if !ok || len(expected) == 0 || subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
				log.Error("Unauthorized request",
					logger.String("path", r.URL.Path),
					logger.String("method", r.Method))
				metrics.AuthRejectionsTotal.Inc()
				respond.JSON(w, http.StatusUnauthorized, unauthorizedResponse{Error: "Unauthorized request"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// tokenFromHeader returns the second space separated element of the header.
func tokenFromHeader(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}
