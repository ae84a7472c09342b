package mw

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/respond"
	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/metrics"
)

// Recover turns any panic raised further down the chain into a 500.
// Registered ahead of the routes, it wraps every handler and middleware after it.
func Recover(log logger.Logger, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					// net/http handles this one itself
					panic(rvr)
				}

				err, ok := rvr.(error)
				if !ok {
					err = fmt.Errorf("%v", rvr)
				}

				log.Error("unhandled error",
					logger.String("method", r.Method),
					logger.String("path", r.URL.Path),
					logger.String("request_id", middleware.GetReqID(r.Context())),
					logger.Error(err),
					logger.String("stack", string(debug.Stack())))
				metrics.PanicsRecoveredTotal.Inc()

				respond.ServerError(w, production, err)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
