package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results used as the "result" label.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	BookmarkOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarks_operations_total",
		Help: "Bookmark API operations by operation and result.",
	}, []string{"operation", "result"})

	BookmarksStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookmarks_stored",
		Help: "Number of bookmarks currently held by the store.",
	})

	AuthRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarks_auth_rejections_total",
		Help: "Requests rejected for a missing or invalid bearer token.",
	})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarks_rate_limited_total",
		Help: "Requests rejected by the per-IP rate limiter.",
	})

	PanicsRecoveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarks_panics_recovered_total",
		Help: "Handler panics turned into 500 responses.",
	})
)
