package deps

import (
	"time"

	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/store"
)

type Deps struct {
	Logger          logger.Logger
	Store           store.Store // bookmark collection
	StoreBackend    string      // "memory" | "redis"
	APIToken        string      // shared bearer secret
	Production      bool        // hide error details from clients
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	RequestTimeout  time.Duration // per-request timeout, 0 disables
	AllowedHosts    []string      // Host headers allowed on the bookmark API
	AllowedCIDRS    []string      // IPs allowed on probes and metrics
	TrustProxy      bool          // true if running behind a trusted reverse proxy
	RateLimitBurst  int           // per-IP burst on the bookmark API, 0 disables
	RateLimitPerMin int           // per-IP refill rate
}
