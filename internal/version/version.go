// Package version holds build metadata, overridden with -ldflags "-X" at build time.
package version

import (
	"runtime"
	"time"
)

var (
	Version   = "dev"                           // ex: v1.0.0
	Commit    = "none"                          // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2026-01-15T10:00:00Z
	GoVersion = runtime.Version()               // go version
)
