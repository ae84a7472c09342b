package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	Env             string        // "production" | "development" | anything else (treated as non-production)
	ListenPort      string        // ex: ":8000"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout (ex: 2s)

	APIToken string // shared bearer secret

	LogLevel string // "debug" | "info" | "warn" | "error"
	LogFile  string // JSON log file (ex: info.log), empty disables the file sink

	SeedFile string // optional YAML seed file, empty = built-in seed record

	// Redis (optional backend, empty RedisAddr = in-memory store)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisKeyPrefix      string        // namespace for keys (ex: "bookmarks:")
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries (ex: 2s, grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisWarnThreshold  int           // warn after this many attempts

	// Access restrictions
	AllowedHosts []string // optional, restrict the API to specific Host headers
	AllowedCIDRS []string // optional, restrict probes and metrics to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers

	RateLimitBurst  int // per-IP burst on the bookmark API, 0 disables rate limiting
	RateLimitPerMin int // per-IP refill rate

	StatsInterval time.Duration // bookmarks_stored gauge refresh period, 0 disables
}

// Production reports whether error details must be hidden from clients.
func (c *Config) Production() bool {
	return c.Env == EnvProduction
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first; variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		Env:             getenv("BOOKMARKS_ENV", getenv("NODE_ENV", EnvDevelopment)),
		ListenPort:      getenv("BOOKMARKS_LISTEN_PORT", ":8000"),
		ShutdownTimeout: mustDuration("BOOKMARKS_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("BOOKMARKS_REQUEST_TIMEOUT", 2*time.Second),

		// Auth
		APIToken: requireEnv("API_TOKEN"),

		// Logging
		LogLevel: getenv("BOOKMARKS_LOG_LEVEL", "info"),
		LogFile:  getenv("BOOKMARKS_LOG_FILE", "info.log"),

		// Seed
		SeedFile: getenv("BOOKMARKS_SEED_FILE", ""),

		// Redis settings
		RedisAddr:           getenv("BOOKMARKS_REDIS_ADDR", ""),
		RedisUser:           getenv("BOOKMARKS_REDIS_USERNAME", ""),
		RedisPassword:       getenv("BOOKMARKS_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("BOOKMARKS_REDIS_DB", 0),
		RedisKeyPrefix:      getenv("BOOKMARKS_REDIS_KEY_PREFIX", "bookmarks:"),
		RedisDT:             mustDuration("BOOKMARKS_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("BOOKMARKS_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("BOOKMARKS_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("BOOKMARKS_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("BOOKMARKS_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("BOOKMARKS_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("BOOKMARKS_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("BOOKMARKS_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("BOOKMARKS_REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("BOOKMARKS_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("BOOKMARKS_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("BOOKMARKS_TRUST_PROXY", false),

		RateLimitBurst:  getenvInt("BOOKMARKS_RATE_LIMIT_BURST", 0),
		RateLimitPerMin: getenvInt("BOOKMARKS_RATE_LIMIT_PER_MIN", 60),

		StatsInterval: mustDuration("BOOKMARKS_STATS_INTERVAL", 30*time.Second),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.APIToken = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
