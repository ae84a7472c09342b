package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/bookmarks/internal/config"
	"github.com/MrSnakeDoc/bookmarks/internal/httpserver"
	"github.com/MrSnakeDoc/bookmarks/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/metrics"
	"github.com/MrSnakeDoc/bookmarks/internal/redis"
	"github.com/MrSnakeDoc/bookmarks/internal/scheduler"
	"github.com/MrSnakeDoc/bookmarks/internal/seed"
	"github.com/MrSnakeDoc/bookmarks/internal/store"
	"github.com/MrSnakeDoc/bookmarks/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/bookmarks/internal/store/redis"
	"github.com/MrSnakeDoc/bookmarks/internal/version"
)

const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	stats       *scheduler.StatsRefresher
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient, err := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Console: !cfg.Production(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()

	s, backend, redisClient, err := openStore(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	bookmarks, err := seed.Resolve(cfg.SeedFile)
	if err != nil {
		closeRedis(redisClient, loggerClient)
		return nil, fmt.Errorf("failed to load seed bookmarks: %w", err)
	}
	if _, err := seed.Apply(ctx, s, bookmarks, loggerClient); err != nil {
		closeRedis(redisClient, loggerClient)
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}
	if n, err := s.Len(ctx); err == nil {
		metrics.BookmarksStored.Set(float64(n))
	}

	var stats *scheduler.StatsRefresher
	if cfg.StatsInterval > 0 {
		stats = scheduler.NewStatsRefresher(s, loggerClient, cfg.StatsInterval)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		Store:           s,
		StoreBackend:    backend,
		APIToken:        cfg.APIToken,
		Production:      cfg.Production(),
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		RequestTimeout:  cfg.RequestTimeout,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		stats:       stats,
	}, nil
}

// openStore picks the Redis backend when an address is configured, the in-memory one otherwise.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Store, string, *goredis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Info("using in-memory bookmark store")
		return memory.New(), backendMemory, nil, nil
	}

	// fail fast if unavailable
	client, err := redis.Connect(ctx, redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, log)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("using redis bookmark store", logger.String("prefix", cfg.RedisKeyPrefix))
	return redisstore.NewStore(client, cfg.RedisKeyPrefix), backendRedis, client, nil
}

func closeRedis(client *goredis.Client, log logger.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Warnf("failed to close redis: %v", err)
		return
	}
	log.Info("✅ Redis closed cleanly")
}

func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Infof("🚀 Starting bookmarks v%s on %s (env=%s)", version.Version, a.cfg.ListenPort, a.cfg.Env)
	a.logger.Infof("bookmarks %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.stats != nil {
		if err := a.stats.Start(ctx); err != nil {
			return fmt.Errorf("failed to start stats refresher: %w", err)
		}
		a.logger.Info("stats refresher started",
			logger.Duration("interval", a.cfg.StatsInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		closeRedis(a.redisClient, a.logger)
		return err
	}

	if a.stats != nil {
		a.stats.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	closeRedis(a.redisClient, a.logger)

	a.logger.Info("✅ bookmarks stopped cleanly")
	return nil
}
