package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/matchup-predictor/external/sportsdata"
	"github.com/riskibarqy/matchup-predictor/internal/config"
	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	cacherepo "github.com/riskibarqy/matchup-predictor/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchup-predictor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchup-predictor/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchup-predictor/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/matchup-predictor/internal/platform/cache"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchup-predictor/internal/platform/ratelimit"
	"github.com/riskibarqy/matchup-predictor/internal/platform/resilience"
	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

const dependencyPingTimeout = 5 * time.Second

// NewHTTPServer wires storage, providers and services behind the router. The
// returned cleanup releases the database and redis connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var closers []func() error
	cleanup := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	teamRepo, statsRepo, closeRepos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeRepos)

	limiter, closeLimiter, err := newScoreboardLimiter(ctx, cfg, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	closers = append(closers, closeLimiter)

	var (
		scoreboardProvider usecase.ScoreboardProvider
		statsProvider      usecase.TeamStatsProvider
	)
	if cfg.SportsDataEnabled {
		client := sportsdata.NewClient(sportsdata.ClientConfig{
			BaseURL:      cfg.SportsDataBaseURL,
			Token:        cfg.SportsDataToken,
			Timeout:      cfg.SportsDataTimeout,
			MaxRetries:   cfg.SportsDataMaxRetries,
			RetryBackoff: cfg.SportsDataRetryBackoff,
			Logger:       logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SportsDataCircuitEnabled,
				FailureThreshold: cfg.SportsDataCircuitFailureCount,
				OpenTimeout:      cfg.SportsDataCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SportsDataCircuitHalfOpenMaxReq,
			},
		})
		scoreboardProvider = client
		statsProvider = client
	} else {
		logger.Info("sports data provider disabled", "reason", "SPORTSDATA_ENABLED=false")
	}

	modelInputSvc := usecase.NewModelInputService(teamRepo, statsRepo, logger)
	handler := httpapi.NewHandler(
		usecase.NewTeamService(teamRepo, statsRepo),
		usecase.NewStatsService(statsRepo),
		usecase.NewPredictionService(modelInputSvc, logger),
		usecase.NewScoreboardService(scoreboardProvider),
		usecase.NewStatsSyncService(
			usecase.StatsSyncConfig{Enabled: cfg.SportsDataEnabled, MaxWorkers: cfg.SyncMaxWorkers},
			statsProvider,
			teamRepo,
			statsRepo,
			logger,
		),
		logger,
	)
	router := httpapi.NewRouter(
		handler,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
		limiter,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (team.Repository, teamstats.Repository, func() error, error) {
	var (
		teamRepo  team.Repository
		statsRepo teamstats.Repository
		closeFn   = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.DBBootstrapSeed {
			seeded, err := postgres.BootstrapSeed(ctx, db)
			if err != nil {
				_ = db.Close()
				return nil, nil, nil, err
			}
			logger.Info("bootstrap seed checked", "seeded", seeded)
		}
		teamRepo = postgres.NewTeamRepository(db)
		statsRepo = postgres.NewTeamStatsRepository(db)
		closeFn = db.Close
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))
	default:
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		statsRepo = memory.NewTeamStatsRepository(memory.SeedTeamSeasonStats())
		logger.Info("storage ready", "driver", config.StorageMemory)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
		statsRepo = cacherepo.NewTeamStatsRepository(statsRepo, store)

		stopJanitor := startCacheJanitor(store, cfg.CacheTTL, logger)
		closeStorage := closeFn
		closeFn = func() error {
			stopJanitor()
			return closeStorage()
		}
	}

	return teamRepo, statsRepo, closeFn, nil
}

// newScoreboardLimiter returns a nil limiter when rate limiting is off. Redis
// backs the limiter when an address is configured; otherwise it is per process.
func newScoreboardLimiter(ctx context.Context, cfg config.Config, logger *logging.Logger) (ratelimit.Limiter, func() error, error) {
	noop := func() error { return nil }
	if !cfg.RateLimitEnabled {
		logger.Info("scoreboard rate limit disabled", "reason", "RATE_LIMIT_ENABLED=false")
		return nil, noop, nil
	}

	limitCfg := ratelimit.Config{Limit: cfg.RateLimitRequests, Window: cfg.RateLimitWindow}
	if cfg.RateLimitRedisAddr == "" {
		limiter, err := ratelimit.NewMemoryLimiter(limitCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("build memory rate limiter: %w", err)
		}
		logger.Info("scoreboard rate limit ready", "backend", "memory", "limit", limitCfg.Limit, "window", limitCfg.Window.String())
		return limiter, noop, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RateLimitRedisAddr,
		Password: cfg.RateLimitRedisPassword,
		DB:       cfg.RateLimitRedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// The middleware fails open, so an unreachable redis only degrades limiting.
		logger.Warn("rate limit redis unreachable at startup", "addr", cfg.RateLimitRedisAddr, "error", err)
	}

	limiter, err := ratelimit.NewRedisLimiter(client, limitCfg)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("build redis rate limiter: %w", err)
	}
	logger.Info("scoreboard rate limit ready", "backend", "redis", "limit", limitCfg.Limit, "window", limitCfg.Window.String())
	return limiter, client.Close, nil
}

// startCacheJanitor purges expired entries every ttl until the returned stop
// func is called.
func startCacheJanitor(store *basecache.Store, ttl time.Duration, logger *logging.Logger) func() {
	if ttl <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if removed := store.PurgeExpired(); removed > 0 {
					logger.Debug("cache entries purged", "removed", removed, "remaining", store.Len())
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-stopped
		})
	}
}
