package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/riskibarqy/matchup-predictor/internal/config"
	basecache "github.com/riskibarqy/matchup-predictor/internal/platform/cache"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		StorageDriver:      config.StorageMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		RateLimitEnabled:   true,
		RateLimitRequests:  1,
		RateLimitWindow:    time.Minute,
		SyncMaxWorkers:     2,
	}
}

func TestNewHTTPServer_MemoryStorage(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
	}()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/predictions", strings.NewReader(`{"homeId":"michigan","awayId":"ohio-state"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected prediction to succeed, got %d (body=%s)", rec.Code, rec.Body.String())
	}

	// Provider is disabled, so the scoreboard is unavailable but still counted.
	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scoreboard?year=2024&week=1", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without provider, got %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scoreboard?year=2024&week=1", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on second call, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, _, err := NewHTTPServer(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewScoreboardLimiter(t *testing.T) {
	logger := logging.NewNop()

	t.Run("disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.RateLimitEnabled = false
		limiter, closeFn, err := newScoreboardLimiter(context.Background(), cfg, logger)
		if err != nil || limiter != nil {
			t.Fatalf("expected nil limiter, got %v err=%v", limiter, err)
		}
		if err := closeFn(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig()
		cfg.RateLimitRedisAddr = mr.Addr()
		limiter, closeFn, err := newScoreboardLimiter(context.Background(), cfg, logger)
		if err != nil {
			t.Fatalf("new limiter: %v", err)
		}
		defer func() { _ = closeFn() }()

		decision, err := limiter.Allow(context.Background(), "203.0.113.1")
		if err != nil {
			t.Fatalf("allow: %v", err)
		}
		if !decision.Allowed || decision.Remaining != 0 {
			t.Fatalf("unexpected decision: %+v", decision)
		}
		if len(mr.Keys()) != 1 {
			t.Fatalf("expected one redis bucket, got %v", mr.Keys())
		}
	})
}

func TestFormatDBQueryForTrace(t *testing.T) {
	t.Parallel()

	got := formatDBQueryForTrace("  SELECT *\n\tFROM teams\n  WHERE id = $1 ")
	if got != "SELECT * FROM teams WHERE id = $1" {
		t.Fatalf("unexpected formatted query: %q", got)
	}

	long := formatDBQueryForTrace("SELECT " + strings.Repeat("x", maxTracedQueryLength))
	if len(long) != maxTracedQueryLength+3 || !strings.HasSuffix(long, "...") {
		t.Fatalf("expected truncated query, got length %d", len(long))
	}
}

func TestStartCacheJanitor_PurgesAndStops(t *testing.T) {
	t.Parallel()

	store := basecache.NewStore(10 * time.Millisecond)
	store.Set(context.Background(), "team:list", "x")

	stop := startCacheJanitor(store, 10*time.Millisecond, logging.NewNop())
	deadline := time.Now().Add(time.Second)
	for store.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	stop()
	stop()

	if store.Len() != 0 {
		t.Fatalf("expected janitor to purge expired entries, len=%d", store.Len())
	}
}
