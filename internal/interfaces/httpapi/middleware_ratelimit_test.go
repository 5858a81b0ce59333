package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchup-predictor/internal/platform/ratelimit"
)

type limiterFunc func(ctx context.Context, key string) (ratelimit.Decision, error)

func (f limiterFunc) Allow(ctx context.Context, key string) (ratelimit.Decision, error) {
	return f(ctx, key)
}

func TestRateLimit_FailsOpenOnLimiterError(t *testing.T) {
	t.Parallel()

	limiter := limiterFunc(func(context.Context, string) (ratelimit.Decision, error) {
		return ratelimit.Decision{}, errors.New("redis down")
	})
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RateLimit(limiter, logging.NewNop(), next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scoreboard", nil))

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected request to pass through, called=%v code=%d", called, rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "" {
		t.Fatalf("did not expect rate limit headers when limiter failed")
	}
}

func TestRateLimit_KeysByClientIP(t *testing.T) {
	t.Parallel()

	var gotKey string
	limiter := limiterFunc(func(_ context.Context, key string) (ratelimit.Decision, error) {
		gotKey = key
		return ratelimit.Decision{Allowed: true, Limit: 10, Remaining: 9, ResetAfter: 1500 * time.Millisecond}, nil
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/scoreboard", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	rec := httptest.NewRecorder()
	RateLimit(limiter, nil, next).ServeHTTP(rec, req)

	if gotKey != "203.0.113.9" {
		t.Fatalf("expected first forwarded address as key, got %q", gotKey)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "10" {
		t.Fatalf("unexpected X-RateLimit-Limit: %q", got)
	}
	if got := rec.Header().Get("X-RateLimit-Reset"); got != "2" {
		t.Fatalf("unexpected X-RateLimit-Reset: %q", got)
	}
}

func TestRateLimit_NilLimiterPassesThrough(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	rec := httptest.NewRecorder()
	RateLimit(nil, nil, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scoreboard", nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected passthrough status, got %d", rec.Code)
	}
}

func TestResolveClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "fly header wins", headers: map[string]string{"Fly-Client-IP": "198.51.100.1", "X-Forwarded-For": "203.0.113.2"}, remote: "10.0.0.1:1234", want: "198.51.100.1"},
		{name: "forwarded list", headers: map[string]string{"X-Forwarded-For": "203.0.113.2, 10.0.0.1"}, remote: "10.0.0.1:1234", want: "203.0.113.2"},
		{name: "invalid header falls back", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "192.0.2.5:4321", want: "192.0.2.5"},
		{name: "nothing parses", remote: "garbage", want: ""},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tc.remote
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		if got := resolveClientIP(req); got != tc.want {
			t.Fatalf("%s: resolveClientIP()=%q want %q", tc.name, got, tc.want)
		}
	}
}
