package sportsdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/matchup-predictor/internal/platform/resilience"
	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

const scoreboardBody = `{
  "season": {"year": 2024},
  "week": {"number": 3},
  "events": [
    {
      "id": "401",
      "date": "2024-09-14T19:30Z",
      "status": {"type": {"name": "STATUS_SCHEDULED"}},
      "competitions": [{
        "venue": {"fullName": "Bryant-Denny Stadium"},
        "competitors": [
          {"homeAway": "home", "score": "0", "team": {"id": "alabama", "displayName": "Alabama"}},
          {"homeAway": "away", "score": "0", "team": {"id": "texas", "displayName": "Texas"}}
        ]
      }]
    },
    {
      "id": "400",
      "date": "2024-09-14T16:00:00Z",
      "status": {"type": {"name": "STATUS_FINAL", "completed": true}},
      "competitions": [{
        "venue": {"fullName": "Sanford Stadium"},
        "competitors": [
          {"homeAway": "away", "score": "17", "team": {"id": "michigan", "displayName": "Michigan"}},
          {"homeAway": "home", "score": "31", "team": {"id": "georgia", "displayName": "Georgia"}}
        ]
      }]
    },
    {"id": "", "competitions": []}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		BaseURL:      server.URL,
		Token:        "secret-token",
		Timeout:      2 * time.Second,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewClient(cfg)
}

func TestFetchScoreboard(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scoreboard" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("year") != "2024" || r.URL.Query().Get("week") != "3" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "Bearer secret-token" {
			t.Errorf("missing bearer token")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardBody))
	}, nil)

	board, err := client.FetchScoreboard(context.Background(), 2024, 3)
	if err != nil {
		t.Fatalf("fetch scoreboard: %v", err)
	}
	if board.Year != 2024 || board.Week != 3 {
		t.Fatalf("unexpected board header: %+v", board)
	}
	if len(board.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(board.Games))
	}

	final := board.Games[0]
	if final.ExternalID != "400" || final.Status != usecase.GameStatusFinal {
		t.Fatalf("expected earliest game first and final, got %+v", final)
	}
	if final.HomeTeamID != "georgia" || final.AwayTeamID != "michigan" {
		t.Fatalf("unexpected sides: %+v", final)
	}
	if final.HomeScore == nil || *final.HomeScore != 31 || final.AwayScore == nil || *final.AwayScore != 17 {
		t.Fatalf("unexpected scores: home=%v away=%v", final.HomeScore, final.AwayScore)
	}

	scheduled := board.Games[1]
	if scheduled.Status != usecase.GameStatusScheduled || scheduled.HomeScore != nil {
		t.Fatalf("expected scheduled game without scores, got %+v", scheduled)
	}
	if !scheduled.StartsAt.Equal(time.Date(2024, 9, 14, 19, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start time %v", scheduled.StartsAt)
	}
}

func TestFetchTeamSeasonStats_NullsBecomeZero(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams/ohio-state/statistics" || r.URL.Query().Get("season") != "2024" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
		  "team": {"id": "ohio-state"},
		  "season": 2024,
		  "stats": {
		    "yardsPerGame": {"season": 448.5, "last3": 462, "last1": null, "home": 470, "away": 421},
		    "pointsPerGame": {"season": 35.9, "last3": 38.7},
		    "yardsPerPoint": {"season": 12.49},
		    "defense": {"yardsAllowedPerGame": 284, "pointsAllowedPerGame": null},
		    "fpi": {"overall": 23.7, "offense": 10.6, "defense": -10.2}
		  }
		}`))
	}, nil)

	row, err := client.FetchTeamSeasonStats(context.Background(), "ohio-state", 2024)
	if err != nil {
		t.Fatalf("fetch team stats: %v", err)
	}
	if row.TeamID != "ohio-state" || row.Year != 2024 {
		t.Fatalf("unexpected identity: %+v", row)
	}
	if row.YardsPerGameSeason != 448.5 || row.YardsPerGameLast1 != 0 || row.PointsPerGameHome != 0 {
		t.Fatalf("unexpected yardage/points: %+v", row.TeamStats)
	}
	if row.DefensiveYardsAllowedSeason != 284 || row.DefensivePointsAllowedSeason != 0 {
		t.Fatalf("unexpected defense: %+v", row.TeamStats)
	}
	if row.FPIDefense != -10.2 {
		t.Fatalf("unexpected fpi defense: %v", row.FPIDefense)
	}
	if !row.MissingCore() {
		t.Fatalf("expected missing core data when a core field is null")
	}
}

func TestFetch_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"events": []}`))
	}, nil)

	board, err := client.FetchScoreboard(context.Background(), 2024, 1)
	if err != nil {
		t.Fatalf("expected success after retries: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", calls.Load())
	}
	if board.Year != 2024 || board.Week != 1 || len(board.Games) != 0 {
		t.Fatalf("unexpected empty board: %+v", board)
	}
}

func TestFetch_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
		calls   int32
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: usecase.ErrNotFound, calls: 1},
		{name: "exhausted retries", status: http.StatusServiceUnavailable, wantErr: usecase.ErrDependencyUnavailable, calls: 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}, nil)

			_, err := client.FetchTeamSeasonStats(context.Background(), "alabama", 2024)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if calls.Load() != tc.calls {
				t.Fatalf("expected %d calls, got %d", tc.calls, calls.Load())
			}
		})
	}
}

func TestFetch_BadRequestIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}, nil)

	_, err := client.FetchScoreboard(context.Background(), 2024, 1)
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("client errors must not read as dependency outages: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single call, got %d", calls.Load())
	}
}

func TestFetch_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, func(cfg *ClientConfig) {
		cfg.MaxRetries = 0
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.FetchScoreboard(ctx, 2024, 1); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}

	_, err := client.FetchScoreboard(ctx, 2024, 1)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected open circuit to map to dependency unavailable, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected open circuit to skip the provider, got %d calls", calls.Load())
	}
}

func TestBuildURLSortsQuery(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "https://data.example.com/v1/"})
	got := client.buildURL("/scoreboard", map[string]string{"week": "3", "year": "2024"})
	if got != "https://data.example.com/v1/scoreboard?week=3&year=2024" {
		t.Fatalf("unexpected url %s", got)
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText("dial https://x/?apikey=abc123&token=secret-token failed", "secret-token")
	if strings.Contains(got, "abc123") || strings.Contains(got, "secret-token") {
		t.Fatalf("expected secrets to be redacted, got %s", got)
	}
}

func TestMissingBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{})
	if _, err := client.FetchScoreboard(context.Background(), 2024, 1); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable without base url, got %v", err)
	}
}
