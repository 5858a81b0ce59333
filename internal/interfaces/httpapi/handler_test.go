package httpapi

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchup-predictor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchup-predictor/internal/platform/ratelimit"
	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

const testJobToken = "job-secret"

type stubScoreboardProvider struct {
	calls int
}

func (s *stubScoreboardProvider) FetchScoreboard(_ context.Context, year, week int) (usecase.ExternalScoreboard, error) {
	s.calls++
	home, away := 31, 24
	return usecase.ExternalScoreboard{
		Year: year,
		Week: week,
		Games: []usecase.ExternalGame{
			{
				ExternalID:   "401520001",
				StartsAt:     time.Date(2024, 9, 7, 19, 30, 0, 0, time.UTC),
				Status:       usecase.GameStatusFinal,
				HomeTeamID:   "georgia",
				HomeTeamName: "Georgia",
				AwayTeamID:   "texas",
				AwayTeamName: "Texas",
				HomeScore:    &home,
				AwayScore:    &away,
			},
		},
	}, nil
}

type envelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, limiter ratelimit.Limiter) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	statsRepo := memory.NewTeamStatsRepository(memory.SeedTeamSeasonStats())

	handler := NewHandler(
		usecase.NewTeamService(teamRepo, statsRepo),
		usecase.NewStatsService(statsRepo),
		usecase.NewPredictionService(usecase.NewModelInputService(teamRepo, statsRepo, logger), logger),
		usecase.NewScoreboardService(&stubScoreboardProvider{}),
		usecase.NewStatsSyncService(usecase.StatsSyncConfig{}, nil, teamRepo, statsRepo, logger),
		logger,
	)
	return NewRouter(handler, logger, true, []string{"*"}, testJobToken, limiter)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response body: %v (body=%s)", err, rec.Body.String())
	}
	return out
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t, nil), http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_OpenAPIServed(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t, nil), http.MethodGet, "/openapi.yaml", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/v1/predictions") {
		t.Fatalf("expected predictions path in openapi document")
	}
}

func TestHandler_Teams(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list teams: expected 200, got %d", rec.Code)
	}
	list := decodeEnvelope[[]teamDTO](t, rec)
	if len(list.Data) != len(memory.SeedTeams()) {
		t.Fatalf("expected %d teams, got %d", len(memory.SeedTeams()), len(list.Data))
	}
	if list.Data[0].ID != "alabama" || len(list.Data[0].TeamColor) != 2 {
		t.Fatalf("unexpected first team: %+v", list.Data[0])
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/teams/unknown", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown team: expected 404, got %d", rec.Code)
	}
}

func TestHandler_TeamStats(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	tests := []struct {
		name     string
		path     string
		wantCode int
		wantYear int
	}{
		{name: "latest season", path: "/v1/teams/georgia/stats", wantCode: http.StatusOK, wantYear: memory.SeedYearCurrent},
		{name: "latest season falls back", path: "/v1/teams/texas/stats", wantCode: http.StatusOK, wantYear: memory.SeedYearPrevious},
		{name: "explicit year", path: "/v1/teams/georgia/stats?year=2023", wantCode: http.StatusOK, wantYear: memory.SeedYearPrevious},
		{name: "invalid year", path: "/v1/teams/georgia/stats?year=abc", wantCode: http.StatusBadRequest},
		{name: "missing season", path: "/v1/teams/texas/stats?year=2024", wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		rec := doRequest(t, router, http.MethodGet, tc.path, "", nil)
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d (body=%s)", tc.name, tc.wantCode, rec.Code, rec.Body.String())
		}
		if tc.wantYear == 0 {
			continue
		}
		got := decodeEnvelope[teamSeasonStatsDTO](t, rec)
		if got.Data.Year != tc.wantYear {
			t.Fatalf("%s: expected year %d, got %d", tc.name, tc.wantYear, got.Data.Year)
		}
	}
}

func TestHandler_StatsBrowsing(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/v1/stats/years", "", nil)
	years := decodeEnvelope[[]int](t, rec)
	if len(years.Data) != 2 || years.Data[0] != memory.SeedYearCurrent || years.Data[1] != memory.SeedYearPrevious {
		t.Fatalf("unexpected years: %v", years.Data)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/stats/2024", "", nil)
	rows := decodeEnvelope[[]teamSeasonStatsDTO](t, rec)
	if len(rows.Data) != 5 {
		t.Fatalf("expected 5 rows for 2024, got %d", len(rows.Data))
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/stats/2024/league-averages", "", nil)
	avg := decodeEnvelope[leagueAveragesDTO](t, rec)
	if avg.Data.TeamCount != 5 || avg.Data.DefensiveYardsAllowed <= 0 {
		t.Fatalf("unexpected league averages: %+v", avg.Data)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/stats/1999/league-averages", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for season without data, got %d", rec.Code)
	}
	body := decodeEnvelope[any](t, rec)
	if body.Error == nil || body.Error.Status != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND error, got %+v", body.Error)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/stats/0", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for year 0, got %d", rec.Code)
	}
}

func TestHandler_CreatePrediction(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/v1/predictions", `{"homeId":"georgia","awayId":"oregon"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("fixed model: expected 200, got %d (body=%s)", rec.Code, rec.Body.String())
	}
	fixed := decodeEnvelope[predictionResponseDTO](t, rec)
	if fixed.Data.Meta.Model != "fixed" || fixed.Data.Meta.Year != memory.SeedYearCurrent {
		t.Fatalf("unexpected meta: %+v", fixed.Data.Meta)
	}
	if fixed.Data.Settings != nil {
		t.Fatalf("fixed model should not echo settings")
	}
	if len(fixed.Data.Contributions) != 6 {
		t.Fatalf("expected 6 contributions, got %d", len(fixed.Data.Contributions))
	}
	p := fixed.Data.Prediction
	if math.Abs(p.Total-(p.HomeScore+p.AwayScore)) > 0.1+1e-9 {
		t.Fatalf("total %v != %v + %v", p.Total, p.HomeScore, p.AwayScore)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", p.Confidence)
	}

	again := decodeEnvelope[predictionResponseDTO](t, doRequest(t, router, http.MethodPost, "/v1/predictions", `{"homeId":"georgia","awayId":"oregon"}`, nil))
	if again.Data.Prediction != p {
		t.Fatalf("prediction not deterministic: %+v vs %+v", again.Data.Prediction, p)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/predictions", `{"homeId":"georgia","awayId":"texas","settings":{"recentForm":1}}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("tuned model: expected 200, got %d (body=%s)", rec.Code, rec.Body.String())
	}
	tuned := decodeEnvelope[predictionResponseDTO](t, rec)
	if tuned.Data.Meta.Model != "tuned" || tuned.Data.Meta.Year != memory.SeedYearPrevious {
		t.Fatalf("unexpected meta: %+v", tuned.Data.Meta)
	}
	if tuned.Data.Settings == nil || tuned.Data.Settings.RecentForm != 0.36 || tuned.Data.Settings.FPIEdge != 0.6 {
		t.Fatalf("expected clamped settings with defaults, got %+v", tuned.Data.Settings)
	}
}

func TestHandler_CreatePredictionRejectsBadInput(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "identical teams", body: `{"homeId":"georgia","awayId":"georgia"}`, wantCode: http.StatusBadRequest},
		{name: "missing away", body: `{"homeId":"georgia"}`, wantCode: http.StatusBadRequest},
		{name: "unknown field", body: `{"homeId":"georgia","awayId":"oregon","seed":"x"}`, wantCode: http.StatusBadRequest},
		{name: "negative weight", body: `{"homeId":"georgia","awayId":"oregon","settings":{"fpiEdge":-1}}`, wantCode: http.StatusBadRequest},
		{name: "malformed json", body: `{"homeId":`, wantCode: http.StatusBadRequest},
		{name: "unknown team", body: `{"homeId":"georgia","awayId":"nowhere"}`, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		rec := doRequest(t, router, http.MethodPost, "/v1/predictions", tc.body, nil)
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d (body=%s)", tc.name, tc.wantCode, rec.Code, rec.Body.String())
		}
	}
}

func TestHandler_ScoreboardRateLimited(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimit.NewMemoryLimiter(ratelimit.Config{Limit: 1, Window: time.Minute})
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	router := newTestRouter(t, limiter)
	headers := map[string]string{"X-Forwarded-For": "203.0.113.7"}

	rec := doRequest(t, router, http.MethodGet, "/v1/scoreboard?year=2024&week=2", "", headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d (body=%s)", rec.Code, rec.Body.String())
	}
	board := decodeEnvelope[scoreboardDTO](t, rec)
	if len(board.Data.Games) != 1 || board.Data.Games[0].Home.Score == nil || *board.Data.Games[0].Home.Score != 31 {
		t.Fatalf("unexpected scoreboard: %+v", board.Data)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("expected remaining 0, got %q", got)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/scoreboard?year=2024&week=2", "", headers)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
	body := decodeEnvelope[any](t, rec)
	if body.Error == nil || body.Error.Status != "RESOURCE_EXHAUSTED" {
		t.Fatalf("expected RESOURCE_EXHAUSTED, got %+v", body.Error)
	}

	other := doRequest(t, router, http.MethodGet, "/v1/scoreboard?year=2024&week=2", "", map[string]string{"X-Forwarded-For": "198.51.100.2"})
	if other.Code != http.StatusOK {
		t.Fatalf("other client: expected 200, got %d", other.Code)
	}

	bad := doRequest(t, newTestRouter(t, nil), http.MethodGet, "/v1/scoreboard?year=2024&week=99", "", nil)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("invalid week: expected 400, got %d", bad.Code)
	}
}

func TestHandler_InternalIngestion(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	payload := `{"rows":[{"teamId":"texas","year":2024,"yardsPerGameSeason":455.1,"pointsPerGameSeason":33.2,"defensiveYardsAllowedSeason":301.4,"defensivePointsAllowedSeason":15.3,"yardsPerPointSeason":13.7,"fpiDefense":-6.1}]}`

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/ingestion/team-stats", payload, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/ingestion/team-stats", payload, map[string]string{"X-Internal-Job-Token": testJobToken})
	if rec.Code != http.StatusOK {
		t.Fatalf("ingest: expected 200, got %d (body=%s)", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[ingestTeamStatsResponse](t, rec)
	if got.Data.Upserted != 1 {
		t.Fatalf("expected 1 upserted row, got %d", got.Data.Upserted)
	}

	stats := decodeEnvelope[teamSeasonStatsDTO](t, doRequest(t, router, http.MethodGet, "/v1/teams/texas/stats", "", nil))
	if stats.Data.Year != 2024 || stats.Data.YardsPerGameSeason != 455.1 {
		t.Fatalf("expected ingested 2024 row, got %+v", stats.Data)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/ingestion/team-stats",
		`{"rows":[{"teamId":"nowhere","year":2024}]}`, map[string]string{"X-Internal-Job-Token": testJobToken})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown team: expected 404, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/ingestion/team-stats",
		`{"rows":[{"teamId":"texas","year":2024,"pointsPerGameSeason":-1}]}`, map[string]string{"X-Internal-Job-Token": testJobToken})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative value: expected 400, got %d", rec.Code)
	}
}

func TestHandler_SyncStatsDisabled(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t, nil), http.MethodPost, "/v1/internal/jobs/sync-stats", `{"year":2024}`,
		map[string]string{"X-Internal-Job-Token": testJobToken})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d (body=%s)", rec.Code, rec.Body.String())
	}
}
