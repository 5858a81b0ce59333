package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchup-predictor/internal/platform/ratelimit"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats", handler.GetTeamStats)
	mux.HandleFunc("GET /v1/stats/years", handler.ListStatYears)
	mux.HandleFunc("GET /v1/stats/{year}", handler.ListStatsByYear)
	mux.HandleFunc("GET /v1/stats/{year}/league-averages", handler.GetLeagueAverages)
	mux.HandleFunc("POST /v1/predictions", handler.CreatePrediction)
}

func registerRateLimitedRoutes(mux *http.ServeMux, handler *Handler, limiter ratelimit.Limiter, logger *logging.Logger) {
	mux.Handle("GET /v1/scoreboard", RateLimit(limiter, logger, http.HandlerFunc(handler.GetScoreboard)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/ingestion/team-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestTeamStats)))
	mux.Handle("POST /v1/internal/jobs/sync-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncStatsJob)))
}
