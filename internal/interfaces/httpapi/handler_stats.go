package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

func (h *Handler) ListStatYears(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatYears")
	defer span.End()

	years, err := h.statsService.ListYears(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list stat years failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if years == nil {
		years = []int{}
	}

	writeSuccess(ctx, w, http.StatusOK, years)
}

func (h *Handler) ListStatsByYear(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatsByYear")
	defer span.End()

	year, err := parseYearPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.ListByYear(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "list stats by year failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamSeasonStatsDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, teamSeasonStatsToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueAverages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueAverages")
	defer span.End()

	year, err := parseYearPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	avg, err := h.statsService.GetLeagueAverages(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "get league averages failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueAveragesToDTO(avg))
}

func parseYearPath(r *http.Request) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(r.PathValue("year")))
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("%w: year must be positive integer", usecase.ErrInvalidInput)
	}
	return year, nil
}
