package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
	defer span.End()

	query := r.URL.Query()
	year, err := strconv.Atoi(strings.TrimSpace(query.Get("year")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: year must be integer", usecase.ErrInvalidInput))
		return
	}
	week, err := strconv.Atoi(strings.TrimSpace(query.Get("week")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: week must be integer", usecase.ErrInvalidInput))
		return
	}

	board, err := h.scoreboardService.Get(ctx, year, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get scoreboard failed", "year", year, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreboardToDTO(board))
}
