package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePrediction")
	defer span.End()

	var req predictionRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.HomeID = strings.TrimSpace(req.HomeID)
	req.AwayID = strings.TrimSpace(req.AwayID)
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome, err := h.predictionService.Predict(ctx, usecase.PredictInput{
		HomeTeamID: req.HomeID,
		AwayTeamID: req.AwayID,
		Settings:   req.Settings.toDomain(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create prediction failed", "home_team_id", req.HomeID, "away_team_id", req.AwayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionOutcomeToDTO(ctx, outcome))
}
