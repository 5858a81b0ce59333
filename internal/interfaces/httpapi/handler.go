package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	teamService       *usecase.TeamService
	statsService      *usecase.StatsService
	predictionService *usecase.PredictionService
	scoreboardService *usecase.ScoreboardService
	statsSyncService  *usecase.StatsSyncService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	statsService *usecase.StatsService,
	predictionService *usecase.PredictionService,
	scoreboardService *usecase.ScoreboardService,
	statsSyncService *usecase.StatsSyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		statsService:      statsService,
		predictionService: predictionService,
		scoreboardService: scoreboardService,
		statsSyncService:  statsSyncService,
		logger:            logger,
		validator:         validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSONBody rejects unknown fields and bodies over maxRequestBodyBytes.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, target any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
