package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchup-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
)

type PredictInput struct {
	HomeTeamID string
	AwayTeamID string
	// Settings selects the tuned model. Nil runs the fixed model.
	Settings *prediction.Settings
}

type PredictionOutcome struct {
	Model     string
	Year      int
	Seed      string
	Home      team.Team
	Away      team.Team
	HomeStats teamstats.SeasonStats
	AwayStats teamstats.SeasonStats
	League    teamstats.LeagueAverages
	Settings  *prediction.Settings
	Result    prediction.Result
}

type modelInputResolver interface {
	Resolve(ctx context.Context, homeID, awayID string) (ModelInput, error)
}

type PredictionService struct {
	inputs modelInputResolver
	logger *logging.Logger
}

func NewPredictionService(inputs modelInputResolver, logger *logging.Logger) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PredictionService{
		inputs: inputs,
		logger: logger,
	}
}

func (s *PredictionService) Predict(ctx context.Context, input PredictInput) (PredictionOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Predict")
	defer span.End()

	resolved, err := s.inputs.Resolve(ctx, input.HomeTeamID, input.AwayTeamID)
	if err != nil {
		recordSpanError(span, err)
		return PredictionOutcome{}, err
	}

	league := resolved.League.ModelInput()
	if !league.Valid() {
		return PredictionOutcome{}, fmt.Errorf("%w: league averages for year=%d have non-positive values", ErrInsufficientData, resolved.Year)
	}

	seed := resolved.Home.ID + "_" + resolved.Away.ID
	home := resolved.HomeStats.ModelInput()
	away := resolved.AwayStats.ModelInput()

	out := PredictionOutcome{
		Year:      resolved.Year,
		Seed:      seed,
		Home:      resolved.Home,
		Away:      resolved.Away,
		HomeStats: resolved.HomeStats,
		AwayStats: resolved.AwayStats,
		League:    resolved.League,
	}

	if input.Settings == nil {
		out.Model = prediction.ModelFixed
		out.Result = prediction.PredictGame(home, away, league, seed)
	} else {
		settings := input.Settings.Clamped()
		out.Model = prediction.ModelTuned
		out.Settings = &settings
		out.Result = prediction.PredictGameEnhanced(home, away, league, seed, settings)
	}

	s.logger.InfoContext(ctx, "prediction computed",
		"model", out.Model,
		"home_team_id", out.Home.ID,
		"away_team_id", out.Away.ID,
		"year", out.Year,
		"home_score", out.Result.HomeScore,
		"away_score", out.Result.AwayScore,
		"confidence", out.Result.Confidence,
	)

	return out, nil
}
