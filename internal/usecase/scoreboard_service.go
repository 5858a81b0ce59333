package usecase

import (
	"context"
	"fmt"
	"time"
)

type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, year, week int) (ExternalScoreboard, error)
}

type ExternalScoreboard struct {
	Year  int
	Week  int
	Games []ExternalGame
}

type ExternalGame struct {
	ExternalID   string
	StartsAt     time.Time
	Status       string
	Venue        string
	HomeTeamID   string
	HomeTeamName string
	AwayTeamID   string
	AwayTeamName string
	HomeScore    *int
	AwayScore    *int
}

const (
	GameStatusScheduled = "scheduled"
	GameStatusLive      = "live"
	GameStatusFinal     = "final"
	GameStatusPostponed = "postponed"
)

const maxScoreboardWeek = 20

type ScoreboardService struct {
	provider ScoreboardProvider
}

func NewScoreboardService(provider ScoreboardProvider) *ScoreboardService {
	return &ScoreboardService{provider: provider}
}

func (s *ScoreboardService) Get(ctx context.Context, year, week int) (ExternalScoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.Get")
	defer span.End()

	if s.provider == nil {
		return ExternalScoreboard{}, fmt.Errorf("%w: scoreboard provider is not configured", ErrDependencyUnavailable)
	}
	if year <= 0 {
		return ExternalScoreboard{}, fmt.Errorf("%w: year must be > 0", ErrInvalidInput)
	}
	if week < 1 || week > maxScoreboardWeek {
		return ExternalScoreboard{}, fmt.Errorf("%w: week must be between 1 and %d", ErrInvalidInput, maxScoreboardWeek)
	}

	board, err := s.provider.FetchScoreboard(ctx, year, week)
	if err != nil {
		err = fmt.Errorf("fetch scoreboard: %w", err)
		recordSpanError(span, err)
		return ExternalScoreboard{}, err
	}

	return board, nil
}
