package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
)

// StatsService serves the season-level browsing endpoints.
type StatsService struct {
	teamStatsRepo teamstats.Repository
}

func NewStatsService(teamStatsRepo teamstats.Repository) *StatsService {
	return &StatsService{teamStatsRepo: teamStatsRepo}
}

func (s *StatsService) ListYears(ctx context.Context) ([]int, error) {
	items, err := s.teamStatsRepo.ListYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stat years: %w", err)
	}

	return items, nil
}

func (s *StatsService) ListByYear(ctx context.Context, year int) ([]teamstats.SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListByYear")
	defer span.End()

	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be > 0", ErrInvalidInput)
	}

	items, err := s.teamStatsRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list stats by year: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no stats for year=%d", ErrNotFound, year)
	}

	return items, nil
}

func (s *StatsService) GetLeagueAverages(ctx context.Context, year int) (teamstats.LeagueAverages, error) {
	if year <= 0 {
		return teamstats.LeagueAverages{}, fmt.Errorf("%w: year must be > 0", ErrInvalidInput)
	}

	item, ok, err := s.teamStatsRepo.GetLeagueAverages(ctx, year)
	if err != nil {
		return teamstats.LeagueAverages{}, fmt.Errorf("get league averages: %w", err)
	}
	if !ok {
		return teamstats.LeagueAverages{}, fmt.Errorf("%w: no league data for year=%d", ErrInsufficientData, year)
	}

	return item, nil
}
