package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
)

type TeamService struct {
	teamRepo      team.Repository
	teamStatsRepo teamstats.Repository
}

func NewTeamService(teamRepo team.Repository, teamStatsRepo teamstats.Repository) *TeamService {
	return &TeamService{
		teamRepo:      teamRepo,
		teamStatsRepo: teamStatsRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

// GetTeamStats returns one season row. A year of 0 selects the team's newest season.
func (s *TeamService) GetTeamStats(ctx context.Context, teamID string, year int) (teamstats.SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamStats")
	defer span.End()

	if year < 0 {
		return teamstats.SeasonStats{}, fmt.Errorf("%w: year must be > 0", ErrInvalidInput)
	}

	item, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return teamstats.SeasonStats{}, err
	}

	if year == 0 {
		latest, ok, err := s.teamStatsRepo.LatestCommonYear(ctx, []string{item.ID})
		if err != nil {
			return teamstats.SeasonStats{}, fmt.Errorf("resolve latest team year: %w", err)
		}
		if !ok {
			return teamstats.SeasonStats{}, fmt.Errorf("%w: no stats for team=%s", ErrNotFound, item.ID)
		}
		year = latest
	}

	stats, exists, err := s.teamStatsRepo.GetByTeamAndYear(ctx, item.ID, year)
	if err != nil {
		return teamstats.SeasonStats{}, fmt.Errorf("get team season stats: %w", err)
	}
	if !exists {
		return teamstats.SeasonStats{}, fmt.Errorf("%w: no stats for team=%s year=%d", ErrNotFound, item.ID, year)
	}

	return stats, nil
}
