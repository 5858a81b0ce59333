package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// ModelInput is everything the engine and the response need for one matchup.
type ModelInput struct {
	Year      int
	Home      team.Team
	Away      team.Team
	HomeStats teamstats.SeasonStats
	AwayStats teamstats.SeasonStats
	League    teamstats.LeagueAverages
}

type ModelInputService struct {
	teamRepo  team.Repository
	statsRepo teamstats.Repository
	logger    *logging.Logger
}

func NewModelInputService(teamRepo team.Repository, statsRepo teamstats.Repository, logger *logging.Logger) *ModelInputService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ModelInputService{
		teamRepo:  teamRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// ResolveLatestCommonYear returns the newest season both teams have stats for,
// falling back to the newest season overall.
func (s *ModelInputService) ResolveLatestCommonYear(ctx context.Context, homeID, awayID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModelInputService.ResolveLatestCommonYear")
	defer span.End()

	year, ok, err := s.statsRepo.LatestCommonYear(ctx, []string{homeID, awayID})
	if err != nil {
		return 0, fmt.Errorf("resolve latest common year: %w", err)
	}
	if ok {
		return year, nil
	}

	year, ok, err = s.statsRepo.LatestYear(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve latest year: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: no team stats available", ErrNotFound)
	}

	s.logger.WarnContext(ctx, "teams share no season, falling back to latest year",
		"home_team_id", homeID,
		"away_team_id", awayID,
		"year", year,
	)
	return year, nil
}

func (s *ModelInputService) GetTeamStats(ctx context.Context, teamID string, year int) (teamstats.SeasonStats, error) {
	item, ok, err := s.statsRepo.GetByTeamAndYear(ctx, teamID, year)
	if err != nil {
		return teamstats.SeasonStats{}, fmt.Errorf("get team stats: %w", err)
	}
	if !ok {
		return teamstats.SeasonStats{}, fmt.Errorf("%w: no stats for team=%s year=%d", ErrInsufficientData, teamID, year)
	}

	return item, nil
}

func (s *ModelInputService) GetLeagueAverages(ctx context.Context, year int) (teamstats.LeagueAverages, error) {
	item, ok, err := s.statsRepo.GetLeagueAverages(ctx, year)
	if err != nil {
		return teamstats.LeagueAverages{}, fmt.Errorf("get league averages: %w", err)
	}
	if !ok {
		return teamstats.LeagueAverages{}, fmt.Errorf("%w: no league data for year=%d", ErrInsufficientData, year)
	}

	return item, nil
}

func (s *ModelInputService) GetTeamByID(ctx context.Context, teamID string) (team.Team, error) {
	item, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

// Resolve loads both teams, their stats for the resolved year and the league
// averages. The five lookups run concurrently; the first failure cancels the rest.
func (s *ModelInputService) Resolve(ctx context.Context, homeID, awayID string) (ModelInput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModelInputService.Resolve")
	defer span.End()

	homeID = strings.TrimSpace(homeID)
	awayID = strings.TrimSpace(awayID)
	if homeID == "" || awayID == "" {
		return ModelInput{}, fmt.Errorf("%w: home and away team ids are required", ErrInvalidInput)
	}
	if homeID == awayID {
		return ModelInput{}, fmt.Errorf("%w: home and away teams must be different", ErrInvalidInput)
	}

	year, err := s.ResolveLatestCommonYear(ctx, homeID, awayID)
	if err != nil {
		return ModelInput{}, err
	}

	out := ModelInput{Year: year}
	group := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	group.Go(func(ctx context.Context) error {
		item, err := s.GetTeamByID(ctx, homeID)
		out.Home = item
		return err
	})
	group.Go(func(ctx context.Context) error {
		item, err := s.GetTeamByID(ctx, awayID)
		out.Away = item
		return err
	})
	group.Go(func(ctx context.Context) error {
		item, err := s.GetTeamStats(ctx, homeID, year)
		out.HomeStats = item
		return err
	})
	group.Go(func(ctx context.Context) error {
		item, err := s.GetTeamStats(ctx, awayID, year)
		out.AwayStats = item
		return err
	})
	group.Go(func(ctx context.Context) error {
		item, err := s.GetLeagueAverages(ctx, year)
		out.League = item
		return err
	})
	if err := group.Wait(); err != nil {
		return ModelInput{}, err
	}

	return out, nil
}
