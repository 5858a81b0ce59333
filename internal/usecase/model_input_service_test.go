package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchup-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	teammock "github.com/riskibarqy/matchup-predictor/internal/mocks/domain/team"
	teamstatsmock "github.com/riskibarqy/matchup-predictor/internal/mocks/domain/teamstats"
	"github.com/stretchr/testify/mock"
)

func statsRow(teamID string, year int) teamstats.SeasonStats {
	return teamstats.SeasonStats{
		TeamID: teamID,
		TeamStats: prediction.TeamStats{
			Year:                         year,
			YardsPerGameSeason:           380,
			PointsPerGameSeason:          26,
			DefensiveYardsAllowedSeason:  350,
			DefensivePointsAllowedSeason: 22,
			YardsPerPointSeason:          14.6,
		},
	}
}

func TestModelInputService_Resolve_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewModelInputService(teamRepo, statsRepo, nil)

	statsRepo.On("LatestCommonYear", mock.Anything, []string{"alpha", "bravo"}).Return(2024, true, nil).Once()
	teamRepo.On("GetByID", mock.Anything, "alpha").Return(team.Team{ID: "alpha", Name: "Alpha"}, true, nil).Once()
	teamRepo.On("GetByID", mock.Anything, "bravo").Return(team.Team{ID: "bravo", Name: "Bravo"}, true, nil).Once()
	statsRepo.On("GetByTeamAndYear", mock.Anything, "alpha", 2024).Return(statsRow("alpha", 2024), true, nil).Once()
	statsRepo.On("GetByTeamAndYear", mock.Anything, "bravo", 2024).Return(statsRow("bravo", 2024), true, nil).Once()
	statsRepo.On("GetLeagueAverages", mock.Anything, 2024).
		Return(teamstats.LeagueAverages{Year: 2024, TeamCount: 2, DefensiveYardsAllowed: 350, DefensivePointsAllowed: 22, YardsPerPoint: 15}, true, nil).
		Once()

	got, err := service.Resolve(ctx, " alpha ", "bravo")
	if err != nil {
		t.Fatalf("resolve model input: %v", err)
	}
	if got.Year != 2024 {
		t.Fatalf("unexpected year: got=%d want=2024", got.Year)
	}
	if got.Home.ID != "alpha" || got.Away.ID != "bravo" {
		t.Fatalf("unexpected teams: home=%s away=%s", got.Home.ID, got.Away.ID)
	}
	if got.HomeStats.TeamID != "alpha" || got.AwayStats.TeamID != "bravo" {
		t.Fatalf("unexpected stats rows: home=%s away=%s", got.HomeStats.TeamID, got.AwayStats.TeamID)
	}
	if got.League.YardsPerPoint != 15 {
		t.Fatalf("unexpected league averages: %+v", got.League)
	}
}

func TestModelInputService_Resolve_InvalidIDs(t *testing.T) {
	t.Parallel()

	service := NewModelInputService(teammock.NewRepository(t), teamstatsmock.NewRepository(t), nil)

	tests := []struct {
		name   string
		homeID string
		awayID string
	}{
		{name: "same team", homeID: "alpha", awayID: "alpha"},
		{name: "same team after trim", homeID: "alpha ", awayID: " alpha"},
		{name: "missing home", homeID: "", awayID: "bravo"},
		{name: "missing away", homeID: "alpha", awayID: "  "},
	}

	for _, tc := range tests {
		_, err := service.Resolve(context.Background(), tc.homeID, tc.awayID)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestModelInputService_ResolveLatestCommonYear_FallsBackToLatest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewModelInputService(teammock.NewRepository(t), statsRepo, nil)

	statsRepo.On("LatestCommonYear", ctx, []string{"alpha", "bravo"}).Return(0, false, nil).Once()
	statsRepo.On("LatestYear", ctx).Return(2023, true, nil).Once()

	year, err := service.ResolveLatestCommonYear(ctx, "alpha", "bravo")
	if err != nil {
		t.Fatalf("resolve year: %v", err)
	}
	if year != 2023 {
		t.Fatalf("unexpected year: got=%d want=2023", year)
	}
}

func TestModelInputService_ResolveLatestCommonYear_NoStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewModelInputService(teammock.NewRepository(t), statsRepo, nil)

	statsRepo.On("LatestCommonYear", ctx, []string{"alpha", "bravo"}).Return(0, false, nil).Once()
	statsRepo.On("LatestYear", ctx).Return(0, false, nil).Once()

	_, err := service.ResolveLatestCommonYear(ctx, "alpha", "bravo")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestModelInputService_Resolve_MissingStatsRow(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	statsRepo := teamstatsmock.NewRepository(t)
	service := NewModelInputService(teamRepo, statsRepo, nil)

	statsRepo.On("LatestCommonYear", mock.Anything, []string{"alpha", "bravo"}).Return(0, false, nil).Once()
	statsRepo.On("LatestYear", mock.Anything).Return(2024, true, nil).Once()
	teamRepo.On("GetByID", mock.Anything, "alpha").Return(team.Team{ID: "alpha"}, true, nil).Maybe()
	teamRepo.On("GetByID", mock.Anything, "bravo").Return(team.Team{ID: "bravo"}, true, nil).Maybe()
	statsRepo.On("GetByTeamAndYear", mock.Anything, "alpha", 2024).Return(statsRow("alpha", 2024), true, nil).Maybe()
	statsRepo.On("GetByTeamAndYear", mock.Anything, "bravo", 2024).Return(teamstats.SeasonStats{}, false, nil).Once()
	statsRepo.On("GetLeagueAverages", mock.Anything, 2024).Return(teamstats.LeagueAverages{}, false, nil).Maybe()

	_, err := service.Resolve(context.Background(), "alpha", "bravo")
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("insufficient data must also match ErrNotFound, got %v", err)
	}
}

func TestModelInputService_GetTeamByID_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewModelInputService(teamRepo, teamstatsmock.NewRepository(t), nil)

	teamRepo.On("GetByID", ctx, "ghost").Return(team.Team{}, false, nil).Once()

	_, err := service.GetTeamByID(ctx, "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
