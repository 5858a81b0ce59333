package teamstats

import "context"

type Repository interface {
	// GetByTeamAndYear returns the row with the lowest id when duplicates exist.
	GetByTeamAndYear(ctx context.Context, teamID string, year int) (SeasonStats, bool, error)
	// LatestCommonYear returns the highest year that every given team has a row for.
	LatestCommonYear(ctx context.Context, teamIDs []string) (int, bool, error)
	LatestYear(ctx context.Context) (int, bool, error)
	ListYears(ctx context.Context) ([]int, error)
	ListByYear(ctx context.Context, year int) ([]SeasonStats, error)
	GetLeagueAverages(ctx context.Context, year int) (LeagueAverages, bool, error)
	UpsertSeasonStats(ctx context.Context, rows []SeasonStats) error
}
