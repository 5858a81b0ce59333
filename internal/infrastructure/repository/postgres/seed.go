package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchup-predictor/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the bundled teams and season stats into an empty
// database. It is a no-op once any team row exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return false, fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if err := NewTeamRepository(db).UpsertTeams(ctx, memory.SeedTeams()); err != nil {
		return false, fmt.Errorf("seed teams: %w", err)
	}
	if err := NewTeamStatsRepository(db).UpsertSeasonStats(ctx, memory.SeedTeamSeasonStats()); err != nil {
		return false, fmt.Errorf("seed team season stats: %w", err)
	}

	return true, nil
}
