package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	qb "github.com/riskibarqy/matchup-predictor/internal/platform/querybuilder"
)

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) GetByTeamAndYear(ctx context.Context, teamID string, year int) (teamstats.SeasonStats, bool, error) {
	query, args, err := qb.Select("*").From("team_season_stats").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Eq("year", year),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return teamstats.SeasonStats{}, false, fmt.Errorf("build get team season stats query: %w", err)
	}

	var row teamSeasonStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamstats.SeasonStats{}, false, nil
		}
		return teamstats.SeasonStats{}, false, fmt.Errorf("get team season stats team=%s year=%d: %w", teamID, year, err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamStatsRepository) LatestCommonYear(ctx context.Context, teamIDs []string) (int, bool, error) {
	ids := uniqueNonEmpty(teamIDs)
	if len(ids) == 0 {
		return 0, false, nil
	}

	query, args, err := qb.Select("year").From("team_season_stats").
		Where(
			qb.Any("team_public_id", pq.Array(ids)),
			qb.IsNull("deleted_at"),
		).
		GroupBy("year").
		Having(qb.Expr("COUNT(DISTINCT team_public_id) = ?", len(ids))).
		OrderBy("year DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build latest common year query: %w", err)
	}

	var year int
	if err := r.db.GetContext(ctx, &year, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get latest common year: %w", err)
	}

	return year, true, nil
}

func (r *TeamStatsRepository) LatestYear(ctx context.Context) (int, bool, error) {
	query, args, err := qb.Select("MAX(year)").From("team_season_stats").
		Where(qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build latest year query: %w", err)
	}

	var year sql.NullInt64
	if err := r.db.GetContext(ctx, &year, query, args...); err != nil {
		return 0, false, fmt.Errorf("get latest year: %w", err)
	}
	if !year.Valid {
		return 0, false, nil
	}

	return int(year.Int64), true, nil
}

func (r *TeamStatsRepository) ListYears(ctx context.Context) ([]int, error) {
	query, args, err := qb.Select("DISTINCT year").From("team_season_stats").
		Where(qb.IsNull("deleted_at")).
		OrderBy("year DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list years query: %w", err)
	}

	var years []int
	if err := r.db.SelectContext(ctx, &years, query, args...); err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}

	return years, nil
}

func (r *TeamStatsRepository) ListByYear(ctx context.Context, year int) ([]teamstats.SeasonStats, error) {
	query, args, err := qb.Select("DISTINCT ON (team_public_id) *").From("team_season_stats").
		Where(
			qb.Eq("year", year),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_public_id ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season stats by year query: %w", err)
	}

	var rows []teamSeasonStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season stats year=%d: %w", year, err)
	}

	out := make([]teamstats.SeasonStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// GetLeagueAverages averages each column over the teams with a positive
// value, using one row per team.
func (r *TeamStatsRepository) GetLeagueAverages(ctx context.Context, year int) (teamstats.LeagueAverages, bool, error) {
	inner, args, err := qb.Select("DISTINCT ON (team_public_id) *").From("team_season_stats").
		Where(
			qb.Eq("year", year),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_public_id ASC", "id ASC").
		ToSQL()
	if err != nil {
		return teamstats.LeagueAverages{}, false, fmt.Errorf("build league averages subquery: %w", err)
	}

	query, _, err := qb.Select(
		"COUNT(1) FILTER (WHERE s.defensive_yards_allowed_season > 0 OR s.defensive_points_allowed_season > 0 OR s.yards_per_point_season > 0) AS team_count",
		"COALESCE(AVG(s.defensive_yards_allowed_season) FILTER (WHERE s.defensive_yards_allowed_season > 0), 0)::float8 AS defensive_yards_allowed",
		"COALESCE(AVG(s.defensive_points_allowed_season) FILTER (WHERE s.defensive_points_allowed_season > 0), 0)::float8 AS defensive_points_allowed",
		"COALESCE(AVG(s.yards_per_point_season) FILTER (WHERE s.yards_per_point_season > 0), 0)::float8 AS yards_per_point",
	).From("(" + inner + ") s").
		ToSQL()
	if err != nil {
		return teamstats.LeagueAverages{}, false, fmt.Errorf("build league averages query: %w", err)
	}

	var row leagueAveragesRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return teamstats.LeagueAverages{}, false, fmt.Errorf("get league averages year=%d: %w", year, err)
	}
	if row.TeamCount == 0 {
		return teamstats.LeagueAverages{}, false, nil
	}

	return teamstats.LeagueAverages{
		Year:                   year,
		TeamCount:              row.TeamCount,
		DefensiveYardsAllowed:  row.DefensiveYardsAllowed,
		DefensivePointsAllowed: row.DefensivePointsAllowed,
		YardsPerPoint:          row.YardsPerPoint,
	}, true, nil
}

func (r *TeamStatsRepository) UpsertSeasonStats(ctx context.Context, rows []teamstats.SeasonStats) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert season stats tx: %w", err)
	}
	defer tx.Rollback()

	suffix := seasonStatsUpsertSuffix()
	for _, row := range rows {
		query, args, err := qb.InsertModel("team_season_stats", teamSeasonStatsInsertModelFromDomain(row), suffix)
		if err != nil {
			return fmt.Errorf("build upsert season stats query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("upsert season stats team=%s year=%d: unknown team: %w", row.TeamID, row.Year, err)
			}
			return fmt.Errorf("upsert season stats team=%s year=%d: %w", row.TeamID, row.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert season stats tx: %w", err)
	}

	return nil
}

func seasonStatsUpsertSuffix() string {
	return qb.OnConflict("team_public_id", "year").
		Where("deleted_at IS NULL").
		UpdateExcluded(teamSeasonStatsColumns...).
		Set("updated_at = NOW()").
		Set("deleted_at = NULL").
		String()
}
