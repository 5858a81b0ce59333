package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/matchup-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
)

// teamSeasonStatsColumns lists every stat column in insert order.
var teamSeasonStatsColumns = []string{
	"yards_per_game_season",
	"yards_per_game_last3",
	"yards_per_game_last1",
	"yards_per_game_home",
	"yards_per_game_away",
	"points_per_game_season",
	"points_per_game_last3",
	"points_per_game_last1",
	"points_per_game_home",
	"points_per_game_away",
	"touchdowns_per_game_season",
	"defensive_yards_allowed_season",
	"defensive_points_allowed_season",
	"yards_per_point_season",
	"yards_per_point_last3",
	"yards_per_point_last1",
	"yards_per_point_home",
	"yards_per_point_away",
	"fpi_overall",
	"fpi_offense",
	"fpi_defense",
}

type teamSeasonStatsValues struct {
	YardsPerGameSeason           sql.NullFloat64 `db:"yards_per_game_season"`
	YardsPerGameLast3            sql.NullFloat64 `db:"yards_per_game_last3"`
	YardsPerGameLast1            sql.NullFloat64 `db:"yards_per_game_last1"`
	YardsPerGameHome             sql.NullFloat64 `db:"yards_per_game_home"`
	YardsPerGameAway             sql.NullFloat64 `db:"yards_per_game_away"`
	PointsPerGameSeason          sql.NullFloat64 `db:"points_per_game_season"`
	PointsPerGameLast3           sql.NullFloat64 `db:"points_per_game_last3"`
	PointsPerGameLast1           sql.NullFloat64 `db:"points_per_game_last1"`
	PointsPerGameHome            sql.NullFloat64 `db:"points_per_game_home"`
	PointsPerGameAway            sql.NullFloat64 `db:"points_per_game_away"`
	TouchdownsPerGameSeason      sql.NullFloat64 `db:"touchdowns_per_game_season"`
	DefensiveYardsAllowedSeason  sql.NullFloat64 `db:"defensive_yards_allowed_season"`
	DefensivePointsAllowedSeason sql.NullFloat64 `db:"defensive_points_allowed_season"`
	YardsPerPointSeason          sql.NullFloat64 `db:"yards_per_point_season"`
	YardsPerPointLast3           sql.NullFloat64 `db:"yards_per_point_last3"`
	YardsPerPointLast1           sql.NullFloat64 `db:"yards_per_point_last1"`
	YardsPerPointHome            sql.NullFloat64 `db:"yards_per_point_home"`
	YardsPerPointAway            sql.NullFloat64 `db:"yards_per_point_away"`
	FPIOverall                   sql.NullFloat64 `db:"fpi_overall"`
	FPIOffense                   sql.NullFloat64 `db:"fpi_offense"`
	FPIDefense                   sql.NullFloat64 `db:"fpi_defense"`
}

type teamSeasonStatsTableModel struct {
	ID     int64  `db:"id"`
	TeamID string `db:"team_public_id"`
	Year   int    `db:"year"`
	teamSeasonStatsValues
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type teamSeasonStatsInsertModel struct {
	TeamID string `db:"team_public_id"`
	Year   int    `db:"year"`
	teamSeasonStatsValues
}

type leagueAveragesRow struct {
	TeamCount              int     `db:"team_count"`
	DefensiveYardsAllowed  float64 `db:"defensive_yards_allowed"`
	DefensivePointsAllowed float64 `db:"defensive_points_allowed"`
	YardsPerPoint          float64 `db:"yards_per_point"`
}

// toDomain coalesces NULL columns to 0.
func (m teamSeasonStatsTableModel) toDomain() teamstats.SeasonStats {
	v := m.teamSeasonStatsValues
	return teamstats.SeasonStats{
		ID:     m.ID,
		TeamID: m.TeamID,
		TeamStats: prediction.TeamStats{
			Year:                         m.Year,
			YardsPerGameSeason:           nullFloatToFloat(v.YardsPerGameSeason),
			YardsPerGameLast3:            nullFloatToFloat(v.YardsPerGameLast3),
			YardsPerGameLast1:            nullFloatToFloat(v.YardsPerGameLast1),
			YardsPerGameHome:             nullFloatToFloat(v.YardsPerGameHome),
			YardsPerGameAway:             nullFloatToFloat(v.YardsPerGameAway),
			PointsPerGameSeason:          nullFloatToFloat(v.PointsPerGameSeason),
			PointsPerGameLast3:           nullFloatToFloat(v.PointsPerGameLast3),
			PointsPerGameLast1:           nullFloatToFloat(v.PointsPerGameLast1),
			PointsPerGameHome:            nullFloatToFloat(v.PointsPerGameHome),
			PointsPerGameAway:            nullFloatToFloat(v.PointsPerGameAway),
			TouchdownsPerGameSeason:      nullFloatToFloat(v.TouchdownsPerGameSeason),
			DefensiveYardsAllowedSeason:  nullFloatToFloat(v.DefensiveYardsAllowedSeason),
			DefensivePointsAllowedSeason: nullFloatToFloat(v.DefensivePointsAllowedSeason),
			YardsPerPointSeason:          nullFloatToFloat(v.YardsPerPointSeason),
			YardsPerPointLast3:           nullFloatToFloat(v.YardsPerPointLast3),
			YardsPerPointLast1:           nullFloatToFloat(v.YardsPerPointLast1),
			YardsPerPointHome:            nullFloatToFloat(v.YardsPerPointHome),
			YardsPerPointAway:            nullFloatToFloat(v.YardsPerPointAway),
			FPIOverall:                   nullFloatToFloat(v.FPIOverall),
			FPIOffense:                   nullFloatToFloat(v.FPIOffense),
			FPIDefense:                   nullFloatToFloat(v.FPIDefense),
		},
	}
}

// teamSeasonStatsInsertModelFromDomain stores zero as NULL so absent data
// stays distinguishable in the table.
func teamSeasonStatsInsertModelFromDomain(row teamstats.SeasonStats) teamSeasonStatsInsertModel {
	s := row.TeamStats
	return teamSeasonStatsInsertModel{
		TeamID: row.TeamID,
		Year:   s.Year,
		teamSeasonStatsValues: teamSeasonStatsValues{
			YardsPerGameSeason:           nullFloat(s.YardsPerGameSeason),
			YardsPerGameLast3:            nullFloat(s.YardsPerGameLast3),
			YardsPerGameLast1:            nullFloat(s.YardsPerGameLast1),
			YardsPerGameHome:             nullFloat(s.YardsPerGameHome),
			YardsPerGameAway:             nullFloat(s.YardsPerGameAway),
			PointsPerGameSeason:          nullFloat(s.PointsPerGameSeason),
			PointsPerGameLast3:           nullFloat(s.PointsPerGameLast3),
			PointsPerGameLast1:           nullFloat(s.PointsPerGameLast1),
			PointsPerGameHome:            nullFloat(s.PointsPerGameHome),
			PointsPerGameAway:            nullFloat(s.PointsPerGameAway),
			TouchdownsPerGameSeason:      nullFloat(s.TouchdownsPerGameSeason),
			DefensiveYardsAllowedSeason:  nullFloat(s.DefensiveYardsAllowedSeason),
			DefensivePointsAllowedSeason: nullFloat(s.DefensivePointsAllowedSeason),
			YardsPerPointSeason:          nullFloat(s.YardsPerPointSeason),
			YardsPerPointLast3:           nullFloat(s.YardsPerPointLast3),
			YardsPerPointLast1:           nullFloat(s.YardsPerPointLast1),
			YardsPerPointHome:            nullFloat(s.YardsPerPointHome),
			YardsPerPointAway:            nullFloat(s.YardsPerPointAway),
			FPIOverall:                   nullFloat(s.FPIOverall),
			FPIOffense:                   nullFloat(s.FPIOffense),
			FPIDefense:                   nullFloat(s.FPIDefense),
		},
	}
}
