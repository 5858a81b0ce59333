package teamstats

import (
	"fmt"

	"github.com/riskibarqy/matchup-predictor/internal/domain/prediction"
)

// SeasonStats is one persisted row of team_season_stats. Nullable source
// columns are already coalesced to 0.
type SeasonStats struct {
	ID     int64
	TeamID string
	prediction.TeamStats
}

func (s SeasonStats) Validate() error {
	if s.TeamID == "" {
		return fmt.Errorf("team id is required")
	}
	if s.Year <= 0 {
		return fmt.Errorf("year must be > 0")
	}

	nonNegative := map[string]float64{
		"yards_per_game_season":           s.YardsPerGameSeason,
		"points_per_game_season":          s.PointsPerGameSeason,
		"defensive_yards_allowed_season":  s.DefensiveYardsAllowedSeason,
		"defensive_points_allowed_season": s.DefensivePointsAllowedSeason,
		"yards_per_point_season":          s.YardsPerPointSeason,
	}
	for field, value := range nonNegative {
		if value < 0 {
			return fmt.Errorf("%s must be >= 0", field)
		}
	}

	return nil
}

// ModelInput returns the engine view of the row.
func (s SeasonStats) ModelInput() prediction.TeamStats {
	return s.TeamStats
}

// LeagueAverages are per-season means over teams with a positive value for
// each field. Counts are tracked per field.
type LeagueAverages struct {
	Year                   int
	TeamCount              int
	DefensiveYardsAllowed  float64
	DefensivePointsAllowed float64
	YardsPerPoint          float64
}

func (l LeagueAverages) ModelInput() prediction.LeagueAverages {
	return prediction.LeagueAverages{
		DefensiveYardsAllowed:  l.DefensiveYardsAllowed,
		DefensivePointsAllowed: l.DefensivePointsAllowed,
		YardsPerPoint:          l.YardsPerPoint,
	}
}

// ComputeLeagueAverages averages each field over the rows where it is > 0.
// It returns false when no row of the given year carries any valid value.
func ComputeLeagueAverages(year int, rows []SeasonStats) (LeagueAverages, bool) {
	var (
		yardsSum, pointsSum, yppSum       float64
		yardsCount, pointsCount, yppCount int
		teams                             = make(map[string]struct{})
	)

	for _, row := range rows {
		if row.Year != year {
			continue
		}
		valid := false
		if row.DefensiveYardsAllowedSeason > 0 {
			yardsSum += row.DefensiveYardsAllowedSeason
			yardsCount++
			valid = true
		}
		if row.DefensivePointsAllowedSeason > 0 {
			pointsSum += row.DefensivePointsAllowedSeason
			pointsCount++
			valid = true
		}
		if row.YardsPerPointSeason > 0 {
			yppSum += row.YardsPerPointSeason
			yppCount++
			valid = true
		}
		if valid {
			teams[row.TeamID] = struct{}{}
		}
	}

	if len(teams) == 0 {
		return LeagueAverages{}, false
	}

	out := LeagueAverages{Year: year, TeamCount: len(teams)}
	if yardsCount > 0 {
		out.DefensiveYardsAllowed = yardsSum / float64(yardsCount)
	}
	if pointsCount > 0 {
		out.DefensivePointsAllowed = pointsSum / float64(pointsCount)
	}
	if yppCount > 0 {
		out.YardsPerPoint = yppSum / float64(yppCount)
	}
	return out, true
}
