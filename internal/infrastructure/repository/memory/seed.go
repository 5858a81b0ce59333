package memory

import (
	"github.com/riskibarqy/matchup-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
)

const (
	SeedYearPrevious = 2023
	SeedYearCurrent  = 2024
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "alabama", Name: "Alabama", Abbreviation: "ALA", Conference: "SEC", PrimaryColor: "#9E1B32", SecondaryColor: "#828A8F"},
		{ID: "georgia", Name: "Georgia", Abbreviation: "UGA", Conference: "SEC", PrimaryColor: "#BA0C2F", SecondaryColor: "#000000"},
		{ID: "michigan", Name: "Michigan", Abbreviation: "MICH", Conference: "Big Ten", PrimaryColor: "#00274C", SecondaryColor: "#FFCB05"},
		{ID: "ohio-state", Name: "Ohio State", Abbreviation: "OSU", Conference: "Big Ten", PrimaryColor: "#BB0000", SecondaryColor: "#666666"},
		{ID: "oregon", Name: "Oregon", Abbreviation: "ORE", Conference: "Big Ten", PrimaryColor: "#154733", SecondaryColor: "#FEE123"},
		{ID: "texas", Name: "Texas", Abbreviation: "TEX", Conference: "SEC", PrimaryColor: "#BF5700", SecondaryColor: "#333F48"},
	}
}

// SeedTeamSeasonStats covers two seasons. Texas has no current-season row so
// matchups involving it fall back to the previous season.
func SeedTeamSeasonStats() []teamstats.SeasonStats {
	return []teamstats.SeasonStats{
		statsRow("alabama", SeedYearPrevious, prediction.TeamStats{
			YardsPerGameSeason: 412.8, YardsPerGameLast3: 427.2, YardsPerGameLast1: 393.6, YardsPerGameHome: 432.0, YardsPerGameAway: 388.8,
			PointsPerGameSeason: 32.7, PointsPerGameLast3: 34.6, PointsPerGameLast1: 29.8, PointsPerGameHome: 35.7, PointsPerGameAway: 29.2,
			TouchdownsPerGameSeason:     4.2,
			DefensiveYardsAllowedSeason: 331.2, DefensivePointsAllowedSeason: 19.7,
			YardsPerPointSeason: 12.61, YardsPerPointLast3: 12.36, YardsPerPointLast1: 13.23, YardsPerPointHome: 12.1, YardsPerPointAway: 13.32,
			FPIOverall: 20.5, FPIOffense: 9.4, FPIDefense: -7.8,
		}),
		statsRow("georgia", SeedYearPrevious, prediction.TeamStats{
			YardsPerGameSeason: 436.8, YardsPerGameLast3: 451.2, YardsPerGameLast1: 460.8, YardsPerGameHome: 456.0, YardsPerGameAway: 412.8,
			PointsPerGameSeason: 36.1, PointsPerGameLast3: 37.7, PointsPerGameLast1: 40.3, PointsPerGameHome: 38.5, PointsPerGameAway: 32.8,
			TouchdownsPerGameSeason:     4.7,
			DefensiveYardsAllowedSeason: 308.3, DefensivePointsAllowedSeason: 16.9,
			YardsPerPointSeason: 12.1, YardsPerPointLast3: 11.96, YardsPerPointLast1: 11.43, YardsPerPointHome: 11.85, YardsPerPointAway: 12.57,
			FPIOverall: 23.9, FPIOffense: 10.8, FPIDefense: -9.3,
		}),
		statsRow("michigan", SeedYearPrevious, prediction.TeamStats{
			YardsPerGameSeason: 374.4, YardsPerGameLast3: 357.1, YardsPerGameLast1: 350.4, YardsPerGameHome: 388.8, YardsPerGameAway: 357.1,
			PointsPerGameSeason: 28.6, PointsPerGameLast3: 26.2, PointsPerGameLast1: 23.0, PointsPerGameHome: 31.3, PointsPerGameAway: 25.3,
			TouchdownsPerGameSeason:     3.6,
			DefensiveYardsAllowedSeason: 286.5, DefensivePointsAllowedSeason: 14.7,
			YardsPerPointSeason: 13.09, YardsPerPointLast3: 13.63, YardsPerPointLast1: 15.21, YardsPerPointHome: 12.42, YardsPerPointAway: 14.09,
			FPIOverall: 17.5, FPIOffense: 5.2, FPIDefense: -10.5,
		}),
		statsRow("ohio-state", SeedYearPrevious, prediction.TeamStats{
			YardsPerGameSeason: 430.1, YardsPerGameLast3: 443.5, YardsPerGameLast1: 481.0, YardsPerGameHome: 451.2, YardsPerGameAway: 404.2,
			PointsPerGameSeason: 34.5, PointsPerGameLast3: 37.2, PointsPerGameLast1: 42.2, PointsPerGameHome: 37.9, PointsPerGameAway: 30.3,
			TouchdownsPerGameSeason:     4.4,
			DefensiveYardsAllowedSeason: 295.8, DefensivePointsAllowedSeason: 15.9,
			YardsPerPointSeason: 12.48, YardsPerPointLast3: 11.94, YardsPerPointLast1: 11.39, YardsPerPointHome: 11.9, YardsPerPointAway: 13.32,
			FPIOverall: 22.8, FPIOffense: 10.2, FPIDefense: -9.8,
		}),
		statsRow("oregon", SeedYearPrevious, prediction.TeamStats{
			YardsPerGameSeason: 453.1, YardsPerGameLast3: 468.5, YardsPerGameLast1: 436.8, YardsPerGameHome: 475.2, YardsPerGameAway: 428.2,
			PointsPerGameSeason: 37.2, PointsPerGameLast3: 39.4, PointsPerGameLast1: 33.6, PointsPerGameHome: 41.0, PointsPerGameAway: 33.1,
			TouchdownsPerGameSeason:     4.8,
			DefensiveYardsAllowedSeason: 349.0, DefensivePointsAllowedSeason: 20.6,
			YardsPerPointSeason: 12.16, YardsPerPointLast3: 11.9, YardsPerPointLast1: 13.0, YardsPerPointHome: 11.59, YardsPerPointAway: 12.93,
			FPIOverall: 20.1, FPIOffense: 11.9, FPIDefense: -5.4,
		}),
		statsRow("texas", SeedYearPrevious, prediction.TeamStats{
			YardsPerGameSeason: 423.4, YardsPerGameLast3: 412.8, YardsPerGameLast1: 433.9, YardsPerGameHome: 439.7, YardsPerGameAway: 403.2,
			PointsPerGameSeason: 32.2, PointsPerGameLast3: 30.7, PointsPerGameLast1: 36.5, PointsPerGameHome: 34.7, PointsPerGameAway: 29.0,
			TouchdownsPerGameSeason:     4.1,
			DefensiveYardsAllowedSeason: 335.4, DefensivePointsAllowedSeason: 21.5,
			YardsPerPointSeason: 13.16, YardsPerPointLast3: 13.44, YardsPerPointLast1: 11.89, YardsPerPointHome: 12.69, YardsPerPointAway: 13.91,
			FPIOverall: 19.0, FPIOffense: 8.5, FPIDefense: -7.1,
		}),
		statsRow("alabama", SeedYearCurrent, prediction.TeamStats{
			YardsPerGameSeason: 430.0, YardsPerGameLast3: 445.0, YardsPerGameLast1: 410.0, YardsPerGameHome: 450.0, YardsPerGameAway: 405.0,
			PointsPerGameSeason: 34.1, PointsPerGameLast3: 36.0, PointsPerGameLast1: 31.0, PointsPerGameHome: 37.2, PointsPerGameAway: 30.4,
			TouchdownsPerGameSeason:     4.4,
			DefensiveYardsAllowedSeason: 318.0, DefensivePointsAllowedSeason: 18.9,
			YardsPerPointSeason: 12.61, YardsPerPointLast3: 12.36, YardsPerPointLast1: 13.23, YardsPerPointHome: 12.1, YardsPerPointAway: 13.32,
			FPIOverall: 21.4, FPIOffense: 9.8, FPIDefense: -8.1,
		}),
		statsRow("georgia", SeedYearCurrent, prediction.TeamStats{
			YardsPerGameSeason: 455.0, YardsPerGameLast3: 470.0, YardsPerGameLast1: 480.0, YardsPerGameHome: 475.0, YardsPerGameAway: 430.0,
			PointsPerGameSeason: 37.6, PointsPerGameLast3: 39.3, PointsPerGameLast1: 42.0, PointsPerGameHome: 40.1, PointsPerGameAway: 34.2,
			TouchdownsPerGameSeason:     4.9,
			DefensiveYardsAllowedSeason: 296.0, DefensivePointsAllowedSeason: 16.2,
			YardsPerPointSeason: 12.1, YardsPerPointLast3: 11.96, YardsPerPointLast1: 11.43, YardsPerPointHome: 11.85, YardsPerPointAway: 12.57,
			FPIOverall: 24.9, FPIOffense: 11.2, FPIDefense: -9.7,
		}),
		statsRow("michigan", SeedYearCurrent, prediction.TeamStats{
			YardsPerGameSeason: 390.0, YardsPerGameLast3: 372.0, YardsPerGameLast1: 365.0, YardsPerGameHome: 405.0, YardsPerGameAway: 372.0,
			PointsPerGameSeason: 29.8, PointsPerGameLast3: 27.3, PointsPerGameLast1: 24.0, PointsPerGameHome: 32.6, PointsPerGameAway: 26.4,
			TouchdownsPerGameSeason:     3.8,
			DefensiveYardsAllowedSeason: 275.0, DefensivePointsAllowedSeason: 14.1,
			YardsPerPointSeason: 13.09, YardsPerPointLast3: 13.63, YardsPerPointLast1: 15.21, YardsPerPointHome: 12.42, YardsPerPointAway: 14.09,
			FPIOverall: 18.2, FPIOffense: 5.4, FPIDefense: -10.9,
		}),
		statsRow("ohio-state", SeedYearCurrent, prediction.TeamStats{
			YardsPerGameSeason: 448.0, YardsPerGameLast3: 462.0, YardsPerGameLast1: 501.0, YardsPerGameHome: 470.0, YardsPerGameAway: 421.0,
			PointsPerGameSeason: 35.9, PointsPerGameLast3: 38.7, PointsPerGameLast1: 44.0, PointsPerGameHome: 39.5, PointsPerGameAway: 31.6,
			TouchdownsPerGameSeason:     4.6,
			DefensiveYardsAllowedSeason: 284.0, DefensivePointsAllowedSeason: 15.3,
			YardsPerPointSeason: 12.48, YardsPerPointLast3: 11.94, YardsPerPointLast1: 11.39, YardsPerPointHome: 11.9, YardsPerPointAway: 13.32,
			FPIOverall: 23.7, FPIOffense: 10.6, FPIDefense: -10.2,
		}),
		statsRow("oregon", SeedYearCurrent, prediction.TeamStats{
			YardsPerGameSeason: 472.0, YardsPerGameLast3: 488.0, YardsPerGameLast1: 455.0, YardsPerGameHome: 495.0, YardsPerGameAway: 446.0,
			PointsPerGameSeason: 38.8, PointsPerGameLast3: 41.0, PointsPerGameLast1: 35.0, PointsPerGameHome: 42.7, PointsPerGameAway: 34.5,
			TouchdownsPerGameSeason:     5.0,
			DefensiveYardsAllowedSeason: 335.0, DefensivePointsAllowedSeason: 19.8,
			YardsPerPointSeason: 12.16, YardsPerPointLast3: 11.9, YardsPerPointLast1: 13.0, YardsPerPointHome: 11.59, YardsPerPointAway: 12.93,
			FPIOverall: 20.9, FPIOffense: 12.4, FPIDefense: -5.6,
		}),
	}
}

func statsRow(teamID string, year int, stats prediction.TeamStats) teamstats.SeasonStats {
	stats.Year = year
	return teamstats.SeasonStats{TeamID: teamID, TeamStats: stats}
}
