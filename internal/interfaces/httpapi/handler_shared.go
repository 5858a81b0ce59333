package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/matchup-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchup-predictor/internal/domain/team"
	"github.com/riskibarqy/matchup-predictor/internal/domain/teamstats"
	"github.com/riskibarqy/matchup-predictor/internal/usecase"
)

type predictionRequest struct {
	HomeID   string                     `json:"homeId" validate:"required"`
	AwayID   string                     `json:"awayId" validate:"required"`
	Settings *predictionSettingsRequest `json:"settings,omitempty"`
}

// predictionSettingsRequest fields left out of the payload take their default weight.
type predictionSettingsRequest struct {
	RecentForm         *float64 `json:"recentForm,omitempty" validate:"omitempty,gte=0"`
	HomeFieldAdvantage *float64 `json:"homeFieldAdvantage,omitempty" validate:"omitempty,gte=0"`
	DefensiveStrength  *float64 `json:"defensiveStrength,omitempty" validate:"omitempty,gte=0"`
	FPIEdge            *float64 `json:"fpiEdge,omitempty" validate:"omitempty,gte=0"`
}

type ingestTeamStatsRequest struct {
	Rows []teamSeasonStatsRecord `json:"rows" validate:"required,min=1,dive"`
}

type teamSeasonStatsRecord struct {
	TeamID string `json:"teamId" validate:"required"`
	Year   int    `json:"year" validate:"required,gt=0"`
	teamStatsValuesDTO
}

type internalSyncStatsRequest struct {
	Year       int      `json:"year" validate:"required,gt=0"`
	TeamIDs    []string `json:"teamIds" validate:"omitempty,dive,required"`
	MaxWorkers int      `json:"maxWorkers" validate:"gte=0"`
	DryRun     bool     `json:"dryRun"`
}

type teamDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	Conference   string   `json:"conference,omitempty"`
	LogoURL      string   `json:"logoUrl,omitempty"`
	TeamColor    []string `json:"teamColor,omitempty"`
}

type teamStatsValuesDTO struct {
	YardsPerGameSeason float64 `json:"yardsPerGameSeason" validate:"gte=0"`
	YardsPerGameLast3  float64 `json:"yardsPerGameLast3" validate:"gte=0"`
	YardsPerGameLast1  float64 `json:"yardsPerGameLast1" validate:"gte=0"`
	YardsPerGameHome   float64 `json:"yardsPerGameHome" validate:"gte=0"`
	YardsPerGameAway   float64 `json:"yardsPerGameAway" validate:"gte=0"`

	PointsPerGameSeason float64 `json:"pointsPerGameSeason" validate:"gte=0"`
	PointsPerGameLast3  float64 `json:"pointsPerGameLast3" validate:"gte=0"`
	PointsPerGameLast1  float64 `json:"pointsPerGameLast1" validate:"gte=0"`
	PointsPerGameHome   float64 `json:"pointsPerGameHome" validate:"gte=0"`
	PointsPerGameAway   float64 `json:"pointsPerGameAway" validate:"gte=0"`

	TouchdownsPerGameSeason float64 `json:"touchdownsPerGameSeason" validate:"gte=0"`

	DefensiveYardsAllowedSeason  float64 `json:"defensiveYardsAllowedSeason" validate:"gte=0"`
	DefensivePointsAllowedSeason float64 `json:"defensivePointsAllowedSeason" validate:"gte=0"`

	YardsPerPointSeason float64 `json:"yardsPerPointSeason" validate:"gte=0"`
	YardsPerPointLast3  float64 `json:"yardsPerPointLast3" validate:"gte=0"`
	YardsPerPointLast1  float64 `json:"yardsPerPointLast1" validate:"gte=0"`
	YardsPerPointHome   float64 `json:"yardsPerPointHome" validate:"gte=0"`
	YardsPerPointAway   float64 `json:"yardsPerPointAway" validate:"gte=0"`

	// FPI ratings are signed.
	FPIOverall float64 `json:"fpiOverall"`
	FPIOffense float64 `json:"fpiOffense"`
	FPIDefense float64 `json:"fpiDefense"`
}

type teamSeasonStatsDTO struct {
	TeamID string `json:"teamId"`
	Year   int    `json:"year"`
	teamStatsValuesDTO
}

type leagueAveragesDTO struct {
	Year                   int     `json:"year"`
	TeamCount              int     `json:"teamCount"`
	DefensiveYardsAllowed  float64 `json:"defensiveYardsAllowed"`
	DefensivePointsAllowed float64 `json:"defensivePointsAllowed"`
	YardsPerPoint          float64 `json:"yardsPerPoint"`
}

type predictionResponseDTO struct {
	Meta               predictionMetaDTO         `json:"meta"`
	Prediction         predictionResultDTO       `json:"prediction"`
	Contributions      []contributionDTO         `json:"contributions"`
	Inputs             predictionInputsDTO       `json:"inputs"`
	CalculationDetails predictionCalculationsDTO `json:"calculationDetails"`
	Settings           *predictionSettingsDTO    `json:"settings,omitempty"`
}

type predictionMetaDTO struct {
	HomeTeam teamDTO `json:"homeTeam"`
	AwayTeam teamDTO `json:"awayTeam"`
	Year     int     `json:"year"`
	Model    string  `json:"model"`
}

type predictionResultDTO struct {
	HomeScore          float64 `json:"homeScore"`
	AwayScore          float64 `json:"awayScore"`
	Total              float64 `json:"total"`
	Spread             float64 `json:"spread"`
	PredictedWinner    string  `json:"predictedWinner"`
	WinProbabilityHome float64 `json:"winProbabilityHome"`
	Confidence         float64 `json:"confidence"`
}

type contributionDTO struct {
	Key       string  `json:"key"`
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
}

type predictionInputsDTO struct {
	Home   teamSeasonStatsDTO `json:"home"`
	Away   teamSeasonStatsDTO `json:"away"`
	League leagueAveragesDTO  `json:"league"`
}

type predictionCalculationsDTO struct {
	AdjustedHomeYards float64 `json:"adjustedHomeYards"`
	AdjustedAwayYards float64 `json:"adjustedAwayYards"`
}

type predictionSettingsDTO struct {
	RecentForm         float64 `json:"recentForm"`
	HomeFieldAdvantage float64 `json:"homeFieldAdvantage"`
	DefensiveStrength  float64 `json:"defensiveStrength"`
	FPIEdge            float64 `json:"fpiEdge"`
}

type scoreboardDTO struct {
	Year  int       `json:"year"`
	Week  int       `json:"week"`
	Games []gameDTO `json:"games"`
}

type gameDTO struct {
	ID       string      `json:"id"`
	StartsAt time.Time   `json:"startsAt"`
	Status   string      `json:"status"`
	Venue    string      `json:"venue,omitempty"`
	Home     gameSideDTO `json:"home"`
	Away     gameSideDTO `json:"away"`
}

type gameSideDTO struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Score  *int   `json:"score,omitempty"`
}

func (r *predictionSettingsRequest) toDomain() *prediction.Settings {
	if r == nil {
		return nil
	}

	settings := prediction.DefaultSettings()
	if r.RecentForm != nil {
		settings.RecentForm = *r.RecentForm
	}
	if r.HomeFieldAdvantage != nil {
		settings.HomeFieldAdvantage = *r.HomeFieldAdvantage
	}
	if r.DefensiveStrength != nil {
		settings.DefensiveStrength = *r.DefensiveStrength
	}
	if r.FPIEdge != nil {
		settings.FPIEdge = *r.FPIEdge
	}
	return &settings
}

func (r teamSeasonStatsRecord) toDomain() teamstats.SeasonStats {
	stats := r.teamStatsValuesDTO.toDomain()
	stats.Year = r.Year
	return teamstats.SeasonStats{
		TeamID:    r.TeamID,
		TeamStats: stats,
	}
}

func (v teamStatsValuesDTO) toDomain() prediction.TeamStats {
	return prediction.TeamStats{
		YardsPerGameSeason:           v.YardsPerGameSeason,
		YardsPerGameLast3:            v.YardsPerGameLast3,
		YardsPerGameLast1:            v.YardsPerGameLast1,
		YardsPerGameHome:             v.YardsPerGameHome,
		YardsPerGameAway:             v.YardsPerGameAway,
		PointsPerGameSeason:          v.PointsPerGameSeason,
		PointsPerGameLast3:           v.PointsPerGameLast3,
		PointsPerGameLast1:           v.PointsPerGameLast1,
		PointsPerGameHome:            v.PointsPerGameHome,
		PointsPerGameAway:            v.PointsPerGameAway,
		TouchdownsPerGameSeason:      v.TouchdownsPerGameSeason,
		DefensiveYardsAllowedSeason:  v.DefensiveYardsAllowedSeason,
		DefensivePointsAllowedSeason: v.DefensivePointsAllowedSeason,
		YardsPerPointSeason:          v.YardsPerPointSeason,
		YardsPerPointLast3:           v.YardsPerPointLast3,
		YardsPerPointLast1:           v.YardsPerPointLast1,
		YardsPerPointHome:            v.YardsPerPointHome,
		YardsPerPointAway:            v.YardsPerPointAway,
		FPIOverall:                   v.FPIOverall,
		FPIOffense:                   v.FPIOffense,
		FPIDefense:                   v.FPIDefense,
	}
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	_, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:           v.ID,
		Name:         v.Name,
		Abbreviation: v.Abbreviation,
		Conference:   v.Conference,
		LogoURL:      v.LogoURL,
		TeamColor:    teamColorArray(v.PrimaryColor, v.SecondaryColor),
	}
}

func teamColorArray(primary, secondary string) []string {
	out := make([]string, 0, 2)
	if primary != "" {
		out = append(out, primary)
	}
	if secondary != "" {
		out = append(out, secondary)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func teamSeasonStatsToDTO(v teamstats.SeasonStats) teamSeasonStatsDTO {
	return teamSeasonStatsDTO{
		TeamID: v.TeamID,
		Year:   v.Year,
		teamStatsValuesDTO: teamStatsValuesDTO{
			YardsPerGameSeason:           v.YardsPerGameSeason,
			YardsPerGameLast3:            v.YardsPerGameLast3,
			YardsPerGameLast1:            v.YardsPerGameLast1,
			YardsPerGameHome:             v.YardsPerGameHome,
			YardsPerGameAway:             v.YardsPerGameAway,
			PointsPerGameSeason:          v.PointsPerGameSeason,
			PointsPerGameLast3:           v.PointsPerGameLast3,
			PointsPerGameLast1:           v.PointsPerGameLast1,
			PointsPerGameHome:            v.PointsPerGameHome,
			PointsPerGameAway:            v.PointsPerGameAway,
			TouchdownsPerGameSeason:      v.TouchdownsPerGameSeason,
			DefensiveYardsAllowedSeason:  v.DefensiveYardsAllowedSeason,
			DefensivePointsAllowedSeason: v.DefensivePointsAllowedSeason,
			YardsPerPointSeason:          v.YardsPerPointSeason,
			YardsPerPointLast3:           v.YardsPerPointLast3,
			YardsPerPointLast1:           v.YardsPerPointLast1,
			YardsPerPointHome:            v.YardsPerPointHome,
			YardsPerPointAway:            v.YardsPerPointAway,
			FPIOverall:                   v.FPIOverall,
			FPIOffense:                   v.FPIOffense,
			FPIDefense:                   v.FPIDefense,
		},
	}
}

func leagueAveragesToDTO(v teamstats.LeagueAverages) leagueAveragesDTO {
	return leagueAveragesDTO{
		Year:                   v.Year,
		TeamCount:              v.TeamCount,
		DefensiveYardsAllowed:  v.DefensiveYardsAllowed,
		DefensivePointsAllowed: v.DefensivePointsAllowed,
		YardsPerPoint:          v.YardsPerPoint,
	}
}

func predictionOutcomeToDTO(ctx context.Context, v usecase.PredictionOutcome) predictionResponseDTO {
	ctx, span := startSpan(ctx, "httpapi.predictionOutcomeToDTO")
	defer span.End()

	contributions := make([]contributionDTO, 0, len(v.Result.Contributions))
	for _, c := range v.Result.Contributions {
		contributions = append(contributions, contributionDTO{
			Key:       c.Key,
			Value:     c.Value,
			Direction: string(c.Direction),
		})
	}

	out := predictionResponseDTO{
		Meta: predictionMetaDTO{
			HomeTeam: teamToDTO(ctx, v.Home),
			AwayTeam: teamToDTO(ctx, v.Away),
			Year:     v.Year,
			Model:    v.Model,
		},
		Prediction: predictionResultDTO{
			HomeScore:          v.Result.HomeScore,
			AwayScore:          v.Result.AwayScore,
			Total:              v.Result.Total,
			Spread:             v.Result.Spread,
			PredictedWinner:    string(v.Result.PredictedWinner),
			WinProbabilityHome: v.Result.WinProbabilityHome,
			Confidence:         v.Result.Confidence,
		},
		Contributions: contributions,
		Inputs: predictionInputsDTO{
			Home:   teamSeasonStatsToDTO(v.HomeStats),
			Away:   teamSeasonStatsToDTO(v.AwayStats),
			League: leagueAveragesToDTO(v.League),
		},
		CalculationDetails: predictionCalculationsDTO{
			AdjustedHomeYards: v.Result.AdjustedHomeYards,
			AdjustedAwayYards: v.Result.AdjustedAwayYards,
		},
	}
	if v.Settings != nil {
		out.Settings = &predictionSettingsDTO{
			RecentForm:         v.Settings.RecentForm,
			HomeFieldAdvantage: v.Settings.HomeFieldAdvantage,
			DefensiveStrength:  v.Settings.DefensiveStrength,
			FPIEdge:            v.Settings.FPIEdge,
		}
	}

	return out
}

func scoreboardToDTO(v usecase.ExternalScoreboard) scoreboardDTO {
	games := make([]gameDTO, 0, len(v.Games))
	for _, g := range v.Games {
		games = append(games, gameDTO{
			ID:       g.ExternalID,
			StartsAt: g.StartsAt,
			Status:   g.Status,
			Venue:    g.Venue,
			Home:     gameSideDTO{TeamID: g.HomeTeamID, Name: g.HomeTeamName, Score: g.HomeScore},
			Away:     gameSideDTO{TeamID: g.AwayTeamID, Name: g.AwayTeamName, Score: g.AwayScore},
		})
	}

	return scoreboardDTO{
		Year:  v.Year,
		Week:  v.Week,
		Games: games,
	}
}
