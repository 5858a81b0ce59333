package prediction

// TeamStats is one team's aggregated season snapshot as consumed by the engine.
// Absent source values arrive as 0; see MissingCore.
type TeamStats struct {
	Year int

	YardsPerGameSeason float64
	YardsPerGameLast3  float64
	YardsPerGameLast1  float64
	YardsPerGameHome   float64
	YardsPerGameAway   float64

	PointsPerGameSeason float64
	PointsPerGameLast3  float64
	PointsPerGameLast1  float64
	PointsPerGameHome   float64
	PointsPerGameAway   float64

	TouchdownsPerGameSeason float64

	DefensiveYardsAllowedSeason  float64
	DefensivePointsAllowedSeason float64

	YardsPerPointSeason float64
	YardsPerPointLast3  float64
	YardsPerPointLast1  float64
	YardsPerPointHome   float64
	YardsPerPointAway   float64

	FPIOverall float64
	FPIOffense float64
	FPIDefense float64
}

// MissingCore reports whether any core field holds the zero sentinel used for absent data.
func (s TeamStats) MissingCore() bool {
	return s.YardsPerGameSeason == 0 ||
		s.PointsPerGameSeason == 0 ||
		s.DefensiveYardsAllowedSeason == 0
}

// LeagueAverages holds the per-season league means used as denominators.
type LeagueAverages struct {
	DefensiveYardsAllowed  float64
	DefensivePointsAllowed float64
	YardsPerPoint          float64
}

// Valid reports whether every league denominator is positive.
func (l LeagueAverages) Valid() bool {
	return l.DefensiveYardsAllowed > 0 &&
		l.DefensivePointsAllowed > 0 &&
		l.YardsPerPoint > 0
}

// Settings are the user-tunable weights of the tuned model.
type Settings struct {
	RecentForm         float64
	HomeFieldAdvantage float64
	DefensiveStrength  float64
	FPIEdge            float64
}

// Bounds is an inclusive range with a default.
type Bounds struct {
	Min     float64
	Max     float64
	Default float64
}

var (
	RecentFormBounds         = Bounds{Min: 0.24, Max: 0.36, Default: 0.30}
	HomeFieldAdvantageBounds = Bounds{Min: 0.12, Max: 0.18, Default: 0.15}
	DefensiveStrengthBounds  = Bounds{Min: 0.4, Max: 0.6, Default: 0.5}
	FPIEdgeBounds            = Bounds{Min: 0.48, Max: 0.72, Default: 0.6}
)

// DefaultSettings returns the midpoint settings the tuned model ships with.
func DefaultSettings() Settings {
	return Settings{
		RecentForm:         RecentFormBounds.Default,
		HomeFieldAdvantage: HomeFieldAdvantageBounds.Default,
		DefensiveStrength:  DefensiveStrengthBounds.Default,
		FPIEdge:            FPIEdgeBounds.Default,
	}
}

// Clamped returns a copy with every weight forced into its allowed range.
func (s Settings) Clamped() Settings {
	return Settings{
		RecentForm:         Clamp(s.RecentForm, RecentFormBounds.Min, RecentFormBounds.Max),
		HomeFieldAdvantage: Clamp(s.HomeFieldAdvantage, HomeFieldAdvantageBounds.Min, HomeFieldAdvantageBounds.Max),
		DefensiveStrength:  Clamp(s.DefensiveStrength, DefensiveStrengthBounds.Min, DefensiveStrengthBounds.Max),
		FPIEdge:            Clamp(s.FPIEdge, FPIEdgeBounds.Min, FPIEdgeBounds.Max),
	}
}

type Winner string

const (
	WinnerHome Winner = "Home"
	WinnerAway Winner = "Away"
)

type Direction string

const (
	DirectionHome Direction = "home"
	DirectionAway Direction = "away"
)

// Contribution keys, in the order they appear in a Result.
const (
	FactorOffense    = "offense"
	FactorEfficiency = "efficiency"
	FactorDefense    = "defense"
	FactorHomeField  = "homeField"
	FactorRecentForm = "recentForm"
	FactorFPIEdge    = "fpiEdge"
)

type Contribution struct {
	Key       string
	Value     float64
	Direction Direction
}

type Result struct {
	HomeScore          float64
	AwayScore          float64
	Total              float64
	Spread             float64
	PredictedWinner    Winner
	WinProbabilityHome float64
	Confidence         float64
	Contributions      []Contribution
	AdjustedHomeYards  float64
	AdjustedAwayYards  float64
}
