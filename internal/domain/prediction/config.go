package prediction

import "math"

// Fixed model constants.
const (
	SeasonWeight             = 0.45
	Last3Weight              = 0.30
	Last1Weight              = 0.10
	HomeAwayWeight           = 0.15
	DefensivePointsAdjFactor = 0.5
	FPIRelativeFactor        = 0.6
	FPIAdditiveWeight        = 0.35
	LogisticK                = 0.25
)

const (
	ModelFixed = "fixed"
	ModelTuned = "tuned"
)

// Range is an inclusive clamp interval.
type Range struct {
	Min float64
	Max float64
}

// Apply clamps v to the range.
func (r Range) Apply(v float64) float64 {
	return Clamp(v, r.Min, r.Max)
}

var unbounded = Range{Min: math.Inf(-1), Max: math.Inf(1)}

// YPPMix weights the season, last-3 and last-1 yards-per-point figures.
type YPPMix struct {
	Season float64
	Last3  float64
	Last1  float64
}

// Config parameterizes every step of Predict. FixedConfig and TunedConfig
// are the two shipped models.
type Config struct {
	Model string

	SeasonWeight   float64
	Last3Weight    float64
	Last1Weight    float64
	HomeAwayWeight float64

	DefensiveYardFactor Range

	HomeYPPMix     YPPMix
	AwayYPPMix     YPPMix
	LeagueYPPBlend float64
	EffectiveYPP   Range

	// CalibrationScoreShare and CalibrationPPGShare blend the raw score with
	// the team's own season PPG. A zero PPG share skips the step.
	CalibrationScoreShare float64
	CalibrationPPGShare   float64

	DefensivePointsFloor  float64
	DefensivePointsFactor Range

	FPIRelativeFactor float64
	FPIRelative       Range
	FPIAdditiveWeight float64

	HomeFieldBoost float64
	JitterScale    float64
	Score          Range
	LogisticK      float64

	DefenseContributionScale    float64
	HomeFieldContributionWeight float64
	RecentFormContributionScale float64
	FPIEdgeContributionScale    float64
}

// FixedConfig returns the fixed-weight model.
func FixedConfig() Config {
	return Config{
		Model:          ModelFixed,
		SeasonWeight:   SeasonWeight,
		Last3Weight:    Last3Weight,
		Last1Weight:    Last1Weight,
		HomeAwayWeight: HomeAwayWeight,

		DefensiveYardFactor: unbounded,

		HomeYPPMix:     YPPMix{Season: 0.9, Last3: 0.08, Last1: 0.02},
		AwayYPPMix:     YPPMix{Season: 0.8, Last3: 0.15, Last1: 0.05},
		LeagueYPPBlend: 0.2,
		EffectiveYPP:   Range{Min: 1, Max: math.Inf(1)},

		DefensivePointsFloor:  DefensivePointsAdjFactor,
		DefensivePointsFactor: unbounded,

		FPIRelativeFactor: FPIRelativeFactor,
		FPIRelative:       unbounded,
		FPIAdditiveWeight: FPIAdditiveWeight,

		JitterScale: 1,
		Score:       Range{Min: 0, Max: math.Inf(1)},
		LogisticK:   LogisticK,

		DefenseContributionScale:    1,
		HomeFieldContributionWeight: HomeAwayWeight,
		RecentFormContributionScale: 1,
		FPIEdgeContributionScale:    1,
	}
}

// TunedConfig derives the user-tunable model from settings. Settings are used
// as given; callers clamp them with Settings.Clamped first.
func TunedConfig(settings Settings) Config {
	const baseSeasonWeight = 0.50

	last3 := settings.RecentForm
	season := baseSeasonWeight + (RecentFormBounds.Default - last3)
	last1 := Last1Weight
	homeAway := settings.HomeFieldAdvantage
	sum := season + last3 + last1 + homeAway

	symmetric := YPPMix{Season: 0.80, Last3: 0.15, Last1: 0.05}

	return Config{
		Model:          ModelTuned,
		SeasonWeight:   season / sum,
		Last3Weight:    last3 / sum,
		Last1Weight:    last1 / sum,
		HomeAwayWeight: homeAway / sum,

		DefensiveYardFactor: Range{Min: 0.85, Max: 1.15},

		HomeYPPMix:     symmetric,
		AwayYPPMix:     symmetric,
		LeagueYPPBlend: 0.20,
		EffectiveYPP:   Range{Min: 8, Max: 50},

		CalibrationScoreShare: 0.80,
		CalibrationPPGShare:   0.20,

		DefensivePointsFloor:  settings.DefensiveStrength,
		DefensivePointsFactor: Range{Min: 0.9, Max: 1.1},

		FPIRelativeFactor: settings.FPIEdge * 0.1,
		FPIRelative:       Range{Min: 0.95, Max: 1.05},
		FPIAdditiveWeight: settings.FPIEdge * 0.2,

		HomeFieldBoost: float64(settings.HomeFieldAdvantage * 2.0),
		JitterScale:    0.02,
		Score:          Range{Min: 3, Max: 60},
		LogisticK:      LogisticK,

		DefenseContributionScale:    settings.DefensiveStrength,
		HomeFieldContributionWeight: settings.HomeFieldAdvantage,
		RecentFormContributionScale: settings.RecentForm,
		FPIEdgeContributionScale:    settings.FPIEdge,
	}
}
