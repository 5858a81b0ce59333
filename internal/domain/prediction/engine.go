package prediction

import (
	"math"
	"strconv"
)

const (
	confidenceBase          = 0.50
	confidenceSpreadDivisor = 20
	confidenceSpreadCap     = 0.30
	missingDataPenalty      = 0.1
	efficiencyScale         = 0.5
)

// PredictGame runs the fixed-weight model.
func PredictGame(home, away TeamStats, league LeagueAverages, seed string) Result {
	return Predict(FixedConfig(), home, away, league, seed)
}

// PredictGameEnhanced runs the tuned model with the given settings.
func PredictGameEnhanced(home, away TeamStats, league LeagueAverages, seed string, settings Settings) Result {
	return Predict(TunedConfig(settings), home, away, league, seed)
}

// side carries the per-team intermediates that feed both scoring and contributions.
type side struct {
	adjustedYards float64
	effectiveYPP  float64
	score         float64
}

// Predict is a pure function of its arguments. League denominators must be
// positive; otherwise the result carries NaN or Inf values.
//
// Spread, total, winner, win probability and confidence come from the
// unrounded scores; every output is rounded last. Products that feed an
// addition are wrapped in float64() so the compiler cannot fuse them into a
// multiply-add, which keeps results bit-identical across architectures.
func Predict(cfg Config, home, away TeamStats, league LeagueAverages, seed string) Result {
	h := cfg.score(home, away, league, seed, true)
	a := cfg.score(away, home, league, seed, false)

	spread := h.score - a.score
	total := h.score + a.score

	winner := WinnerAway
	if h.score > a.score {
		winner = WinnerHome
	}

	return Result{
		HomeScore:          Round(h.score, 1),
		AwayScore:          Round(a.score, 1),
		Total:              Round(total, 1),
		Spread:             Round(spread, 1),
		PredictedWinner:    winner,
		WinProbabilityHome: Round(Logistic(cfg.LogisticK*spread), 3),
		Confidence:         confidence(spread, home.MissingCore() || away.MissingCore()),
		Contributions:      cfg.contributions(home, away, league, h, a),
		AdjustedHomeYards:  Round(h.adjustedYards, 1),
		AdjustedAwayYards:  Round(a.adjustedYards, 1),
	}
}

// confidence grows with |spread| up to the cap and drops when either team lacks core stats.
func confidence(spread float64, missing bool) float64 {
	c := confidenceBase + math.Min(math.Abs(spread)/confidenceSpreadDivisor, confidenceSpreadCap)
	if missing {
		c -= missingDataPenalty
	}
	return Round(Clamp(c, 0, 1), 2)
}

// WeightSum returns the total of the four yardage weights.
func (cfg Config) WeightSum() float64 {
	return cfg.SeasonWeight + cfg.Last3Weight + cfg.Last1Weight + cfg.HomeAwayWeight
}

func (cfg Config) score(own, opp TeamStats, league LeagueAverages, seed string, isHome bool) side {
	venueYards := own.YardsPerGameAway
	mix := cfg.AwayYPPMix
	if isHome {
		venueYards = own.YardsPerGameHome
		mix = cfg.HomeYPPMix
	}

	weighted := float64(own.YardsPerGameSeason*cfg.SeasonWeight) +
		float64(own.YardsPerGameLast3*cfg.Last3Weight) +
		float64(own.YardsPerGameLast1*cfg.Last1Weight) +
		float64(venueYards*cfg.HomeAwayWeight)

	yardFactor := cfg.DefensiveYardFactor.Apply(opp.DefensiveYardsAllowedSeason / league.DefensiveYardsAllowed)
	adjusted := float64(weighted * yardFactor)

	ownYPP := float64(own.YardsPerPointSeason*mix.Season) +
		float64(own.YardsPerPointLast3*mix.Last3) +
		float64(own.YardsPerPointLast1*mix.Last1)
	ypp := cfg.EffectiveYPP.Apply(Blend(ownYPP, league.YardsPerPoint, cfg.LeagueYPPBlend))

	score := adjusted / ypp

	if cfg.CalibrationPPGShare != 0 {
		score = float64(score*cfg.CalibrationScoreShare) + float64(own.PointsPerGameSeason*cfg.CalibrationPPGShare)
	}

	pointsRatio := opp.DefensivePointsAllowedSeason / league.DefensivePointsAllowed
	floor := cfg.DefensivePointsFloor
	score *= cfg.DefensivePointsFactor.Apply(floor + float64((1-floor)*pointsRatio))

	fpiDiff := (own.FPIOffense - opp.FPIDefense) / 10
	score = float64(score * cfg.FPIRelative.Apply(1+float64(cfg.FPIRelativeFactor*fpiDiff)))

	score += float64(cfg.FPIAdditiveWeight * own.FPIOverall)

	if isHome && cfg.HomeFieldBoost != 0 {
		score += cfg.HomeFieldBoost
	}

	jitter := RandomOffset(seed + strconv.Itoa(own.Year))
	score = float64(score * (1 + float64(jitter*cfg.JitterScale)))

	return side{
		adjustedYards: adjusted,
		effectiveYPP:  ypp,
		score:         cfg.Score.Apply(score),
	}
}

func (cfg Config) contributions(home, away TeamStats, league LeagueAverages, h, a side) []Contribution {
	offense := Contribution{
		Key:       FactorOffense,
		Value:     ratio(math.Abs(h.adjustedYards-a.adjustedYards), math.Max(h.adjustedYards, a.adjustedYards)),
		Direction: favor(h.adjustedYards > a.adjustedYards),
	}

	efficiency := Contribution{
		Key:       FactorEfficiency,
		Value:     ratio(math.Abs(a.effectiveYPP-h.effectiveYPP), math.Max(h.effectiveYPP, a.effectiveYPP)) * efficiencyScale,
		Direction: favor(h.effectiveYPP < a.effectiveYPP),
	}

	defense := Contribution{
		Key: FactorDefense,
		Value: ratio(
			math.Abs(away.DefensivePointsAllowedSeason-home.DefensivePointsAllowedSeason),
			league.DefensivePointsAllowed,
		) * cfg.DefenseContributionScale,
		Direction: favor(away.DefensivePointsAllowedSeason > home.DefensivePointsAllowedSeason),
	}

	split := math.Abs(home.YardsPerGameHome-home.YardsPerGameAway) + math.Abs(away.YardsPerGameAway-away.YardsPerGameHome)
	homeField := Contribution{
		Key:       FactorHomeField,
		Value:     ratio(split, math.Max(home.YardsPerGameSeason, away.YardsPerGameSeason)) * cfg.HomeFieldContributionWeight,
		Direction: DirectionHome,
	}

	formMax := math.Max(math.Max(home.PointsPerGameLast3, away.PointsPerGameLast3), 1)
	recentForm := Contribution{
		Key:       FactorRecentForm,
		Value:     math.Abs(home.PointsPerGameLast3-away.PointsPerGameLast3) / formMax * cfg.RecentFormContributionScale,
		Direction: favor(home.PointsPerGameLast3 > away.PointsPerGameLast3),
	}

	fpiEdge := Contribution{
		Key:       FactorFPIEdge,
		Value:     math.Abs(home.FPIOverall-away.FPIOverall) * cfg.FPIEdgeContributionScale,
		Direction: favor(home.FPIOverall > away.FPIOverall),
	}

	return []Contribution{offense, efficiency, defense, homeField, recentForm, fpiEdge}
}

// ratio divides, returning 0 for a zero denominator.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func favor(home bool) Direction {
	if home {
		return DirectionHome
	}
	return DirectionAway
}
