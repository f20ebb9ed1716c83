package usecase

import (
	"rotation-backend/internal/domain"
	"rotation-backend/internal/infrastructure/indicators"
)

// TrendScore converts the 7d percent change into a score. Unknown input
// contributes nothing (0), never a phantom move.
func TrendScore(change7d *float64) float64 {
	if !known(change7d) {
		return 0
	}
	return *change7d / 4
}

// MomentumScore converts the 24h percent change into a score.
func MomentumScore(change24h *float64) float64 {
	if !known(change24h) {
		return 0
	}
	return *change24h / 3
}

// RotationScore is the composite capital-flow heuristic. The 7-day structure
// is weighted twice the single-day move: one loud day should not out-shout a
// week of direction.
func RotationScore(change24h, change7d *float64) float64 {
	return TrendScore(change7d)*2 + MomentumScore(change24h)
}

// Light maps a rotation score onto the traffic light. The favorable bar (6)
// sits deliberately higher than the risk bar (-2).
func Light(rotationScore float64) domain.TrafficLight {
	switch {
	case rotationScore >= 6:
		return domain.TrafficLight{Label: "GREEN", Tier: domain.TierFavorable}
	case rotationScore <= -2:
		return domain.TrafficLight{Label: "RED", Tier: domain.TierHighRisk}
	default:
		return domain.TrafficLight{Label: "YELLOW", Tier: domain.TierNeutral}
	}
}

// ComputeIndicators derives the EMA values from the snapshot's price series.
func ComputeIndicators(snap domain.MarketSnapshot) domain.TrendIndicators {
	ind := domain.TrendIndicators{Change7d: snap.Change7d}
	if v, ok := indicators.EMA(snap.PriceSeries, 20); ok {
		ind.EMA20 = &v
	}
	if v, ok := indicators.EMA(snap.PriceSeries, 50); ok {
		ind.EMA50 = &v
	}
	return ind
}

// Score runs every classifier and scorer over one coin's snapshot. Pure and
// stateless: the same inputs always produce the same result.
func Score(snap domain.MarketSnapshot, ind domain.TrendIndicators) domain.ScoreResult {
	rotation := RotationScore(snap.Change24h, snap.Change7d)

	emaStructure := 0
	if known(snap.Price) {
		emaStructure = EMAStructure(*snap.Price, ind.EMA20, ind.EMA50)
	}

	return domain.ScoreResult{
		TrendScore:    TrendScore(snap.Change7d),
		MomentumScore: MomentumScore(snap.Change24h),
		RotationScore: rotation,
		EMAStructure:  emaStructure,
		Sentiment:     Sentiment(snap.Change24h),
		Trend:         Trend(snap.Change7d),
		Phase:         Phase(snap.Change7d),
		Acceleration:  Acceleration(snap.Change24h, snap.Change7d),
		TrafficLight:  Light(rotation),
	}
}
