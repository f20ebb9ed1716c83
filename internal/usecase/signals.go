package usecase

import (
	"math"

	"rotation-backend/internal/domain"
)

// known reports whether a provider value is usable. Nil and NaN both mean
// "unknown" and must never be read as a 0% change.
func known(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}

// Sentiment classifies the 24h percent change.
func Sentiment(change24h *float64) domain.SentimentLabel {
	if !known(change24h) {
		return domain.SentimentUnknown
	}
	switch c := *change24h; {
	case c > 3:
		return domain.SentimentStrongBullish
	case c > 0.5:
		return domain.SentimentBullish
	case c < -3:
		return domain.SentimentStrongBearish
	case c < -0.5:
		return domain.SentimentBearish
	default:
		return domain.SentimentNeutral
	}
}

// Trend classifies the 7d percent change.
func Trend(change7d *float64) domain.TrendLabel {
	if !known(change7d) {
		return domain.TrendUnknown
	}
	switch c := *change7d; {
	case c > 15:
		return domain.TrendStrongUptrend
	case c > 5:
		return domain.TrendUptrend
	case c < -15:
		return domain.TrendStrongDowntrend
	case c < -5:
		return domain.TrendDowntrend
	default:
		return domain.TrendSideways
	}
}

// Phase adds magnitude granularity to the 7d move.
func Phase(change7d *float64) domain.TrendPhase {
	if !known(change7d) {
		return domain.PhaseUnknown
	}
	switch c := *change7d; {
	case c > 20:
		return domain.PhaseParabolic
	case c > 10:
		return domain.PhaseExpansion
	case c > 3:
		return domain.PhaseEarlyUptrend
	case c < -20:
		return domain.PhaseCapitulation
	case c < -10:
		return domain.PhaseSharpDowntrend
	case c < -3:
		return domain.PhaseGrindingDowntrend
	default:
		return domain.PhaseRangeCompression
	}
}

// Acceleration compares the latest day against the trailing 7-day daily pace.
func Acceleration(change24h, change7d *float64) domain.AccelerationLabel {
	if !known(change24h) || !known(change7d) {
		return domain.AccelUnknown
	}
	dailyAvg := *change7d / 7
	switch {
	case *change24h > dailyAvg+3:
		return domain.AccelAccelerating
	case *change24h < dailyAvg-3:
		return domain.AccelDecelerating
	default:
		return domain.AccelStable
	}
}

// EMAStructure scores the price/EMA stack: +2 for a full bullish stack
// (price above EMA20 above EMA50), -2 for the mirror bearish stack, +1/-1 for
// partial alignment, 0 when either EMA is unknown.
func EMAStructure(price float64, ema20, ema50 *float64) int {
	if !known(ema20) || !known(ema50) {
		return 0
	}
	e20, e50 := *ema20, *ema50
	switch {
	case price > e20 && e20 > e50:
		return 2
	case e20 > e50:
		return 1
	case price < e20 && e20 < e50:
		return -2
	default:
		return -1
	}
}
