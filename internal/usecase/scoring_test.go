package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotation-backend/internal/domain"
)

func TestScores_UnknownInputsContributeZero(t *testing.T) {
	assert.Equal(t, 0.0, TrendScore(nil))
	assert.Equal(t, 0.0, MomentumScore(nil))
	assert.Equal(t, 0.0, RotationScore(nil, nil))
}

func TestRotationScore_Deterministic(t *testing.T) {
	a := RotationScore(fptr(8), fptr(18))
	b := RotationScore(fptr(8), fptr(18))
	assert.Equal(t, a, b)
	assert.InDelta(t, 18.0/4*2+8.0/3, a, 1e-9)
}

func TestLight_ExhaustivePartition(t *testing.T) {
	// Every score must map to exactly one color; sweep across both
	// boundaries.
	for score := -10.0; score <= 10.0; score += 0.25 {
		light := Light(score)
		switch {
		case score >= 6:
			assert.Equal(t, "GREEN", light.Label, "score %v", score)
			assert.Equal(t, domain.TierFavorable, light.Tier)
		case score <= -2:
			assert.Equal(t, "RED", light.Label, "score %v", score)
			assert.Equal(t, domain.TierHighRisk, light.Tier)
		default:
			assert.Equal(t, "YELLOW", light.Label, "score %v", score)
			assert.Equal(t, domain.TierNeutral, light.Tier)
		}
	}
}

func TestScore_StrongMover(t *testing.T) {
	snap := domain.MarketSnapshot{
		Price:     fptr(100),
		Change24h: fptr(8),
		Change7d:  fptr(18),
	}
	res := Score(snap, ComputeIndicators(snap))

	assert.InDelta(t, 2.6667, res.MomentumScore, 1e-3)
	assert.InDelta(t, 4.5, res.TrendScore, 1e-9)
	assert.InDelta(t, 11.6667, res.RotationScore, 1e-3)
	assert.Equal(t, "GREEN", res.TrafficLight.Label)
	assert.Equal(t, domain.TrendStrongUptrend, res.Trend)
	assert.Equal(t, domain.PhaseExpansion, res.Phase)
	assert.Equal(t, domain.SentimentStrongBullish, res.Sentiment)
}

func TestScore_AllInputsMissing(t *testing.T) {
	snap := domain.MarketSnapshot{}
	res := Score(snap, ComputeIndicators(snap))

	assert.Equal(t, 0.0, res.RotationScore)
	assert.Equal(t, "YELLOW", res.TrafficLight.Label)
	assert.Equal(t, domain.SentimentUnknown, res.Sentiment)
	assert.Equal(t, domain.TrendUnknown, res.Trend)
	assert.Equal(t, domain.PhaseUnknown, res.Phase)
	assert.Equal(t, domain.AccelUnknown, res.Acceleration)
	assert.Equal(t, 0, res.EMAStructure)
}

func TestComputeIndicators_ShortSeries(t *testing.T) {
	snap := domain.MarketSnapshot{PriceSeries: []float64{1, 2, 3}}
	ind := ComputeIndicators(snap)
	assert.Nil(t, ind.EMA20)
	assert.Nil(t, ind.EMA50)
}

func TestComputeIndicators_LongSeries(t *testing.T) {
	series := make([]float64, 60)
	for i := range series {
		series[i] = 100 + float64(i)
	}
	snap := domain.MarketSnapshot{PriceSeries: series}
	ind := ComputeIndicators(snap)
	require.NotNil(t, ind.EMA20)
	require.NotNil(t, ind.EMA50)
	// Rising series: the shorter EMA tracks price more closely.
	assert.Greater(t, *ind.EMA20, *ind.EMA50)
}
