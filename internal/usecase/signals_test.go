package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"rotation-backend/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestSentiment_Thresholds(t *testing.T) {
	cases := []struct {
		change *float64
		want   domain.SentimentLabel
	}{
		{nil, domain.SentimentUnknown},
		{fptr(math.NaN()), domain.SentimentUnknown},
		{fptr(8), domain.SentimentStrongBullish},
		{fptr(3.01), domain.SentimentStrongBullish},
		// Boundary is strictly >3: exactly 3.0 is still Bullish.
		{fptr(3.0), domain.SentimentBullish},
		{fptr(0.51), domain.SentimentBullish},
		{fptr(0.5), domain.SentimentNeutral},
		{fptr(0), domain.SentimentNeutral},
		{fptr(-0.5), domain.SentimentNeutral},
		{fptr(-0.51), domain.SentimentBearish},
		{fptr(-3.0), domain.SentimentBearish},
		{fptr(-3.01), domain.SentimentStrongBearish},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Sentiment(c.change))
	}
}

func TestTrend_Thresholds(t *testing.T) {
	cases := []struct {
		change *float64
		want   domain.TrendLabel
	}{
		{nil, domain.TrendUnknown},
		{fptr(18), domain.TrendStrongUptrend},
		{fptr(15), domain.TrendUptrend},
		{fptr(5.5), domain.TrendUptrend},
		{fptr(5), domain.TrendSideways},
		{fptr(0), domain.TrendSideways},
		{fptr(-5), domain.TrendSideways},
		{fptr(-6), domain.TrendDowntrend},
		{fptr(-15), domain.TrendDowntrend},
		{fptr(-16), domain.TrendStrongDowntrend},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Trend(c.change))
	}
}

func TestPhase_Thresholds(t *testing.T) {
	cases := []struct {
		change *float64
		want   domain.TrendPhase
	}{
		{nil, domain.PhaseUnknown},
		{fptr(25), domain.PhaseParabolic},
		{fptr(18), domain.PhaseExpansion},
		{fptr(4), domain.PhaseEarlyUptrend},
		{fptr(3), domain.PhaseRangeCompression},
		{fptr(0), domain.PhaseRangeCompression},
		{fptr(-3), domain.PhaseRangeCompression},
		{fptr(-4), domain.PhaseGrindingDowntrend},
		{fptr(-12), domain.PhaseSharpDowntrend},
		{fptr(-25), domain.PhaseCapitulation},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Phase(c.change))
	}
}

func TestAcceleration(t *testing.T) {
	// 7d change of 14 means a 2%/day average pace.
	assert.Equal(t, domain.AccelAccelerating, Acceleration(fptr(5.1), fptr(14)))
	assert.Equal(t, domain.AccelStable, Acceleration(fptr(5.0), fptr(14)))
	assert.Equal(t, domain.AccelStable, Acceleration(fptr(-1.0), fptr(14)))
	assert.Equal(t, domain.AccelDecelerating, Acceleration(fptr(-1.1), fptr(14)))

	assert.Equal(t, domain.AccelUnknown, Acceleration(nil, fptr(14)))
	assert.Equal(t, domain.AccelUnknown, Acceleration(fptr(5), nil))
}

func TestEMAStructure(t *testing.T) {
	assert.Equal(t, 2, EMAStructure(110, fptr(105), fptr(100)))
	assert.Equal(t, 1, EMAStructure(103, fptr(105), fptr(100)))
	assert.Equal(t, -2, EMAStructure(90, fptr(95), fptr(100)))
	assert.Equal(t, -1, EMAStructure(97, fptr(95), fptr(100)))

	assert.Equal(t, 0, EMAStructure(100, nil, fptr(100)))
	assert.Equal(t, 0, EMAStructure(100, fptr(100), nil))
}
