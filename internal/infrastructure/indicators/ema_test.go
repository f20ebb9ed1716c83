package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMA_InsufficientHistory(t *testing.T) {
	_, ok := EMA([]float64{1, 2}, 3)
	assert.False(t, ok)

	_, ok = EMA(nil, 1)
	assert.False(t, ok)

	_, ok = EMA([]float64{1, 2, 3}, 0)
	assert.False(t, ok)
}

func TestEMA_KnownIffEnoughSamples(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}
	for period := 1; period <= 7; period++ {
		_, ok := EMA(series, period)
		assert.Equal(t, period <= len(series), ok, "period %d", period)
	}
}

func TestEMA_PeriodOneEqualsLastSample(t *testing.T) {
	v, ok := EMA([]float64{10, 20, 15, 42}, 1)
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestEMA_SeedsFromFirstSample(t *testing.T) {
	// k = 2/(2+1) = 2/3, seeded at 1.0:
	// after 2: 2*2/3 + 1*1/3 = 5/3
	// after 3: 3*2/3 + (5/3)*1/3 = 23/9
	v, ok := EMA([]float64{1, 2, 3}, 2)
	require.True(t, ok)
	assert.InDelta(t, 23.0/9.0, v, 1e-9)
}

func TestEMA_ConstantSeries(t *testing.T) {
	v, ok := EMA([]float64{7, 7, 7, 7, 7, 7}, 3)
	require.True(t, ok)
	assert.InDelta(t, 7.0, v, 1e-9)
}
