package indicators

// EMA computes the Exponential Moving Average of a chronological series.
// ok is false when the series holds fewer than period samples; that is the
// defined "insufficient history" state, not an error.
//
// The seed is the first chronological sample rather than an SMA of the first
// period samples, so the result carries a warm-up bias toward the oldest
// price. For period=1 the result equals the last sample.
func EMA(series []float64, period int) (ema float64, ok bool) {
	if period <= 0 || len(series) < period {
		return 0, false
	}

	k := 2.0 / (float64(period) + 1.0)

	ema = series[0]
	for _, sample := range series[1:] {
		ema = sample*k + ema*(1-k)
	}
	return ema, true
}
