package domain

// MarketSnapshot holds the raw per-coin provider data for one refresh cycle.
// Nil pointers mean "unknown": missing provider data must never evaluate as a
// 0% change downstream.
type MarketSnapshot struct {
	Price       *float64  `json:"price,omitempty"`
	Change24h   *float64  `json:"change24h,omitempty"`
	Change7d    *float64  `json:"change7d,omitempty"`
	PriceSeries []float64 `json:"priceSeries,omitempty"` // chronological, may be empty
}

// TrendIndicators are the EMA-derived values for one coin. An EMA is nil when
// the price series is shorter than its period.
type TrendIndicators struct {
	EMA20    *float64 `json:"ema20,omitempty"`
	EMA50    *float64 `json:"ema50,omitempty"`
	Change7d *float64 `json:"change7d,omitempty"`
}

// SentimentLabel classifies the 24h move.
type SentimentLabel string

const (
	SentimentUnknown       SentimentLabel = "UNKNOWN"
	SentimentStrongBullish SentimentLabel = "STRONG_BULLISH"
	SentimentBullish       SentimentLabel = "BULLISH"
	SentimentNeutral       SentimentLabel = "NEUTRAL"
	SentimentBearish       SentimentLabel = "BEARISH"
	SentimentStrongBearish SentimentLabel = "STRONG_BEARISH"
)

// TrendLabel classifies the 7d move.
type TrendLabel string

const (
	TrendUnknown         TrendLabel = "UNKNOWN"
	TrendStrongUptrend   TrendLabel = "STRONG_UPTREND"
	TrendUptrend         TrendLabel = "UPTREND"
	TrendSideways        TrendLabel = "SIDEWAYS"
	TrendDowntrend       TrendLabel = "DOWNTREND"
	TrendStrongDowntrend TrendLabel = "STRONG_DOWNTREND"
)

// TrendPhase adds magnitude granularity to the 7d classification.
type TrendPhase string

const (
	PhaseUnknown           TrendPhase = "UNKNOWN"
	PhaseParabolic         TrendPhase = "PARABOLIC"
	PhaseExpansion         TrendPhase = "EXPANSION"
	PhaseEarlyUptrend      TrendPhase = "EARLY_UPTREND"
	PhaseRangeCompression  TrendPhase = "RANGE_COMPRESSION"
	PhaseGrindingDowntrend TrendPhase = "GRINDING_DOWNTREND"
	PhaseSharpDowntrend    TrendPhase = "SHARP_DOWNTREND"
	PhaseCapitulation      TrendPhase = "CAPITULATION"
)

// AccelerationLabel compares the latest day against the trailing 7-day pace.
type AccelerationLabel string

const (
	AccelUnknown      AccelerationLabel = "UNKNOWN"
	AccelAccelerating AccelerationLabel = "SHORT_TERM_ACCELERATION"
	AccelStable       AccelerationLabel = "STABLE_VS_RECENT_TREND"
	AccelDecelerating AccelerationLabel = "SHORT_TERM_DECELERATION"
)

// TrafficTier is the coarse actionability tier behind a traffic light color.
type TrafficTier string

const (
	TierFavorable TrafficTier = "FAVORABLE"
	TierNeutral   TrafficTier = "NEUTRAL"
	TierHighRisk  TrafficTier = "HIGH_RISK"
)

// TrafficLight is the 3-color classification derived from the rotation score.
type TrafficLight struct {
	Label string      `json:"label"` // "GREEN", "YELLOW" or "RED"
	Tier  TrafficTier `json:"tier"`
}

// ScoreResult is the full derived output for one coin. It is a pure function
// of the snapshot and indicators, recomputed wholesale every refresh.
type ScoreResult struct {
	TrendScore    float64           `json:"trendScore"`
	MomentumScore float64           `json:"momentumScore"`
	RotationScore float64           `json:"rotationScore"`
	EMAStructure  int               `json:"emaStructure"` // -2..+2 EMA stack score, 0 when unknown
	Sentiment     SentimentLabel    `json:"sentiment"`
	Trend         TrendLabel        `json:"trend"`
	Phase         TrendPhase        `json:"phase"`
	Acceleration  AccelerationLabel `json:"acceleration"`
	TrafficLight  TrafficLight      `json:"trafficLight"`
}

// CoinInsight bundles everything the dashboard shows for one coin.
type CoinInsight struct {
	Coin       CoinDefinition  `json:"coin"`
	Snapshot   MarketSnapshot  `json:"snapshot"`
	Indicators TrendIndicators `json:"indicators"`
	Score      ScoreResult     `json:"score"`
}

// LeaderboardEntry is one row of the rotation leaderboard.
type LeaderboardEntry struct {
	Coin          CoinDefinition `json:"coin"`
	RotationScore float64        `json:"rotationScore"`
}

// SectorStat is the per-sector average rotation score, recomputed each refresh.
type SectorStat struct {
	Sector       Sector  `json:"sector"`
	AverageScore float64 `json:"averageScore"`
}

// SignalKind identifies the cross-market condition behind a signal message.
type SignalKind string

const (
	SignalSectorLeading   SignalKind = "SECTOR_LEADING"
	SignalSectorAbandoned SignalKind = "SECTOR_ABANDONED"
	SignalAcceleration    SignalKind = "COIN_ACCELERATION"
	SignalCapitulation    SignalKind = "COIN_CAPITULATION"
)

// SignalMessage is a human-readable rotation signal. Subject names the sector
// or coin the message is about and keys the push-notification cooldown.
type SignalMessage struct {
	Kind    SignalKind `json:"kind"`
	Subject string     `json:"subject"`
	Text    string     `json:"text"`
}
