package usecase

import (
	"fmt"
	"sort"

	"rotation-backend/internal/domain"
)

// Signal emission thresholds. Sector signals need at least two sectors; the
// coin extremes are evaluated over the whole universe regardless of any
// visibility filter.
const (
	leaderMinAvg    = 3.0
	leaderMinGap    = 1.5
	abandonedMaxAvg = -2.0
	accelerationMin = 6.0
	capitulationMax = -6.0
)

// AggregateSectors groups the full universe by sector and returns per-sector
// average rotation scores, ordered best to worst. Sectors with no members are
// simply absent. Stable sort keeps first-appearance order on ties.
func AggregateSectors(insights []domain.CoinInsight) []domain.SectorStat {
	sums := make(map[domain.Sector]float64)
	counts := make(map[domain.Sector]int)
	var order []domain.Sector

	for _, in := range insights {
		s := in.Coin.Sector
		if _, seen := sums[s]; !seen {
			order = append(order, s)
		}
		sums[s] += in.Score.RotationScore
		counts[s]++
	}

	stats := make([]domain.SectorStat, 0, len(order))
	for _, s := range order {
		stats = append(stats, domain.SectorStat{
			Sector:       s,
			AverageScore: sums[s] / float64(counts[s]),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AverageScore > stats[j].AverageScore
	})
	return stats
}

// EmitSignals derives zero or more cross-market rotation messages from the
// current scores. It never fails: no condition met means an empty slice.
// Message order is fixed: sector-leading, sector-abandoned, strongest coin,
// weakest coin.
func EmitSignals(insights []domain.CoinInsight, stats []domain.SectorStat) []domain.SignalMessage {
	var signals []domain.SignalMessage

	if len(stats) >= 2 {
		leader, second := stats[0], stats[1]
		if leader.AverageScore >= leaderMinAvg && leader.AverageScore-second.AverageScore >= leaderMinGap {
			signals = append(signals, domain.SignalMessage{
				Kind:    domain.SignalSectorLeading,
				Subject: string(leader.Sector),
				Text: fmt.Sprintf("%s sector clearly leading rotation (avg score %.1f vs %s %.1f)",
					leader.Sector, leader.AverageScore, second.Sector, second.AverageScore),
			})
		}

		if last := stats[len(stats)-1]; last.AverageScore <= abandonedMaxAvg {
			signals = append(signals, domain.SignalMessage{
				Kind:    domain.SignalSectorAbandoned,
				Subject: string(last.Sector),
				Text: fmt.Sprintf("%s sector being abandoned (avg score %.1f)",
					last.Sector, last.AverageScore),
			})
		}
	}

	if len(insights) == 0 {
		return signals
	}

	strongest, weakest := insights[0], insights[0]
	for _, in := range insights[1:] {
		if in.Score.RotationScore > strongest.Score.RotationScore {
			strongest = in
		}
		if in.Score.RotationScore < weakest.Score.RotationScore {
			weakest = in
		}
	}

	if strongest.Score.RotationScore >= accelerationMin {
		signals = append(signals, domain.SignalMessage{
			Kind:    domain.SignalAcceleration,
			Subject: strongest.Coin.Symbol,
			Text: fmt.Sprintf("%s accelerating hard (rotation score %.1f)",
				strongest.Coin.Symbol, strongest.Score.RotationScore),
		})
	}
	if weakest.Score.RotationScore <= capitulationMax {
		signals = append(signals, domain.SignalMessage{
			Kind:    domain.SignalCapitulation,
			Subject: weakest.Coin.Symbol,
			Text: fmt.Sprintf("%s in capitulation (rotation score %.1f)",
				weakest.Coin.Symbol, weakest.Score.RotationScore),
		})
	}

	return signals
}
