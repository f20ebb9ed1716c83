package usecase

import (
	"sort"

	"rotation-backend/internal/domain"
)

// RankByRotation projects insights into a leaderboard ordered by rotation
// score descending. The sort is stable: equal scores keep the coin-universe
// order, so the output is deterministic. An empty sector means no filter.
func RankByRotation(insights []domain.CoinInsight, sector domain.Sector) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(insights))
	for _, in := range insights {
		if sector != "" && in.Coin.Sector != sector {
			continue
		}
		entries = append(entries, domain.LeaderboardEntry{
			Coin:          in.Coin,
			RotationScore: in.Score.RotationScore,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RotationScore > entries[j].RotationScore
	})
	return entries
}
