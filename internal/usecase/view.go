package usecase

import (
	"time"

	"rotation-backend/internal/domain"
)

// DashboardView is the payload served to dashboard clients. Coins and the
// leaderboard honor the visibility preference; sector stats and signals are
// always computed over the full universe.
type DashboardView struct {
	Coins       []domain.CoinInsight      `json:"coins"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	Sectors     []domain.SectorStat       `json:"sectors"`
	Signals     []domain.SignalMessage    `json:"signals"`
	RefreshedAt time.Time                 `json:"refreshedAt"`
}

// BuildView projects a stored dashboard state through the visibility filter.
func BuildView(state domain.DashboardState, visible map[string]bool) DashboardView {
	coins := make([]domain.CoinInsight, 0, len(state.Coins))
	for _, in := range state.Coins {
		if visible[in.Coin.ID] {
			coins = append(coins, in)
		}
	}

	return DashboardView{
		Coins:       coins,
		Leaderboard: RankByRotation(coins, ""),
		Sectors:     state.Sectors,
		Signals:     state.Signals,
		RefreshedAt: state.RefreshedAt,
	}
}
