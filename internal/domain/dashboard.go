package domain

import "time"

// DashboardState is the complete output of one refresh cycle. A cycle either
// produces a full new state or leaves the previous one untouched; states are
// replaced wholesale, never merged.
type DashboardState struct {
	Coins       []CoinInsight      `json:"coins"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Sectors     []SectorStat       `json:"sectors"`
	Signals     []SignalMessage    `json:"signals"`
	RefreshedAt time.Time          `json:"refreshedAt"`
	Generation  uint64             `json:"-"`
}

// SignalTexts returns the ordered human-readable message strings.
func (s DashboardState) SignalTexts() []string {
	texts := make([]string, 0, len(s.Signals))
	for _, sig := range s.Signals {
		texts = append(texts, sig.Text)
	}
	return texts
}
