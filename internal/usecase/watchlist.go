package usecase

import (
	"go.uber.org/zap"

	"rotation-backend/internal/domain"
)

// WatchlistUsecase owns the visible-coin preference. Visibility is a display
// concern only: the engine always runs over the full universe.
type WatchlistUsecase struct {
	repo     domain.WatchlistRepository
	universe []domain.CoinDefinition
	log      *zap.SugaredLogger
}

func NewWatchlistUsecase(repo domain.WatchlistRepository, universe []domain.CoinDefinition, log *zap.SugaredLogger) *WatchlistUsecase {
	return &WatchlistUsecase{repo: repo, universe: universe, log: log}
}

// Visible returns the set of coin ids the dashboard should show. Unknown ids
// are dropped; an empty stored set falls back to the full universe so the
// dashboard never learns a zero-coin state.
func (w *WatchlistUsecase) Visible() map[string]bool {
	ids, err := w.repo.Load()
	if err != nil {
		w.log.Warnw("loading watchlist failed, showing full universe", "error", err)
		ids = nil
	}

	valid := w.filter(ids)
	if len(valid) == 0 {
		valid = w.allIDs()
	}

	visible := make(map[string]bool, len(valid))
	for _, id := range valid {
		visible[id] = true
	}
	return visible
}

// Update persists a new visible set. Ids outside the universe are filtered
// out; if nothing valid remains the default full set is restored instead.
func (w *WatchlistUsecase) Update(ids []string) ([]string, error) {
	valid := w.filter(ids)
	if len(valid) == 0 {
		valid = w.allIDs()
	}

	if err := w.repo.Save(valid); err != nil {
		return nil, err
	}
	return valid, nil
}

func (w *WatchlistUsecase) filter(ids []string) []string {
	inUniverse := make(map[string]bool, len(w.universe))
	for _, c := range w.universe {
		inUniverse[c.ID] = true
	}

	var valid []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if inUniverse[id] && !seen[id] {
			valid = append(valid, id)
			seen[id] = true
		}
	}
	return valid
}

func (w *WatchlistUsecase) allIDs() []string {
	ids := make([]string, len(w.universe))
	for i, c := range w.universe {
		ids[i] = c.ID
	}
	return ids
}
