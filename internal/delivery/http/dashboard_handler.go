package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"rotation-backend/internal/domain"
	"rotation-backend/internal/usecase"
)

// DashboardHandler serves the derived dashboard state over plain HTTP.
type DashboardHandler struct {
	repo      domain.DashboardRepository
	watchlist *usecase.WatchlistUsecase
	log       *zap.SugaredLogger
}

func NewDashboardHandler(repo domain.DashboardRepository, watchlist *usecase.WatchlistUsecase, log *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{repo: repo, watchlist: watchlist, log: log}
}

// Dashboard handles GET /api/dashboard
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state, ok := h.repo.Get()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no market snapshot yet",
		})
		return
	}

	view := usecase.BuildView(state, h.watchlist.Visible())
	writeJSON(w, http.StatusOK, view)
}

// Leaderboard handles GET /api/leaderboard?sector=L1
func (h *DashboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state, ok := h.repo.Get()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no market snapshot yet",
		})
		return
	}

	sector := domain.Sector(r.URL.Query().Get("sector"))
	view := usecase.BuildView(state, h.watchlist.Visible())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sector":      sector,
		"leaderboard": usecase.RankByRotation(view.Coins, sector),
		"refreshedAt": state.RefreshedAt,
	})
}

// Signals handles GET /api/signals
func (h *DashboardHandler) Signals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state, ok := h.repo.Get()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"signals": []domain.SignalMessage{},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"signals":     state.Signals,
		"messages":    state.SignalTexts(),
		"refreshedAt": state.RefreshedAt,
	})
}

// Health handles GET /health
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
