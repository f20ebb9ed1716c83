package http

import (
	"encoding/json"
	"net/http"

	"rotation-backend/internal/domain"
	"rotation-backend/internal/usecase"
)

// WatchlistHandler manages the visible-coin preference.
type WatchlistHandler struct {
	watchlist *usecase.WatchlistUsecase
	universe  []domain.CoinDefinition
}

func NewWatchlistHandler(watchlist *usecase.WatchlistUsecase, universe []domain.CoinDefinition) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist, universe: universe}
}

// Handle serves GET and PUT /api/watchlist
func (h *WatchlistHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w)
	case http.MethodPut:
		h.put(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *WatchlistHandler) get(w http.ResponseWriter) {
	visible := h.watchlist.Visible()

	// Keep universe order in the response.
	ids := make([]string, 0, len(visible))
	for _, c := range h.universe {
		if visible[c.ID] {
			ids = append(ids, c.ID)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"coinIds":  ids,
		"universe": h.universe,
	})
}

func (h *WatchlistHandler) put(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CoinIDs []string `json:"coinIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.watchlist.Update(req.CoinIDs)
	if err != nil {
		http.Error(w, "Failed to save watchlist", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"coinIds": saved,
	})
}
