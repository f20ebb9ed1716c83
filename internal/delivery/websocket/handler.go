package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"rotation-backend/internal/domain"
	"rotation-backend/internal/usecase"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // dashboard frontend runs on a different origin
	},
}

// Handler streams the dashboard view to connected clients: once on connect,
// then on a fixed interval that roughly tracks the refresh cycle.
type Handler struct {
	repo      domain.DashboardRepository
	watchlist *usecase.WatchlistUsecase
	interval  time.Duration
	log       *zap.SugaredLogger
}

func NewHandler(repo domain.DashboardRepository, watchlist *usecase.WatchlistUsecase, interval time.Duration, log *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, watchlist: watchlist, interval: interval, log: log}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	h.log.Debugw("dashboard client connected", "remote", r.RemoteAddr)

	if err := h.push(conn); err != nil {
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := h.push(conn); err != nil {
				h.log.Debugw("dashboard client gone", "error", err)
				return
			}
		}
	}
}

func (h *Handler) push(conn *websocket.Conn) error {
	state, ok := h.repo.Get()
	if !ok {
		// Nothing derived yet; clients get the first view on the next tick.
		return nil
	}
	view := usecase.BuildView(state, h.watchlist.Visible())
	return conn.WriteJSON(view)
}
