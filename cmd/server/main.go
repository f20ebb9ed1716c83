package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	httpdelivery "rotation-backend/internal/delivery/http"
	"rotation-backend/internal/delivery/websocket"
	"rotation-backend/internal/domain"
	"rotation-backend/internal/infrastructure/coingecko"
	"rotation-backend/internal/infrastructure/config"
	"rotation-backend/internal/infrastructure/db"
	"rotation-backend/internal/infrastructure/fcm"
	"rotation-backend/internal/infrastructure/logger"
	"rotation-backend/internal/repository"
	"rotation-backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	universe := domain.DefaultUniverse()

	// Persistence: Postgres when configured, process memory otherwise.
	var (
		watchlistRepo domain.WatchlistRepository
		tokenRepo     domain.DeviceTokenRepository
	)
	if cfg.Database.URL != "" {
		poolCfg := db.DefaultPoolConfig()
		poolCfg.MaxConns = cfg.Database.MaxConns
		poolCfg.MinConns = cfg.Database.MinConns

		pool, err := db.NewPool(ctx, cfg.Database.URL, poolCfg)
		if err != nil {
			zlog.Fatalw("connecting to postgres failed", "error", err)
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			zlog.Fatalw("migration failed", "error", err)
		}

		watchlistRepo = repository.NewPostgresWatchlistRepository(pool)
		tokenRepo = repository.NewPostgresTokenRepository(pool)
		zlog.Info("using postgres persistence")
	} else {
		watchlistRepo = repository.NewInMemoryWatchlistRepository()
		tokenRepo = repository.NewInMemoryTokenRepository()
		zlog.Info("no DATABASE_URL set, using in-memory persistence")
	}

	fcmClient, err := fcm.NewClient(cfg.FCM.CredentialsPath, cfg.FCM.CredentialsJSON, zlog)
	if err != nil {
		zlog.Fatalw("initializing FCM failed", "error", err)
	}

	dashRepo := repository.NewInMemoryDashboardRepository()
	provider := coingecko.NewClient(cfg.Provider.BaseURL, cfg.Provider.RequestTimeout)
	notifier := usecase.NewNotifier(fcmClient, tokenRepo, cfg.Notify.Cooldown, zlog)
	watchlist := usecase.NewWatchlistUsecase(watchlistRepo, universe, zlog)
	screener := usecase.NewScreenerUsecase(universe, provider, dashRepo, notifier, cfg.Provider.RefreshInterval, zlog)

	go screener.Run(ctx)

	dashboardHandler := httpdelivery.NewDashboardHandler(dashRepo, watchlist, zlog)
	watchlistHandler := httpdelivery.NewWatchlistHandler(watchlist, universe)
	tokenHandler := httpdelivery.NewTokenHandler(tokenRepo)
	wsHandler := websocket.NewHandler(dashRepo, watchlist, cfg.Provider.RefreshInterval, zlog)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/dashboard", dashboardHandler.Dashboard)
	mux.HandleFunc("/api/leaderboard", dashboardHandler.Leaderboard)
	mux.HandleFunc("/api/signals", dashboardHandler.Signals)
	mux.HandleFunc("/api/watchlist", watchlistHandler.Handle)
	mux.HandleFunc("/api/tokens/register", tokenHandler.Register)
	mux.HandleFunc("/api/tokens/unregister", tokenHandler.Unregister)
	mux.HandleFunc("/health", dashboardHandler.Health)
	mux.HandleFunc("/ws", wsHandler.Handle)

	zlog.Infow("server listening", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
