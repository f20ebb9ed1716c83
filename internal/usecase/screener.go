package usecase

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"rotation-backend/internal/domain"
	"rotation-backend/internal/infrastructure/coingecko"
)

// MarketDataProvider is the slice of the CoinGecko client the screener needs.
type MarketDataProvider interface {
	ListMarkets(ctx context.Context, ids []string) ([]coingecko.MarketRow, error)
	MarketChart(ctx context.Context, id string) ([]float64, error)
}

// SignalPublisher receives the signal messages of a completed refresh.
type SignalPublisher interface {
	Publish(signals []domain.SignalMessage)
}

// ScreenerUsecase drives the refresh loop: fetch provider data, run the
// signal engine over the whole universe and store the resulting dashboard
// state atomically. A failed fetch skips the cycle and leaves the previous
// state in place.
type ScreenerUsecase struct {
	universe []domain.CoinDefinition
	provider MarketDataProvider
	repo     domain.DashboardRepository
	notifier SignalPublisher
	log      *zap.SugaredLogger
	interval time.Duration

	gen        atomic.Uint64
	mu         sync.Mutex
	cancelPrev context.CancelFunc
}

func NewScreenerUsecase(
	universe []domain.CoinDefinition,
	provider MarketDataProvider,
	repo domain.DashboardRepository,
	notifier SignalPublisher,
	interval time.Duration,
	log *zap.SugaredLogger,
) *ScreenerUsecase {
	return &ScreenerUsecase{
		universe: universe,
		provider: provider,
		repo:     repo,
		notifier: notifier,
		interval: interval,
		log:      log,
	}
}

// Run starts the refresh loop and blocks until ctx is done.
func (uc *ScreenerUsecase) Run(ctx context.Context) {
	ticker := time.NewTicker(uc.interval)
	defer ticker.Stop()

	go uc.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go uc.Refresh(ctx)
		}
	}
}

// Refresh runs one full cycle. A newer cycle cancels any still-running fetch,
// and the generation guard in the repository makes the outcome last-write-wins
// even if a stale cycle limps to completion.
func (uc *ScreenerUsecase) Refresh(parent context.Context) {
	uc.mu.Lock()
	if uc.cancelPrev != nil {
		uc.cancelPrev()
	}
	ctx, cancel := context.WithCancel(parent)
	uc.cancelPrev = cancel
	uc.mu.Unlock()

	gen := uc.gen.Add(1)
	start := time.Now()

	ids := make([]string, len(uc.universe))
	for i, c := range uc.universe {
		ids[i] = c.ID
	}

	rows, err := uc.provider.ListMarkets(ctx, ids)
	if err != nil {
		uc.log.Warnw("market fetch failed, keeping previous snapshot", "error", err)
		return
	}

	rowByID := make(map[string]coingecko.MarketRow, len(rows))
	for _, r := range rows {
		rowByID[r.ID] = r
	}

	seriesByID := uc.fetchSeries(ctx, ids)

	insights := make([]domain.CoinInsight, 0, len(uc.universe))
	for _, coin := range uc.universe {
		snap := BuildSnapshot(rowByID[coin.ID], seriesByID[coin.ID])
		ind := ComputeIndicators(snap)
		insights = append(insights, domain.CoinInsight{
			Coin:       coin,
			Snapshot:   snap,
			Indicators: ind,
			Score:      Score(snap, ind),
		})
	}

	stats := AggregateSectors(insights)
	state := domain.DashboardState{
		Coins:       insights,
		Leaderboard: RankByRotation(insights, ""),
		Sectors:     stats,
		Signals:     EmitSignals(insights, stats),
		RefreshedAt: time.Now(),
		Generation:  gen,
	}

	if !uc.repo.Save(state) {
		uc.log.Infow("stale refresh discarded", "generation", gen)
		return
	}

	if uc.notifier != nil {
		uc.notifier.Publish(state.Signals)
	}

	uc.log.Infow("refresh cycle completed",
		"generation", gen,
		"coins", len(insights),
		"signals", len(state.Signals),
		"took", time.Since(start),
	)
}

// fetchSeries pulls the 7d price series per coin with bounded concurrency.
// A failed chart leaves that coin's series empty, which downstream simply
// reads as unknown EMAs.
func (uc *ScreenerUsecase) fetchSeries(ctx context.Context, ids []string) map[string][]float64 {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, 4)
	)
	out := make(map[string][]float64, len(ids))

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			series, err := uc.provider.MarketChart(ctx, id)
			if err != nil {
				uc.log.Debugw("price series unavailable", "coin", id, "error", err)
				return
			}
			mu.Lock()
			out[id] = series
			mu.Unlock()
		}(id)
	}

	wg.Wait()
	return out
}

// BuildSnapshot normalizes one provider row plus its price series into a
// MarketSnapshot. Missing or non-finite values become nil ("unknown"); when
// the provider omits the 7d change but a series is present, the change is
// derived from the series endpoints.
func BuildSnapshot(row coingecko.MarketRow, series []float64) domain.MarketSnapshot {
	snap := domain.MarketSnapshot{
		Price:       sanitize(row.CurrentPrice),
		Change24h:   sanitize(row.Change24h),
		Change7d:    sanitize(row.Change7d),
		PriceSeries: series,
	}

	if snap.Change7d == nil && len(series) >= 2 && series[0] != 0 {
		change := (series[len(series)-1]/series[0] - 1) * 100
		if !math.IsNaN(change) && !math.IsInf(change, 0) {
			snap.Change7d = &change
		}
	}
	return snap
}

func sanitize(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
