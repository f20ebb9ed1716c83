package repository

import (
	"sync"

	"rotation-backend/internal/domain"
)

// InMemoryDashboardRepository holds the latest dashboard state. The whole
// state is replaced at once; saves carrying a generation older than the
// stored one are rejected so a slow refresh can never clobber a newer result.
type InMemoryDashboardRepository struct {
	state domain.DashboardState
	ready bool
	mu    sync.RWMutex
}

func NewInMemoryDashboardRepository() *InMemoryDashboardRepository {
	return &InMemoryDashboardRepository{}
}

func (r *InMemoryDashboardRepository) Save(state domain.DashboardState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready && state.Generation <= r.state.Generation {
		return false
	}
	r.state = state
	r.ready = true
	return true
}

func (r *InMemoryDashboardRepository) Get() (domain.DashboardState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Slices are replaced wholesale and never mutated in place, so sharing
	// the backing arrays with callers is safe.
	return r.state, r.ready
}

// InMemoryWatchlistRepository keeps the visible-coin set in process memory.
// Used when no DATABASE_URL is configured; the preference then lives only for
// the lifetime of the process.
type InMemoryWatchlistRepository struct {
	ids []string
	mu  sync.RWMutex
}

func NewInMemoryWatchlistRepository() *InMemoryWatchlistRepository {
	return &InMemoryWatchlistRepository{}
}

func (r *InMemoryWatchlistRepository) Load() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out, nil
}

func (r *InMemoryWatchlistRepository) Save(ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = make([]string, len(ids))
	copy(r.ids, ids)
	return nil
}

// InMemoryTokenRepository manages device tokens without persistence.
type InMemoryTokenRepository struct {
	tokens map[string]string // token -> platform
	mu     sync.RWMutex
}

func NewInMemoryTokenRepository() *InMemoryTokenRepository {
	return &InMemoryTokenRepository{tokens: make(map[string]string)}
}

func (r *InMemoryTokenRepository) Register(token, platform string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = platform
	return nil
}

func (r *InMemoryTokenRepository) Unregister(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *InMemoryTokenRepository) Tokens() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := make([]string, 0, len(r.tokens))
	for t := range r.tokens {
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func (r *InMemoryTokenRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens), nil
}
