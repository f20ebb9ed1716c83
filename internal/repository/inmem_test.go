package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotation-backend/internal/domain"
)

func TestDashboardRepository_EmptyUntilFirstSave(t *testing.T) {
	repo := NewInMemoryDashboardRepository()
	_, ok := repo.Get()
	assert.False(t, ok)
}

func TestDashboardRepository_StaleGenerationRejected(t *testing.T) {
	repo := NewInMemoryDashboardRepository()

	assert.True(t, repo.Save(domain.DashboardState{Generation: 2, RefreshedAt: time.Now()}))
	assert.False(t, repo.Save(domain.DashboardState{Generation: 1}))
	assert.False(t, repo.Save(domain.DashboardState{Generation: 2}))

	state, ok := repo.Get()
	require.True(t, ok)
	assert.Equal(t, uint64(2), state.Generation)

	assert.True(t, repo.Save(domain.DashboardState{Generation: 3}))
}

func TestInMemoryWatchlistRepository_RoundTrip(t *testing.T) {
	repo := NewInMemoryWatchlistRepository()

	ids, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.Save([]string{"bitcoin", "ethereum"}))
	ids, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin", "ethereum"}, ids)
}

func TestInMemoryTokenRepository(t *testing.T) {
	repo := NewInMemoryTokenRepository()

	require.NoError(t, repo.Register("tok-1", "android"))
	require.NoError(t, repo.Register("tok-1", "ios")) // re-register updates
	require.NoError(t, repo.Register("tok-2", "android"))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.Unregister("tok-1"))
	tokens, err := repo.Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-2"}, tokens)
}
