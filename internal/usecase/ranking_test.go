package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotation-backend/internal/domain"
)

func insight(id string, sector domain.Sector, rotation float64) domain.CoinInsight {
	return domain.CoinInsight{
		Coin:  domain.CoinDefinition{ID: id, Symbol: id, Sector: sector},
		Score: domain.ScoreResult{RotationScore: rotation},
	}
}

func TestRankByRotation_Descending(t *testing.T) {
	board := RankByRotation([]domain.CoinInsight{
		insight("a", domain.SectorL1, 1),
		insight("b", domain.SectorL1, 5),
		insight("c", domain.SectorL2, 3),
	}, "")

	require.Len(t, board, 3)
	assert.Equal(t, "b", board[0].Coin.ID)
	assert.Equal(t, "c", board[1].Coin.ID)
	assert.Equal(t, "a", board[2].Coin.ID)
}

func TestRankByRotation_StableTieBreak(t *testing.T) {
	board := RankByRotation([]domain.CoinInsight{
		insight("first", domain.SectorL1, 2),
		insight("second", domain.SectorL1, 2),
		insight("third", domain.SectorL1, 2),
	}, "")

	require.Len(t, board, 3)
	assert.Equal(t, "first", board[0].Coin.ID)
	assert.Equal(t, "second", board[1].Coin.ID)
	assert.Equal(t, "third", board[2].Coin.ID)
}

func TestRankByRotation_SectorFilter(t *testing.T) {
	board := RankByRotation([]domain.CoinInsight{
		insight("a", domain.SectorL1, 1),
		insight("b", domain.SectorL2, 5),
		insight("c", domain.SectorL1, 3),
	}, domain.SectorL1)

	require.Len(t, board, 2)
	assert.Equal(t, "c", board[0].Coin.ID)
	assert.Equal(t, "a", board[1].Coin.ID)
}
