package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresWatchlistRepository persists the visible-coin set in Postgres so the
// preference survives restarts. The set is small and written rarely, so each
// save simply replaces it inside one transaction.
type PostgresWatchlistRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresWatchlistRepository(pool *pgxpool.Pool) *PostgresWatchlistRepository {
	return &PostgresWatchlistRepository{pool: pool}
}

func (r *PostgresWatchlistRepository) Load() ([]string, error) {
	rows, err := r.pool.Query(context.Background(), `
		select coin_id from watchlist order by position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresWatchlistRepository) Save(ids []string) error {
	ctx := context.Background()
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `delete from watchlist`); err != nil {
		return err
	}
	for i, id := range ids {
		if _, err := tx.Exec(ctx, `
			insert into watchlist(coin_id, position) values ($1, $2)
		`, id, i); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
