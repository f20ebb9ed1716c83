package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTokenRepository persists FCM device tokens so registered devices
// keep receiving rotation signals across restarts.
type PostgresTokenRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTokenRepository(pool *pgxpool.Pool) *PostgresTokenRepository {
	return &PostgresTokenRepository{pool: pool}
}

func (r *PostgresTokenRepository) Register(token, platform string) error {
	_, err := r.pool.Exec(context.Background(), `
		insert into device_tokens(token, platform, created_at)
		values ($1, $2, $3)
		on conflict (token) do update set platform = excluded.platform
	`, token, platform, time.Now())
	return err
}

func (r *PostgresTokenRepository) Unregister(token string) error {
	_, err := r.pool.Exec(context.Background(), `
		delete from device_tokens where token = $1
	`, token)
	return err
}

func (r *PostgresTokenRepository) Tokens() ([]string, error) {
	rows, err := r.pool.Query(context.Background(), `
		select token from device_tokens
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *PostgresTokenRepository) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `
		select count(*) from device_tokens
	`).Scan(&n)
	return n, err
}
