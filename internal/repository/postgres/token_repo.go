package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"diaryhub/internal/domain"
)

type TokenRepo struct {
	pool *pgxpool.Pool
}

func NewTokenRepo(pool *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

func (r *TokenRepo) Save(ctx context.Context, token *domain.AuthToken) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO authtokens (token, valid) VALUES ($1, $2)`, token.Token, token.Valid)
	return err
}

func (r *TokenRepo) Get(ctx context.Context, token string) (*domain.AuthToken, error) {
	var t domain.AuthToken
	err := r.pool.QueryRow(ctx, `SELECT token, valid FROM authtokens WHERE token = $1`, token).Scan(&t.Token, &t.Valid)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &t, err
}

func (r *TokenRepo) Invalidate(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `UPDATE authtokens SET valid = false WHERE token = $1`, token)
	return err
}
