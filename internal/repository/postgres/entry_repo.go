package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"diaryhub/internal/domain"
)

type EntryRepo struct {
	pool *pgxpool.Pool
}

func NewEntryRepo(pool *pgxpool.Pool) *EntryRepo {
	return &EntryRepo{pool: pool}
}

const entrySelect = `
	SELECT e.id, e.title, e.description, e.diary_id, e.author_id, e.created_at, e.updated_at, u.username, d.name
	FROM entries e
	JOIN users u ON e.author_id = u.id
	JOIN diaries d ON e.diary_id = d.id`

func (r *EntryRepo) Create(ctx context.Context, entry *domain.Entry) error {
	query := `
		INSERT INTO entries (id, title, description, diary_id, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.Title, entry.Desc, entry.DiaryID, entry.AuthorID,
		entry.CreatedAt, entry.UpdatedAt,
	)
	return err
}

func (r *EntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	var e domain.Entry
	err := r.pool.QueryRow(ctx, entrySelect+" WHERE e.id = $1", id).Scan(
		&e.ID, &e.Title, &e.Desc, &e.DiaryID, &e.AuthorID,
		&e.CreatedAt, &e.UpdatedAt, &e.Author, &e.Diary,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &e, err
}

func (r *EntryRepo) ListByDiary(ctx context.Context, diaryID uuid.UUID) ([]domain.Entry, error) {
	return r.listEntries(ctx, entrySelect+" WHERE e.diary_id = $1 ORDER BY e.created_at", diaryID)
}

func (r *EntryRepo) ListAll(ctx context.Context) ([]domain.Entry, error) {
	return r.listEntries(ctx, entrySelect+" ORDER BY e.created_at")
}

func (r *EntryRepo) Update(ctx context.Context, entry *domain.Entry) error {
	query := `UPDATE entries SET title = $1, description = $2, updated_at = $3 WHERE id = $4`
	_, err := r.pool.Exec(ctx, query, entry.Title, entry.Desc, entry.UpdatedAt, entry.ID)
	return err
}

func (r *EntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	return err
}

func (r *EntryRepo) listEntries(ctx context.Context, query string, args ...any) ([]domain.Entry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Desc, &e.DiaryID, &e.AuthorID,
			&e.CreatedAt, &e.UpdatedAt, &e.Author, &e.Diary,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
