package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"diaryhub/internal/domain"
)

type DiaryRepo struct {
	pool *pgxpool.Pool
}

func NewDiaryRepo(pool *pgxpool.Pool) *DiaryRepo {
	return &DiaryRepo{pool: pool}
}

const diarySelect = `
	SELECT d.id, d.name, d.logo, d.location, d.category, d.bio, d.owner_id, d.created_at, d.updated_at, u.username
	FROM diaries d
	JOIN users u ON d.owner_id = u.id`

func (r *DiaryRepo) Create(ctx context.Context, diary *domain.Diary) error {
	query := `
		INSERT INTO diaries (id, name, logo, location, category, bio, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		diary.ID, diary.Name, diary.Logo, diary.Location, diary.Category,
		diary.Bio, diary.OwnerID, diary.CreatedAt, diary.UpdatedAt,
	)
	return err
}

func (r *DiaryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Diary, error) {
	return r.scanDiary(ctx, diarySelect+" WHERE d.id = $1", id)
}

func (r *DiaryRepo) GetByName(ctx context.Context, name string) (*domain.Diary, error) {
	return r.scanDiary(ctx, diarySelect+" WHERE d.name = $1", name)
}

func (r *DiaryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Diary, error) {
	return r.listDiaries(ctx, diarySelect+" WHERE d.owner_id = $1 ORDER BY d.created_at DESC", ownerID)
}

// Search filters and paginates diaries. Only one filter combination applies
// per request, picked in a fixed priority order; see buildSearchQuery.
func (r *DiaryRepo) Search(ctx context.Context, params domain.DiarySearch) ([]domain.Diary, error) {
	query, args := buildSearchQuery(params)
	return r.listDiaries(ctx, query, args...)
}

// buildSearchQuery picks the filter branch for a search. The first matching
// combination wins: location+query, then category+query, then
// category+location, then each filter alone. Supplying all three filters
// therefore lands in the location+query branch and the category is ignored.
// The name match is a case-insensitive substring.
func buildSearchQuery(params domain.DiarySearch) (string, []any) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 5
	}
	offset := (page - 1) * limit

	var (
		where string
		args  []any
	)
	location, category, q := params.Location, params.Category, params.Query

	switch {
	case location != "" && q != "":
		where = "WHERE d.location = $1 AND d.name ILIKE $2"
		args = []any{location, "%" + q + "%"}
	case category != "" && q != "":
		where = "WHERE d.category = $1 AND d.name ILIKE $2"
		args = []any{category, "%" + q + "%"}
	case category != "" && location != "":
		where = "WHERE d.location = $1 AND d.category = $2"
		args = []any{location, category}
	case location != "":
		where = "WHERE d.location = $1"
		args = []any{location}
	case category != "":
		where = "WHERE d.category = $1"
		args = []any{category}
	case q != "":
		where = "WHERE d.name ILIKE $1"
		args = []any{"%" + q + "%"}
	}

	query := fmt.Sprintf("%s %s ORDER BY d.created_at DESC LIMIT $%d OFFSET $%d",
		diarySelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return query, args
}

func (r *DiaryRepo) Update(ctx context.Context, diary *domain.Diary) error {
	query := `UPDATE diaries SET name = $1, logo = $2, location = $3, category = $4, bio = $5, updated_at = $6 WHERE id = $7`
	_, err := r.pool.Exec(ctx, query,
		diary.Name, diary.Logo, diary.Location, diary.Category, diary.Bio,
		diary.UpdatedAt, diary.ID,
	)
	return err
}

// Delete removes the diary and its entries in one transaction.
func (r *DiaryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM entries WHERE diary_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM diaries WHERE id = $1`, id)
		return err
	})
}

func (r *DiaryRepo) listDiaries(ctx context.Context, query string, args ...any) ([]domain.Diary, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diaries []domain.Diary
	for rows.Next() {
		var d domain.Diary
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Logo, &d.Location, &d.Category, &d.Bio,
			&d.OwnerID, &d.CreatedAt, &d.UpdatedAt, &d.Owner,
		); err != nil {
			return nil, err
		}
		diaries = append(diaries, d)
	}
	return diaries, rows.Err()
}

func (r *DiaryRepo) scanDiary(ctx context.Context, query string, arg any) (*domain.Diary, error) {
	var d domain.Diary
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&d.ID, &d.Name, &d.Logo, &d.Location, &d.Category, &d.Bio,
		&d.OwnerID, &d.CreatedAt, &d.UpdatedAt, &d.Owner,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &d, err
}
