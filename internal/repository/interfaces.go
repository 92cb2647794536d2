package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"diaryhub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Delete removes the user together with their diaries, authored entries
	// and received notifications in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

type DiaryRepository interface {
	Create(ctx context.Context, diary *domain.Diary) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Diary, error)
	GetByName(ctx context.Context, name string) (*domain.Diary, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Diary, error)
	Search(ctx context.Context, params domain.DiarySearch) ([]domain.Diary, error)
	Update(ctx context.Context, diary *domain.Diary) error
	// Delete removes the diary and all of its entries in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	ListByDiary(ctx context.Context, diaryID uuid.UUID) ([]domain.Entry, error)
	ListAll(ctx context.Context) ([]domain.Entry, error)
	Update(ctx context.Context, entry *domain.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error
}

type TokenRepository interface {
	Save(ctx context.Context, token *domain.AuthToken) error
	Get(ctx context.Context, token string) (*domain.AuthToken, error)
	Invalidate(ctx context.Context, token string) error
}
