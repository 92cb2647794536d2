package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"diaryhub/internal/domain"
	"diaryhub/internal/repository"
)

var ErrEntryNotFound = errors.New("entry not found")

// Notifier pushes a freshly created notification to the recipient if they are
// connected. Delivery is best effort; the persisted row is the record.
type Notifier interface {
	NotifyNewEntry(n *domain.Notification)
}

type EntryService struct {
	entryRepo        repository.EntryRepository
	diaryRepo        repository.DiaryRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	notifier         Notifier
}

func NewEntryService(
	entryRepo repository.EntryRepository,
	diaryRepo repository.DiaryRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *EntryService {
	return &EntryService{
		entryRepo:        entryRepo,
		diaryRepo:        diaryRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// SetNotifier attaches the live-push notifier. Optional; wired after the hub
// exists.
func (s *EntryService) SetNotifier(n Notifier) {
	s.notifier = n
}

type EntryInput struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Create appends an entry to a diary. When the author is not the diary's
// owner a notification for the owner is created as part of the same request,
// before the response is assembled.
func (s *EntryService) Create(ctx context.Context, authorID, diaryID uuid.UUID, input EntryInput) (*domain.Entry, error) {
	diary, err := s.diaryRepo.GetByID(ctx, diaryID)
	if err != nil {
		return nil, err
	}
	if diary == nil {
		return nil, ErrDiaryNotFound
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	entry := &domain.Entry{
		ID:        uuid.New(),
		Title:     input.Title,
		Desc:      input.Desc,
		DiaryID:   diaryID,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
		Author:    author.Username,
		Diary:     diary.Name,
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating entry: %w", err)
	}

	if authorID != diary.OwnerID {
		notification := &domain.Notification{
			ID:          uuid.New(),
			RecipientID: diary.OwnerID,
			Actor:       author.Username,
			DiaryID:     diaryID,
			EntryID:     entry.ID,
			Action:      domain.NotificationAction,
			CreatedAt:   now,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return nil, fmt.Errorf("creating notification: %w", err)
		}
		if s.notifier != nil {
			s.notifier.NotifyNewEntry(notification)
		}
	}

	return entry, nil
}

// ListByDiary requires the diary to exist; an existing diary with no entries
// is a valid, distinct outcome.
func (s *EntryService) ListByDiary(ctx context.Context, diaryID uuid.UUID) ([]domain.Entry, error) {
	diary, err := s.diaryRepo.GetByID(ctx, diaryID)
	if err != nil {
		return nil, err
	}
	if diary == nil {
		return nil, ErrDiaryNotFound
	}

	return s.entryRepo.ListByDiary(ctx, diaryID)
}

func (s *EntryService) ListAll(ctx context.Context) ([]domain.Entry, error) {
	return s.entryRepo.ListAll(ctx)
}

// Update replaces the entry's mutable fields. Only the author may update, and
// both the diary and the entry must exist before authorship is even looked at.
func (s *EntryService) Update(ctx context.Context, userID, diaryID, entryID uuid.UUID, input EntryInput) (*domain.Entry, error) {
	entry, err := s.precheck(ctx, userID, diaryID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Title = input.Title
	entry.Desc = input.Desc
	entry.UpdatedAt = time.Now()

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	return entry, nil
}

func (s *EntryService) Delete(ctx context.Context, userID, diaryID, entryID uuid.UUID) error {
	if _, err := s.precheck(ctx, userID, diaryID, entryID); err != nil {
		return err
	}
	return s.entryRepo.Delete(ctx, entryID)
}

// precheck resolves the diary and entry, in that order, then compares the
// caller against the entry's author.
func (s *EntryService) precheck(ctx context.Context, userID, diaryID, entryID uuid.UUID) (*domain.Entry, error) {
	diary, err := s.diaryRepo.GetByID(ctx, diaryID)
	if err != nil {
		return nil, err
	}
	if diary == nil {
		return nil, ErrDiaryNotFound
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	if entry.AuthorID != userID {
		return nil, ErrNotOwner
	}
	return entry, nil
}
