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

var (
	ErrDiaryNotFound = errors.New("diary not found")
	ErrNameTaken     = errors.New("diary name already taken")
	ErrNotOwner      = errors.New("not allowed, caller is not the owner")
)

type DiaryService struct {
	diaryRepo repository.DiaryRepository
	userRepo  repository.UserRepository
}

func NewDiaryService(diaryRepo repository.DiaryRepository, userRepo repository.UserRepository) *DiaryService {
	return &DiaryService{
		diaryRepo: diaryRepo,
		userRepo:  userRepo,
	}
}

type DiaryInput struct {
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Location string `json:"location"`
	Category string `json:"category"`
	Bio      string `json:"bio"`
}

// Create persists a new diary owned by the caller. The name must be unique
// across all diaries, checked up front so the caller gets a distinguishable
// conflict; the storage-level unique index backstops a create/create race.
func (s *DiaryService) Create(ctx context.Context, ownerID uuid.UUID, input DiaryInput) (*domain.Diary, error) {
	existing, err := s.diaryRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	diary := &domain.Diary{
		ID:        uuid.New(),
		Name:      input.Name,
		Logo:      input.Logo,
		Location:  input.Location,
		Category:  input.Category,
		Bio:       input.Bio,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
		Owner:     owner.Username,
	}

	if err := s.diaryRepo.Create(ctx, diary); err != nil {
		return nil, fmt.Errorf("creating diary: %w", err)
	}
	return diary, nil
}

func (s *DiaryService) Get(ctx context.Context, id uuid.UUID) (*domain.Diary, error) {
	diary, err := s.diaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diary == nil {
		return nil, ErrDiaryNotFound
	}
	return diary, nil
}

func (s *DiaryService) Search(ctx context.Context, params domain.DiarySearch) ([]domain.Diary, error) {
	return s.diaryRepo.Search(ctx, params)
}

// Update replaces every mutable field. Existence is checked before ownership
// so an absent diary never surfaces as an ownership failure. Name uniqueness
// is deliberately not re-checked here; only create enforces it.
func (s *DiaryService) Update(ctx context.Context, userID, diaryID uuid.UUID, input DiaryInput) (*domain.Diary, error) {
	diary, err := s.diaryRepo.GetByID(ctx, diaryID)
	if err != nil {
		return nil, err
	}
	if diary == nil {
		return nil, ErrDiaryNotFound
	}
	if diary.OwnerID != userID {
		return nil, ErrNotOwner
	}

	diary.Name = input.Name
	diary.Logo = input.Logo
	diary.Location = input.Location
	diary.Category = input.Category
	diary.Bio = input.Bio
	diary.UpdatedAt = time.Now()

	if err := s.diaryRepo.Update(ctx, diary); err != nil {
		return nil, fmt.Errorf("updating diary: %w", err)
	}
	return diary, nil
}

// Delete removes the diary and cascades to its entries.
func (s *DiaryService) Delete(ctx context.Context, userID, diaryID uuid.UUID) error {
	diary, err := s.diaryRepo.GetByID(ctx, diaryID)
	if err != nil {
		return err
	}
	if diary == nil {
		return ErrDiaryNotFound
	}
	if diary.OwnerID != userID {
		return ErrNotOwner
	}

	return s.diaryRepo.Delete(ctx, diaryID)
}
