package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"diaryhub/internal/domain"
	"diaryhub/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoDiaries    = errors.New("user does not own a diary")
)

type UserService struct {
	userRepo  repository.UserRepository
	diaryRepo repository.DiaryRepository
}

func NewUserService(userRepo repository.UserRepository, diaryRepo repository.DiaryRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		diaryRepo: diaryRepo,
	}
}

// UserListing is a user with their owned diaries embedded, as the public
// user index returns them.
type UserListing struct {
	ID       uuid.UUID      `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Diaries  []DiarySummary `json:"diaries"`
}

type DiarySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (s *UserService) List(ctx context.Context) ([]UserListing, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]UserListing, 0, len(users))
	for _, u := range users {
		diaries, err := s.diaryRepo.ListByOwner(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		summaries := make([]DiarySummary, 0, len(diaries))
		for _, d := range diaries {
			summaries = append(summaries, DiarySummary{ID: d.ID, Name: d.Name})
		}
		listings = append(listings, UserListing{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Diaries:  summaries,
		})
	}
	return listings, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Diaries lists the diaries a user owns. A missing user and a user with no
// diaries both surface as ErrNoDiaries, matching the public endpoint's
// friendly empty state.
func (s *UserService) Diaries(ctx context.Context, userID uuid.UUID) ([]domain.Diary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoDiaries
	}

	diaries, err := s.diaryRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(diaries) == 0 {
		return nil, ErrNoDiaries
	}
	return diaries, nil
}

// Delete removes an account and everything it owns: diaries, their entries,
// authored entries elsewhere, and received notifications. Only the account
// itself may do this.
func (s *UserService) Delete(ctx context.Context, callerID, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if callerID != userID {
		return ErrNotOwner
	}

	return s.userRepo.Delete(ctx, userID)
}
