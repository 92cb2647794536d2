package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"diaryhub/internal/domain"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := repo.Create(context.Background(), &domain.User{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return id
}

func TestDiaryService_Create(t *testing.T) {
	t.Parallel()

	diaryRepo := newFakeDiaryRepo()
	userRepo := newFakeUserRepo()
	svc := NewDiaryService(diaryRepo, userRepo)
	ownerID := seedUser(t, userRepo, "robert")

	diary, err := svc.Create(context.Background(), ownerID, DiaryInput{
		Name: "Crown", Location: "NBO", Category: "Travel", Bio: "trips",
	})
	require.NoError(t, err)
	require.Equal(t, "Crown", diary.Name)
	require.Equal(t, ownerID, diary.OwnerID)
	require.Equal(t, "robert", diary.Owner)
	require.False(t, diary.CreatedAt.IsZero())
}

func TestDiaryService_CreateDuplicateName(t *testing.T) {
	t.Parallel()

	diaryRepo := newFakeDiaryRepo()
	userRepo := newFakeUserRepo()
	svc := NewDiaryService(diaryRepo, userRepo)
	robert := seedUser(t, userRepo, "robert")
	hotpoint := seedUser(t, userRepo, "hotpoint")

	_, err := svc.Create(context.Background(), robert, DiaryInput{Name: "Crown"})
	require.NoError(t, err)

	// Uniqueness is global, not per owner.
	_, err = svc.Create(context.Background(), hotpoint, DiaryInput{Name: "Crown"})
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestDiaryService_UpdateReplacesFields(t *testing.T) {
	t.Parallel()

	diaryRepo := newFakeDiaryRepo()
	userRepo := newFakeUserRepo()
	svc := NewDiaryService(diaryRepo, userRepo)
	ownerID := seedUser(t, userRepo, "robert")

	diary, err := svc.Create(context.Background(), ownerID, DiaryInput{
		Name: "Crown", Logo: "http://logo", Location: "NBO", Category: "Travel", Bio: "trips",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), ownerID, diary.ID, DiaryInput{
		Name: "Crown 2", Location: "MBA",
	})
	require.NoError(t, err)
	require.Equal(t, "Crown 2", updated.Name)
	require.Equal(t, "MBA", updated.Location)
	// Full replace: fields absent from the input are cleared.
	require.Empty(t, updated.Logo)
	require.Empty(t, updated.Category)
	require.Empty(t, updated.Bio)
}

func TestDiaryService_UpdateDoesNotRecheckName(t *testing.T) {
	t.Parallel()

	diaryRepo := newFakeDiaryRepo()
	userRepo := newFakeUserRepo()
	svc := NewDiaryService(diaryRepo, userRepo)
	ownerID := seedUser(t, userRepo, "robert")

	first, err := svc.Create(context.Background(), ownerID, DiaryInput{Name: "Crown"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), ownerID, DiaryInput{Name: "Second"})
	require.NoError(t, err)

	// Renaming onto an existing name is allowed on update; only create
	// enforces uniqueness.
	updated, err := svc.Update(context.Background(), ownerID, first.ID, DiaryInput{Name: "Second"})
	require.NoError(t, err)
	require.Equal(t, "Second", updated.Name)
}

func TestDiaryService_OwnershipPrecheck(t *testing.T) {
	t.Parallel()

	diaryRepo := newFakeDiaryRepo()
	userRepo := newFakeUserRepo()
	svc := NewDiaryService(diaryRepo, userRepo)
	robert := seedUser(t, userRepo, "robert")
	hotpoint := seedUser(t, userRepo, "hotpoint")

	diary, err := svc.Create(context.Background(), robert, DiaryInput{Name: "Crown"})
	require.NoError(t, err)

	// Existence is checked before ownership: an unknown id is always a
	// not-found, whoever asks.
	_, err = svc.Update(context.Background(), hotpoint, uuid.New(), DiaryInput{Name: "x"})
	require.ErrorIs(t, err, ErrDiaryNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), hotpoint, uuid.New()), ErrDiaryNotFound)

	// A non-owner is rejected on an existing diary.
	_, err = svc.Update(context.Background(), hotpoint, diary.ID, DiaryInput{Name: "x"})
	require.ErrorIs(t, err, ErrNotOwner)
	require.ErrorIs(t, svc.Delete(context.Background(), hotpoint, diary.ID), ErrNotOwner)

	// The owner goes through.
	require.NoError(t, svc.Delete(context.Background(), robert, diary.ID))
}

func TestDiaryService_GetNotFound(t *testing.T) {
	t.Parallel()

	svc := NewDiaryService(newFakeDiaryRepo(), newFakeUserRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrDiaryNotFound)
}

func TestDiaryService_CreateSetsTimestamps(t *testing.T) {
	t.Parallel()

	diaryRepo := newFakeDiaryRepo()
	userRepo := newFakeUserRepo()
	svc := NewDiaryService(diaryRepo, userRepo)
	ownerID := seedUser(t, userRepo, "robert")

	before := time.Now()
	diary, err := svc.Create(context.Background(), ownerID, DiaryInput{Name: "Crown"})
	require.NoError(t, err)
	require.False(t, diary.CreatedAt.Before(before))
	require.Equal(t, diary.CreatedAt, diary.UpdatedAt)
}
