package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"diaryhub/internal/domain"
)

type entryFixture struct {
	svc              *EntryService
	notificationRepo *fakeNotificationRepo
	notifier         *captureNotifier
	owner            uuid.UUID
	other            uuid.UUID
	diary            *domain.Diary
}

func newEntryFixture(t *testing.T) *entryFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	diaryRepo := newFakeDiaryRepo()
	entryRepo := newFakeEntryRepo()
	notificationRepo := newFakeNotificationRepo()

	owner := seedUser(t, userRepo, "robert")
	other := seedUser(t, userRepo, "hotpoint")

	diary := &domain.Diary{ID: uuid.New(), Name: "Crown", OwnerID: owner}
	require.NoError(t, diaryRepo.Create(context.Background(), diary))

	svc := NewEntryService(entryRepo, diaryRepo, userRepo, notificationRepo)
	notifier := &captureNotifier{}
	svc.SetNotifier(notifier)

	return &entryFixture{
		svc:              svc,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		owner:            owner,
		other:            other,
		diary:            diary,
	}
}

func TestEntryService_CreateByNonOwnerNotifies(t *testing.T) {
	t.Parallel()

	f := newEntryFixture(t)

	entry, err := f.svc.Create(context.Background(), f.other, f.diary.ID, EntryInput{
		Title: "hello", Desc: "first visit",
	})
	require.NoError(t, err)
	require.Equal(t, "hotpoint", entry.Author)
	require.Equal(t, "Crown", entry.Diary)

	// Exactly one notification, addressed to the diary owner, with the
	// author's username snapshotted as the actor.
	require.Len(t, f.notificationRepo.notifications, 1)
	n := f.notificationRepo.notifications[0]
	require.Equal(t, f.owner, n.RecipientID)
	require.Equal(t, "hotpoint", n.Actor)
	require.Equal(t, f.diary.ID, n.DiaryID)
	require.Equal(t, entry.ID, n.EntryID)
	require.Equal(t, domain.NotificationAction, n.Action)
	require.Nil(t, n.ReadAt)

	// And the live push saw the same notification.
	require.Len(t, f.notifier.pushed, 1)
	require.Equal(t, n.ID, f.notifier.pushed[0].ID)
}

func TestEntryService_CreateByOwnerDoesNotNotify(t *testing.T) {
	t.Parallel()

	f := newEntryFixture(t)

	_, err := f.svc.Create(context.Background(), f.owner, f.diary.ID, EntryInput{Title: "mine"})
	require.NoError(t, err)

	require.Empty(t, f.notificationRepo.notifications)
	require.Empty(t, f.notifier.pushed)
}

func TestEntryService_CreateDiaryNotFound(t *testing.T) {
	t.Parallel()

	f := newEntryFixture(t)

	_, err := f.svc.Create(context.Background(), f.other, uuid.New(), EntryInput{Title: "x"})
	require.ErrorIs(t, err, ErrDiaryNotFound)
	require.Empty(t, f.notificationRepo.notifications)
}

func TestEntryService_ListByDiary(t *testing.T) {
	t.Parallel()

	f := newEntryFixture(t)

	// An existing diary with no entries is a valid empty list, not an error.
	entries, err := f.svc.ListByDiary(context.Background(), f.diary.ID)
	require.NoError(t, err)
	require.Empty(t, entries)

	_, err = f.svc.ListByDiary(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrDiaryNotFound)

	_, err = f.svc.Create(context.Background(), f.owner, f.diary.ID, EntryInput{Title: "one"})
	require.NoError(t, err)

	entries, err = f.svc.ListByDiary(context.Background(), f.diary.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestEntryService_PrecheckOrder(t *testing.T) {
	t.Parallel()

	f := newEntryFixture(t)

	entry, err := f.svc.Create(context.Background(), f.other, f.diary.ID, EntryInput{Title: "hello"})
	require.NoError(t, err)

	// Missing diary wins over everything, even a missing entry.
	_, err = f.svc.Update(context.Background(), f.other, uuid.New(), uuid.New(), EntryInput{Title: "x"})
	require.ErrorIs(t, err, ErrDiaryNotFound)

	// Then a missing entry, before any authorship comparison.
	_, err = f.svc.Update(context.Background(), f.owner, f.diary.ID, uuid.New(), EntryInput{Title: "x"})
	require.ErrorIs(t, err, ErrEntryNotFound)

	// Only the author may touch the entry; the diary owner does not qualify.
	_, err = f.svc.Update(context.Background(), f.owner, f.diary.ID, entry.ID, EntryInput{Title: "x"})
	require.ErrorIs(t, err, ErrNotOwner)
	require.ErrorIs(t, f.svc.Delete(context.Background(), f.owner, f.diary.ID, entry.ID), ErrNotOwner)
}

func TestEntryService_UpdateAndDeleteByAuthor(t *testing.T) {
	t.Parallel()

	f := newEntryFixture(t)

	entry, err := f.svc.Create(context.Background(), f.other, f.diary.ID, EntryInput{Title: "hello", Desc: "d"})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), f.other, f.diary.ID, entry.ID, EntryInput{
		Title: "hello again", Desc: "edited",
	})
	require.NoError(t, err)
	require.Equal(t, "hello again", updated.Title)
	require.Equal(t, "edited", updated.Desc)

	require.NoError(t, f.svc.Delete(context.Background(), f.other, f.diary.ID, entry.ID))

	entries, err := f.svc.ListByDiary(context.Background(), f.diary.ID)
	require.NoError(t, err)
	require.Empty(t, entries)
}
