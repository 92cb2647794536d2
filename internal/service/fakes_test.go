package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"diaryhub/internal/domain"
)

// --- in-memory fakes shared by the service tests ---

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

type fakeDiaryRepo struct {
	diaries map[uuid.UUID]*domain.Diary
}

func newFakeDiaryRepo() *fakeDiaryRepo {
	return &fakeDiaryRepo{diaries: make(map[uuid.UUID]*domain.Diary)}
}

func (f *fakeDiaryRepo) Create(_ context.Context, diary *domain.Diary) error {
	cp := *diary
	f.diaries[diary.ID] = &cp
	return nil
}

func (f *fakeDiaryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Diary, error) {
	if d, ok := f.diaries[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDiaryRepo) GetByName(_ context.Context, name string) (*domain.Diary, error) {
	for _, d := range f.diaries {
		if d.Name == name {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDiaryRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Diary, error) {
	var out []domain.Diary
	for _, d := range f.diaries {
		if d.OwnerID == ownerID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDiaryRepo) Search(_ context.Context, _ domain.DiarySearch) ([]domain.Diary, error) {
	var out []domain.Diary
	for _, d := range f.diaries {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDiaryRepo) Update(_ context.Context, diary *domain.Diary) error {
	cp := *diary
	f.diaries[diary.ID] = &cp
	return nil
}

func (f *fakeDiaryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.diaries, id)
	return nil
}

type fakeEntryRepo struct {
	entries map[uuid.UUID]*domain.Entry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[uuid.UUID]*domain.Entry)}
}

func (f *fakeEntryRepo) Create(_ context.Context, entry *domain.Entry) error {
	cp := *entry
	f.entries[entry.ID] = &cp
	return nil
}

func (f *fakeEntryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Entry, error) {
	if e, ok := f.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeEntryRepo) ListByDiary(_ context.Context, diaryID uuid.UUID) ([]domain.Entry, error) {
	var out []domain.Entry
	for _, e := range f.entries {
		if e.DiaryID == diaryID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListAll(_ context.Context) ([]domain.Entry, error) {
	var out []domain.Entry
	for _, e := range f.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEntryRepo) Update(_ context.Context, entry *domain.Entry) error {
	cp := *entry
	f.entries[entry.ID] = &cp
	return nil
}

func (f *fakeEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.entries, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications []*domain.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	cp := *n
	f.notifications = append(f.notifications, &cp)
	return nil
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range f.notifications {
		if n.RecipientID == recipientID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID, at time.Time) error {
	for _, n := range f.notifications {
		if n.ID == id {
			n.ReadAt = &at
		}
	}
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]*domain.AuthToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.AuthToken)}
}

func (f *fakeTokenRepo) Save(_ context.Context, token *domain.AuthToken) error {
	cp := *token
	f.tokens[token.Token] = &cp
	return nil
}

func (f *fakeTokenRepo) Get(_ context.Context, token string) (*domain.AuthToken, error) {
	if t, ok := f.tokens[token]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTokenRepo) Invalidate(_ context.Context, token string) error {
	if t, ok := f.tokens[token]; ok {
		t.Valid = false
	}
	return nil
}

type captureNotifier struct {
	pushed []*domain.Notification
}

func (c *captureNotifier) NotifyNewEntry(n *domain.Notification) {
	c.pushed = append(c.pushed, n)
}
