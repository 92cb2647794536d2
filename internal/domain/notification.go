package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationAction is the fixed text recorded with every notification.
const NotificationAction = " entryed one of your diaries"

// Notification is an append-only event telling a diary owner that someone
// else wrote into their diary. Actor is a username snapshot, not a reference.
type Notification struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"-"`
	Actor       string     `json:"actor"`
	DiaryID     uuid.UUID  `json:"diary_id"`
	EntryID     uuid.UUID  `json:"entry_id"`
	Action      string     `json:"action"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
