package domain

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	DiaryID   uuid.UUID `json:"-"`
	AuthorID  uuid.UUID `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Joined fields
	Author string `json:"entryer,omitempty"`
	Diary  string `json:"diary,omitempty"`
}
