package domain

import (
	"time"

	"github.com/google/uuid"
)

type Diary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	Location  string    `json:"location"`
	Category  string    `json:"category"`
	Bio       string    `json:"bio"`
	OwnerID   uuid.UUID `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Joined field
	Owner string `json:"owner,omitempty"`
}

// DiarySearch carries the pagination and optional filters for listing diaries.
// Page is 1-indexed.
type DiarySearch struct {
	Page     int
	Limit    int
	Location string
	Category string
	Query    string
}
