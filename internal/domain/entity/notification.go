package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a per-habit reminder fired at a wall-clock time every day.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	HabitID   uuid.UUID `json:"habit_id"`
	Time      TimeOfDay `json:"time"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
