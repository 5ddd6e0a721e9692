package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitRecord marks whether a habit was completed on one calendar day.
// At most one record exists per (HabitID, Date).
type HabitRecord struct {
	ID        uuid.UUID `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	Date      Date      `json:"date"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
