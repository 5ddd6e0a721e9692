package entity

import (
	"time"

	"github.com/google/uuid"
)

// Habit is a recurring activity a user wants to track.
type Habit struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether the habit belongs to userID.
func (h *Habit) IsOwnedBy(userID uuid.UUID) bool {
	return h != nil && h.UserID == userID
}
