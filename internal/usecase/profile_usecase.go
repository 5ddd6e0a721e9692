package usecase

import (
	"context"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the profile fields to change. Nil fields are left as they are.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile changes the name and login email of the user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// UpdateFCMToken registers the device push token reminders are sent to.
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error

	// ClearFCMToken removes the push token. Reminders for the user are skipped afterwards.
	ClearFCMToken(ctx context.Context, userID uuid.UUID) error
}
