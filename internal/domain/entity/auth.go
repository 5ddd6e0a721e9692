package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names the credential backend of an Authentication.
type ProviderType string

const (
	// ProviderTypeEmail is the email/password credential.
	ProviderTypeEmail ProviderType = "email"
)

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider.
	ProviderUserID string       // The identifier within the provider, the email for ProviderTypeEmail.
	PasswordHash   string       // Stores the bcrypt-hashed password.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time
}
