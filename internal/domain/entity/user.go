// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the account that owns habits and receives reminders.
type User struct {
	ID        uuid.UUID `json:"id"`                  // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`               // Login identifier.
	Name      string    `json:"name"`                // Display name.
	FCMToken  *string   `json:"fcm_token,omitempty"` // Device push token. Nil when the user has not registered a device.
	CreatedAt time.Time `json:"created_at"`          // Timestamp of when this user account was created.
	UpdatedAt time.Time `json:"updated_at"`          // Timestamp of the last modification to this user's data.

	// IsVerified is set once the emailed code has been confirmed. Unverified users cannot log in.
	IsVerified bool `json:"is_verified"`

	VerificationCode          *string    `json:"-"`
	VerificationCodeExpiresAt *time.Time `json:"-"`
}

// IssueVerificationCode stores a pending code that is valid until expiresAt.
func (u *User) IssueVerificationCode(code string, expiresAt time.Time) {
	u.IsVerified = false
	u.VerificationCode = &code
	u.VerificationCodeExpiresAt = &expiresAt
}

// Verify marks the user verified when code matches the pending one and has
// not expired at now. It reports whether the user was verified.
func (u *User) Verify(code string, now time.Time) bool {
	if u.IsVerified || u.VerificationCode == nil || u.VerificationCodeExpiresAt == nil {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(*u.VerificationCode), []byte(code)) != 1 {
		return false
	}
	if now.After(*u.VerificationCodeExpiresAt) {
		return false
	}

	u.IsVerified = true
	u.VerificationCode = nil
	u.VerificationCodeExpiresAt = nil

	return true
}

// PushToken returns the device token and whether it is usable for delivery.
func (u *User) PushToken() (string, bool) {
	if u == nil || u.FCMToken == nil {
		return "", false
	}

	token := strings.TrimSpace(*u.FCMToken)

	return token, token != ""
}
