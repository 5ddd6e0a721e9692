package service

import "context"

// VerificationSender delivers the one-time code that confirms a user's email address.
type VerificationSender interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}
