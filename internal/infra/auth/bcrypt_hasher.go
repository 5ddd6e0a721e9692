// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"habitrack/config"
	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 8

// bcrypt only looks at the first 72 bytes of input.
const bcryptMaxPasswordBytes = 72

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "habitrack"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds a hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithPolicy(cost, policy)
}

// NewBcryptHasherWithPolicy is the explicit constructor used by tests.
func NewBcryptHasherWithPolicy(cost int, policy config.PasswordStrengthConfig) service.PasswordHasher {
	if policy.MinLength <= 0 {
		policy.MinLength = defaultMinPasswordLength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	fail := func(reason string) error {
		return domainerrors.ErrPasswordStrength.WithDetails(reason)
	}

	if len(password) < h.policy.MinLength {
		return errors.Wrapf(fail("too short"), "password must be at least %d characters long", h.policy.MinLength)
	}
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return errors.Wrapf(fail("too long"), "password must be at most %d characters long", h.policy.MaxLength)
	}
	if len(password) > bcryptMaxPasswordBytes {
		return errors.Wrapf(fail("too long"), "password must be at most %d bytes long", bcryptMaxPasswordBytes)
	}
	if h.policy.RequireLowercase && !containsRune(password, unicode.IsLower) {
		return errors.Wrap(fail("lowercase"), "password must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !containsRune(password, unicode.IsUpper) {
		return errors.Wrap(fail("uppercase"), "password must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !containsRune(password, unicode.IsDigit) {
		return errors.Wrap(fail("number"), "password must contain at least one number")
	}
	if h.policy.RequireSpecial && !containsRune(password, isSpecial) {
		return errors.Wrap(fail("special"), "password must contain at least one special character")
	}
	if containsForbiddenWords(password, forbiddenPasswordWords) {
		return errors.Wrap(fail("forbidden"), "password contains forbidden words")
	}

	return nil
}

func containsRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
