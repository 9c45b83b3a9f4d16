// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"zerowaste/config"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/service"
)

const (
	// MinBcryptCost is the lowest work factor accepted from configuration.
	MinBcryptCost = 10
	// DefaultBcryptCost is used when configuration leaves the cost unset.
	DefaultBcryptCost = 12

	MinPasswordLength = 8
	MaxPasswordLength = 100
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher from configuration, raising the cost
// to MinBcryptCost when a weaker value is configured.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := DefaultBcryptCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = max(cfg.Auth.BcryptCost, MinBcryptCost)
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost, clamped to bcrypt's valid range.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := ValidatePasswordLength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword(prehash(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
	// err is nil if the password and hash match.
	return err == nil
}

// prehash folds the password into 44 bytes so that multi-byte passwords of
// up to MaxPasswordLength characters stay under bcrypt's 72 byte input limit.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])

	return out
}

// ValidatePasswordLength enforces the 8 to 100 character rule.
func ValidatePasswordLength(password string) error {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength || n > MaxPasswordLength {
		return domainerrors.ErrInvalidInput.WithDetails("password must be between 8 and 100 characters")
	}

	return nil
}
