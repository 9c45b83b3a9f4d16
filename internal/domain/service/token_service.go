package service

import (
	"time"

	"zerowaste/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService issues and verifies purpose-scoped signed tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after the purpose's TTL.
	Issue(subject uuid.UUID, purpose entity.TokenPurpose) (string, error)

	// Verify checks signature and expiry and returns the subject.
	// An empty expected purpose skips the purpose check.
	Verify(token string, expected entity.TokenPurpose) (uuid.UUID, error)

	// TTL returns the lifetime configured for a purpose.
	TTL(purpose entity.TokenPurpose) time.Duration
}
