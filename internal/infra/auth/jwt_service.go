// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/fx"

	"zerowaste/config"
	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/errors"
)

const generatedSecretSize = 32

// tokenClaims is the payload of every token the service signs.
type tokenClaims struct {
	Purpose entity.TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttls   map[entity.TokenPurpose]time.Duration
	now    func() time.Time
}

// JWTServiceParams holds dependencies for the token service, injected by Fx
type JWTServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewJWTService builds the token service from configuration. Without a
// configured secret a random one is generated for the process lifetime.
func NewJWTService(params JWTServiceParams) (service.TokenService, error) {
	cfg := params.Config.Token
	if cfg == nil {
		return nil, errors.New("token configuration is required")
	}

	if cfg.Secret == "" {
		secret, err := generateSecret()
		if err != nil {
			return nil, err
		}
		params.Logger.Warn("No token secret configured, generated an ephemeral one; issued tokens will not survive a restart")

		return NewJWTServiceWithClock(cfg, secret, time.Now)
	}

	if len(cfg.Secret) < generatedSecretSize {
		params.Logger.Warn("Token secret is shorter than 32 bytes", slog.Int("length", len(cfg.Secret)))
	}

	return NewJWTServiceWithClock(cfg, []byte(cfg.Secret), time.Now)
}

// NewJWTServiceWithClock creates the service with an explicit secret and time source.
func NewJWTServiceWithClock(cfg *config.TokenConfig, secret []byte, now func() time.Time) (service.TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}

	method := jwt.GetSigningMethod(cfg.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unsupported token algorithm %q", cfg.Algorithm)
	}

	return &jwtService{
		secret: secret,
		method: method,
		ttls: map[entity.TokenPurpose]time.Duration{
			entity.PurposeAccess: cfg.AccessTTL,
			entity.PurposeVerify: cfg.VerifyTTL,
			entity.PurposeReset:  cfg.ResetTTL,
		},
		now: now,
	}, nil
}

// Issue signs a token for subject scoped to purpose.
func (s *jwtService) Issue(subject uuid.UUID, purpose entity.TokenPurpose) (string, error) {
	ttl, ok := s.ttls[purpose]
	if !ok || ttl <= 0 {
		return "", errors.Errorf("no lifetime configured for token purpose %q", purpose)
	}

	issuedAt := s.now()
	claims := tokenClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify returns the subject of a valid token. Failures carry only the
// error category, never which check failed internally.
func (s *jwtService) Verify(token string, expected entity.TokenPurpose) (uuid.UUID, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, domainerrors.ErrTokenExpired
		}

		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	if !claims.Purpose.IsValid() {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}
	if expected != "" && claims.Purpose != expected {
		return uuid.Nil, domainerrors.ErrTokenPurposeMismatch
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return subject, nil
}

// TTL returns the lifetime configured for a purpose.
func (s *jwtService) TTL(purpose entity.TokenPurpose) time.Duration {
	return s.ttls[purpose]
}

func generateSecret() ([]byte, error) {
	secret := make([]byte, generatedSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Wrap(err, "generate token secret")
	}

	return secret, nil
}
