package auth

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"zerowaste/config"
	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.TokenConfig {
	return &config.TokenConfig{
		Algorithm: "HS256",
		AccessTTL: 8 * 24 * time.Hour,
		VerifyTTL: 8 * 24 * time.Hour,
		ResetTTL:  10 * time.Minute,
	}
}

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func newTestTokenService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := NewJWTServiceWithClock(testTokenConfig(), []byte("test_secret_key_very_long_for_testing"), clock.Now)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, &fakeClock{current: time.Now()})

	for _, purpose := range []entity.TokenPurpose{entity.PurposeAccess, entity.PurposeVerify, entity.PurposeReset} {
		t.Run(purpose.String(), func(t *testing.T) {
			subject := uuid.New()
			token, err := svc.Issue(subject, purpose)
			require.NoError(t, err)

			got, err := svc.Verify(token, purpose)
			require.NoError(t, err)
			assert.Equal(t, subject, got)

			// An empty expectation skips the purpose check.
			got, err = svc.Verify(token, "")
			require.NoError(t, err)
			assert.Equal(t, subject, got)
		})
	}
}

func TestJWTService_PurposeMismatch(t *testing.T) {
	svc := newTestTokenService(t, &fakeClock{current: time.Now()})

	resetToken, err := svc.Issue(uuid.New(), entity.PurposeReset)
	require.NoError(t, err)

	_, err = svc.Verify(resetToken, entity.PurposeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenPurposeMismatch)

	verifyToken, err := svc.Issue(uuid.New(), entity.PurposeVerify)
	require.NoError(t, err)

	_, err = svc.Verify(verifyToken, entity.PurposeReset)
	assert.ErrorIs(t, err, domainerrors.ErrTokenPurposeMismatch)
}

func TestJWTService_ResetTokenExpiresAfterTenMinutes(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokenService(t, clock)

	subject := uuid.New()
	token, err := svc.Issue(subject, entity.PurposeReset)
	require.NoError(t, err)

	clock.current = clock.current.Add(9 * time.Minute)
	got, err := svc.Verify(token, entity.PurposeReset)
	require.NoError(t, err)
	assert.Equal(t, subject, got)

	clock.current = clock.current.Add(2 * time.Minute)
	_, err = svc.Verify(token, entity.PurposeReset)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	svc := newTestTokenService(t, clock)

	valid, err := svc.Issue(uuid.New(), entity.PurposeAccess)
	require.NoError(t, err)

	other, err := NewJWTServiceWithClock(testTokenConfig(), []byte("another_secret_key_also_long_enough"), clock.Now)
	require.NoError(t, err)
	foreign, err := other.Issue(uuid.New(), entity.PurposeAccess)
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":     uuid.NewString(),
		"purpose": "access",
		"exp":     clock.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "clearly-not-a-jwt-token-format",
		"empty":          "",
		"foreign secret": foreign,
		"tampered":       tampered,
		"alg none":       noneToken,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token, entity.PurposeAccess)
			assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		})
	}
}

func TestJWTService_RejectsUnknownPurposeAndSubject(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	svc := newTestTokenService(t, clock)

	sign := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
		require.NoError(t, err)

		return token
	}

	exp := clock.Now().Add(time.Hour).Unix()

	_, err := svc.Verify(sign(jwt.MapClaims{"sub": uuid.NewString(), "purpose": "refresh", "exp": exp}), "")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	_, err = svc.Verify(sign(jwt.MapClaims{"sub": "alice@example.com", "purpose": "access", "exp": exp}), entity.PurposeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	_, err = svc.Verify(sign(jwt.MapClaims{"sub": uuid.NewString(), "purpose": "access"}), entity.PurposeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_TTL(t *testing.T) {
	svc := newTestTokenService(t, &fakeClock{current: time.Now()})

	assert.Equal(t, 8*24*time.Hour, svc.TTL(entity.PurposeAccess))
	assert.Equal(t, 8*24*time.Hour, svc.TTL(entity.PurposeVerify))
	assert.Equal(t, 10*time.Minute, svc.TTL(entity.PurposeReset))

	_, err := svc.Issue(uuid.New(), entity.TokenPurpose("refresh"))
	assert.Error(t, err)
}

func TestNewJWTService_GeneratesSecretWhenMissing(t *testing.T) {
	cfg := &config.Config{Token: testTokenConfig()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewJWTService(JWTServiceParams{Config: cfg, Logger: logger})
	require.NoError(t, err)

	impl := svc.(*jwtService)
	assert.Len(t, impl.secret, generatedSecretSize)

	token, err := svc.Issue(uuid.New(), entity.PurposeAccess)
	require.NoError(t, err)
	_, err = svc.Verify(token, entity.PurposeAccess)
	assert.NoError(t, err)
}

func TestNewJWTService_RejectsNonHMACAlgorithm(t *testing.T) {
	cfg := testTokenConfig()
	cfg.Algorithm = "RS256"

	_, err := NewJWTServiceWithClock(cfg, []byte("secret"), time.Now)
	assert.Error(t, err)
}
