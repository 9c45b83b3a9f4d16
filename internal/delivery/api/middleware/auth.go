package middleware

import (
	"strings"

	"zerowaste/internal/delivery/api/response"
	deliverycontext "zerowaste/internal/delivery/context"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AuthMiddleware resolves bearer access tokens to accounts.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{accountUC: params.AccountUC}
}

// Authenticate requires a valid access token and stores the caller's account on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		// The scheme is case-insensitive.
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}
		token := strings.TrimSpace(authHeader[len(bearerPrefix):])

		account, err := m.accountUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetAccount(c, account)

		return next(c)
	}
}

// RequireStaff rejects callers without the staff flag.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, ok := deliverycontext.GetAccount(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrAuthentication)
		}

		if !account.IsStaff {
			return response.HandleAppError(c, domainerrors.ErrForbidden.WithDetails("staff access required"))
		}

		return next(c)
	}
}

// GetActor returns the authenticated caller set by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return usecase.Actor{}, false
	}

	return usecase.ActorFromAccount(account), true
}
