package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zerowaste/config"
	apimiddleware "zerowaste/internal/delivery/api/middleware"
	"zerowaste/internal/delivery/api/router/handler"
	"zerowaste/internal/delivery/api/validator"
	"zerowaste/internal/delivery/middleware"
	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	domainservice "zerowaste/internal/domain/service"
	"zerowaste/internal/errors"
	mockservice "zerowaste/internal/mocks/service"
	mockusecase "zerowaste/internal/mocks/usecase"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "access-token"

type testAPI struct {
	echo      *echo.Echo
	accountUC *mockusecase.MockAccountUsecase
	bookingUC *mockusecase.MockBookingUsecase
	reviewUC  *mockusecase.MockReviewUsecase
	paymentUC *mockusecase.MockPaymentUsecase
	adminUC   *mockusecase.MockAdminUsecase
	limiter   *mockservice.MockRateLimiter
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &testAPI{
		echo:      echo.New(),
		accountUC: mockusecase.NewMockAccountUsecase(t),
		bookingUC: mockusecase.NewMockBookingUsecase(t),
		reviewUC:  mockusecase.NewMockReviewUsecase(t),
		paymentUC: mockusecase.NewMockPaymentUsecase(t),
		adminUC:   mockusecase.NewMockAdminUsecase(t),
		limiter:   mockservice.NewMockRateLimiter(t),
	}

	api.echo.Validator = validator.New()
	api.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	api.echo.Use(middleware.NewRequestIDMiddleware(logger).Process)

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AccountUC: api.accountUC, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AccountUC: api.accountUC}),
		BookingHandler: handler.NewBookingHandler(handler.BookingHandlerParams{BookingUC: api.bookingUC}),
		ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: api.reviewUC}),
		PaymentHandler: handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: api.paymentUC}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: api.adminUC}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AccountUC: api.accountUC}),
		RateLimitMiddleware: apimiddleware.NewRateLimitMiddleware(apimiddleware.RateLimitMiddlewareParams{
			Limiter: api.limiter,
			Logger:  logger,
		}),
		Config: &config.Config{},
	})
	r.RegisterRoutes(api.echo)

	return api
}

// signIn makes testToken resolve to account.
func (api *testAPI) signIn(account *entity.Account) {
	api.accountUC.EXPECT().Authenticate(mock.Anything, testToken).Return(account, nil).Maybe()
}

func (api *testAPI) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Page      *struct {
			Offset int `json:"offset"`
			Limit  int `json:"limit"`
			Count  int `json:"count"`
		} `json:"page"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func newAccount(staff bool) *entity.Account {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	return &entity.Account{
		ID:          uuid.New(),
		Email:       "alice@example.com",
		DisplayName: "alice",
		IsActive:    true,
		IsStaff:     staff,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newBooking(owner uuid.UUID) *entity.Booking {
	return &entity.Booking{
		ID:          uuid.New(),
		AccountID:   owner,
		FirstName:   "Alice",
		LastName:    "Doe",
		Phone:       "+2348012345678",
		Address:     "12 Lane",
		PickupDate:  time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
		WasteType:   entity.WastePlastic,
		Amount:      entity.WastePlastic.Amount(),
		OrderStatus: entity.OrderPending,
	}
}

func TestHealthCheck(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		api := newTestAPI(t)
		account := newAccount(false)
		account.IsActive = false
		account.PasswordHash = "$2a$04$secret"

		api.accountUC.EXPECT().
			Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
				return in.Email == "Alice@Example.com" && in.DisplayName == "alice"
			})).
			Return(account, nil).
			Once()

		rec := api.do(http.MethodPost, "/api/v1/auth/register",
			`{"display_name":"alice","email":"Alice@Example.com","password":"correct-horse"}`, false)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")

		var body handler.AccountResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, account.ID, body.ID)
		assert.False(t, body.IsActive)
		assert.Equal(t, "customer", body.Role)
	})

	t.Run("validation failure never reaches the use case", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/v1/auth/register",
			`{"display_name":"al","email":"not-an-email","password":"short"}`, false)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email must be a valid email address")
		assert.Contains(t, env.Error.Details, "display_name must be at least 3")
	})

	t.Run("duplicate email", func(t *testing.T) {
		api := newTestAPI(t)
		api.accountUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateEmail).Once()

		rec := api.do(http.MethodPost, "/api/v1/auth/register",
			`{"display_name":"alice","email":"alice@example.com","password":"correct-horse"}`, false)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_EMAIL", decode(t, rec).Error.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/v1/auth/register", `{"email":`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		api := newTestAPI(t)
		account := newAccount(false)
		api.limiter.EXPECT().Allow(mock.Anything, "login:192.0.2.1").
			Return(domainservice.RateDecision{Allowed: true, Limit: 5, Remaining: 4}, nil).Once()
		api.accountUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "pw"}).
			Return(&usecase.LoginOutput{
				AccessToken: "jwt",
				TokenType:   "Bearer",
				ExpiresIn:   8 * 24 * time.Hour,
				Account:     account,
			}, nil).Once()

		rec := api.do(http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com","password":"pw"}`, false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "5", rec.Header().Get(apimiddleware.HeaderRateLimitLimit))
		assert.Equal(t, "4", rec.Header().Get(apimiddleware.HeaderRateLimitRemaining))

		var body handler.LoginResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, "jwt", body.AccessToken)
		assert.Equal(t, int64(8*24*60*60), body.ExpiresIn)
	})

	t.Run("rate limited", func(t *testing.T) {
		api := newTestAPI(t)
		api.limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(domainservice.RateDecision{Allowed: false, Limit: 5, RetryAfter: 1500 * time.Millisecond}, nil).Once()

		rec := api.do(http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com","password":"pw"}`, false)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(echo.HeaderRetryAfter))
		assert.Equal(t, "RATE_LIMITED", decode(t, rec).Error.Code)
	})

	t.Run("limiter outage lets the request through", func(t *testing.T) {
		api := newTestAPI(t)
		api.limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(domainservice.RateDecision{}, errors.New("redis down")).Once()
		api.accountUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAuthentication).Once()

		rec := api.do(http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com","password":"pw"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTHENTICATION_FAILED", decode(t, rec).Error.Code)
	})
}

func TestPasswordRecovery_SameAnswerForUnknownEmail(t *testing.T) {
	api := newTestAPI(t)
	api.limiter.EXPECT().Allow(mock.Anything, mock.Anything).
		Return(domainservice.RateDecision{Allowed: true}, nil).Twice()
	api.accountUC.EXPECT().RequestPasswordReset(mock.Anything, mock.Anything).Return(nil).Twice()

	known := api.do(http.MethodPost, "/api/v1/auth/password-recovery", `{"email":"alice@example.com"}`, false)
	unknown := api.do(http.MethodPost, "/api/v1/auth/password-recovery", `{"email":"nobody@example.com"}`, false)

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, http.StatusOK, unknown.Code)
	assert.JSONEq(t, string(decode(t, known).Data), string(decode(t, unknown).Data))
}

func TestAuthentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/v1/users/me", "", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		api := newTestAPI(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		rec := httptest.NewRecorder()

		api.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN_FORMAT", decode(t, rec).Error.Code)
	})

	t.Run("lower-case scheme", func(t *testing.T) {
		api := newTestAPI(t)
		account := newAccount(false)
		api.signIn(account)
		api.accountUC.EXPECT().GetProfile(mock.Anything, usecase.ActorFromAccount(account)).Return(account, nil).Once()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "bearer "+testToken)
		rec := httptest.NewRecorder()

		api.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		api := newTestAPI(t)
		api.accountUC.EXPECT().Authenticate(mock.Anything, testToken).Return(nil, domainerrors.ErrTokenExpired).Once()

		rec := api.do(http.MethodGet, "/api/v1/bookings", "", true)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "TOKEN_EXPIRED", decode(t, rec).Error.Code)
	})
}

func TestBookings(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		api := newTestAPI(t)
		account := newAccount(false)
		api.signIn(account)
		booking := newBooking(account.ID)

		api.bookingUC.EXPECT().
			Create(mock.Anything, usecase.ActorFromAccount(account), &usecase.BookingInput{
				FirstName:  "Alice",
				LastName:   "Doe",
				Phone:      "+2348012345678",
				Address:    "12 Lane",
				PickupDate: time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
				WasteType:  "Plastic",
			}).
			Return(booking, nil).
			Once()

		rec := api.do(http.MethodPost, "/api/v1/bookings", `{
			"first_name":"Alice","last_name":"Doe","phone":"+2348012345678",
			"address":"12 Lane","pickup_date":"2026-11-03","waste_type":"Plastic"}`, true)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body handler.BookingResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, "2026-11-03", body.PickupDate)
		assert.Equal(t, int64(2000), body.Amount)
		assert.Equal(t, "PENDING", body.OrderStatus)
		assert.False(t, body.PaymentStatus)
	})

	t.Run("bad pickup date", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))

		rec := api.do(http.MethodPost, "/api/v1/bookings", `{
			"first_name":"Alice","last_name":"Doe","phone":"+2348012345678",
			"address":"12 Lane","pickup_date":"03/11/2026","waste_type":"plastic"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))

		rec := api.do(http.MethodGet, "/api/v1/bookings/not-a-uuid", "", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))
		id := uuid.New()
		api.bookingUC.EXPECT().Get(mock.Anything, mock.Anything, id).Return(nil, domainerrors.ErrNotFound).Once()

		rec := api.do(http.MethodGet, "/api/v1/bookings/"+id.String(), "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("patch sends only present fields", func(t *testing.T) {
		api := newTestAPI(t)
		account := newAccount(false)
		api.signIn(account)
		booking := newBooking(account.ID)
		booking.WasteType = entity.WasteMedical
		booking.Amount = entity.WasteMedical.Amount()

		api.bookingUC.EXPECT().
			Update(mock.Anything, mock.Anything, booking.ID, mock.MatchedBy(func(p *usecase.BookingPatch) bool {
				return p.WasteType != nil && *p.WasteType == "medical" &&
					p.FirstName == nil && p.PickupDate == nil
			})).
			Return(booking, nil).
			Once()

		rec := api.do(http.MethodPatch, "/api/v1/bookings/"+booking.ID.String(), `{"waste_type":"medical"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		var body handler.BookingResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, int64(5000), body.Amount)
	})

	t.Run("invalid transition", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))
		id := uuid.New()
		api.bookingUC.EXPECT().AdvanceDeliveryStatus(mock.Anything, mock.Anything, id, "pending").
			Return(nil, domainerrors.ErrInvalidStatusTransition).Once()

		rec := api.do(http.MethodPost, "/api/v1/bookings/"+id.String()+"/status", `{"status":"pending"}`, true)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", decode(t, rec).Error.Code)
	})

	t.Run("pickup qr", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))
		id := uuid.New()
		png := []byte("\x89PNG\r\n\x1a\n")
		api.bookingUC.EXPECT().PickupQR(mock.Anything, mock.Anything, id).Return(png, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/bookings/"+id.String()+"/qr", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("unexpected failure is a generic 500", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))
		api.bookingUC.EXPECT().ListByOwner(mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset by peer")).Once()

		rec := api.do(http.MethodGet, "/api/v1/bookings", "", true)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
		assert.NotEmpty(t, env.Meta.RequestID)
	})
}

func TestReviews(t *testing.T) {
	t.Run("listing by user is public", func(t *testing.T) {
		api := newTestAPI(t)
		authorID := uuid.New()
		api.reviewUC.EXPECT().ListByAccount(mock.Anything, authorID).Return([]*entity.Review{
			{ID: uuid.New(), AccountID: authorID, ReviewerName: "alice", Rating: 5, Comment: "prompt pickup"},
		}, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/reviews/user/"+authorID.String(), "", false)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []handler.ReviewResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		require.Len(t, body, 1)
		assert.Equal(t, 5, body[0].Rating)
	})

	t.Run("rating out of range", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))

		rec := api.do(http.MethodPost, "/api/v1/reviews", `{"rating":6,"comment":"great"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})

	t.Run("delete someone else's review", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))
		id := uuid.New()
		api.reviewUC.EXPECT().Delete(mock.Anything, mock.Anything, id).Return(domainerrors.ErrForbidden).Once()

		rec := api.do(http.MethodDelete, "/api/v1/reviews/"+id.String(), "", true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPaymentVerify(t *testing.T) {
	t.Run("unsuccessful transaction is reported, not failed", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))
		api.paymentUC.EXPECT().VerifyTransaction(mock.Anything, "ref-123").
			Return(&usecase.PaymentResult{Success: false, Reference: "ref-123", Status: "abandoned"}, nil).Once()

		rec := api.do(http.MethodPost, "/api/v1/payments/verify/ref-123", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		var body handler.PaymentResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.False(t, body.Success)
		assert.Equal(t, "abandoned", body.Status)
		assert.Nil(t, body.Booking)
	})

	t.Run("gateway failure", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))
		api.paymentUC.EXPECT().VerifyTransaction(mock.Anything, "ref-123").
			Return(nil, domainerrors.ErrPaymentGateway.WrapMessage("paystack timeout")).Once()

		rec := api.do(http.MethodPost, "/api/v1/payments/verify/ref-123", "", true)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "PAYMENT_GATEWAY_ERROR", decode(t, rec).Error.Code)
	})
}

func TestAdmin(t *testing.T) {
	t.Run("non-staff is forbidden", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(false))

		rec := api.do(http.MethodGet, "/api/v1/admin/users", "", true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("list users", func(t *testing.T) {
		api := newTestAPI(t)
		staff := newAccount(true)
		api.signIn(staff)
		api.adminUC.EXPECT().ListAccounts(mock.Anything, usecase.ActorFromAccount(staff), 10, 2).
			Return([]*entity.Account{newAccount(false), newAccount(false)}, nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/admin/users?offset=10&limit=2", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Meta.Page)
		assert.Equal(t, 10, env.Meta.Page.Offset)
		assert.Equal(t, 2, env.Meta.Page.Count)
	})

	t.Run("limit above the cap", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(true))

		rec := api.do(http.MethodGet, "/api/v1/admin/users?limit=500", "", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("staff advance overrides ownership", func(t *testing.T) {
		api := newTestAPI(t)
		staff := newAccount(true)
		api.signIn(staff)
		booking := newBooking(uuid.New())
		booking.OrderStatus = entity.OrderInTransit

		api.bookingUC.EXPECT().
			AdvanceDeliveryStatus(mock.Anything, usecase.ActorFromAccount(staff).AsStaff(), booking.ID, "in_transit").
			Return(booking, nil).
			Once()

		rec := api.do(http.MethodPost, "/api/v1/admin/bookings/"+booking.ID.String()+"/status",
			`{"status":"in_transit"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("staff on the customer route keep owner checks", func(t *testing.T) {
		api := newTestAPI(t)
		staff := newAccount(true)
		api.signIn(staff)
		bookingID := uuid.New()

		api.bookingUC.EXPECT().
			AdvanceDeliveryStatus(mock.Anything, usecase.ActorFromAccount(staff), bookingID, "in_transit").
			Return(nil, domainerrors.ErrForbidden).
			Once()

		rec := api.do(http.MethodPost, "/api/v1/bookings/"+bookingID.String()+"/status",
			`{"status":"in_transit"}`, true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff pickup qr", func(t *testing.T) {
		api := newTestAPI(t)
		staff := newAccount(true)
		api.signIn(staff)
		bookingID := uuid.New()

		api.bookingUC.EXPECT().PickupQR(mock.Anything, usecase.ActorFromAccount(staff).AsStaff(), bookingID).
			Return([]byte("\x89PNG"), nil).Once()

		rec := api.do(http.MethodGet, "/api/v1/admin/bookings/"+bookingID.String()+"/qr", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("create user", func(t *testing.T) {
		api := newTestAPI(t)
		staff := newAccount(true)
		api.signIn(staff)
		created := newAccount(true)

		api.adminUC.EXPECT().
			CreateAccount(mock.Anything, usecase.ActorFromAccount(staff), mock.MatchedBy(func(in *usecase.AccountInput) bool {
				return in.Email == "collector@example.com" && in.Password == "Sup3rSecret!" && in.IsActive && in.IsStaff
			})).
			Return(created, nil).
			Once()

		rec := api.do(http.MethodPost, "/api/v1/admin/users", `{
			"display_name": "collector",
			"email": "collector@example.com",
			"password": "Sup3rSecret!",
			"is_active": true,
			"is_staff": true
		}`, true)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("create user validates the body", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(true))

		rec := api.do(http.MethodPost, "/api/v1/admin/users", `{"display_name":"x","email":"nope","password":"short"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})

	t.Run("update user flags", func(t *testing.T) {
		api := newTestAPI(t)
		staff := newAccount(true)
		api.signIn(staff)
		target := newAccount(false)
		target.IsActive = false

		api.adminUC.EXPECT().
			UpdateAccount(mock.Anything, usecase.ActorFromAccount(staff), target.ID, mock.MatchedBy(func(p *usecase.AccountPatch) bool {
				return p.IsActive != nil && !*p.IsActive && p.IsStaff == nil && p.DisplayName == nil
			})).
			Return(target, nil).
			Once()

		rec := api.do(http.MethodPut, "/api/v1/admin/users/"+target.ID.String(), `{"is_active":false}`, true)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body struct {
			IsActive bool `json:"is_active"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.False(t, body.IsActive)
	})

	t.Run("update user with a bad id", func(t *testing.T) {
		api := newTestAPI(t)
		api.signIn(newAccount(true))

		rec := api.do(http.MethodPut, "/api/v1/admin/users/42", `{"is_active":true}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})

	t.Run("staff review delete", func(t *testing.T) {
		api := newTestAPI(t)
		staff := newAccount(true)
		api.signIn(staff)
		reviewID := uuid.New()

		api.reviewUC.EXPECT().Delete(mock.Anything, usecase.ActorFromAccount(staff).AsStaff(), reviewID).
			Return(nil).Once()

		rec := api.do(http.MethodDelete, "/api/v1/admin/reviews/"+reviewID.String(), "", true)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/nothing-here", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
}
