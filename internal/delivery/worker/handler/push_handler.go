package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"zerowaste/config"
	deliverycontext "zerowaste/internal/delivery/context"
	"zerowaste/internal/domain/constants"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/infra/pubsub"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying booking events
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token, and local runs skip the check
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks the broker to redeliver; any other answer acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse booking event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := ExtractRequestID(ctx, pushMsg.Message.Attributes, &event)
	reqLogger := h.logger.With(slog.String(constants.AttrRequestID, requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := ProcessEvent(ctx, h.notificationUC, &event); err != nil {
		if usecase.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		// Redelivering a poison message would never succeed
		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// ProcessEvent hands one booking event to the notification use case and logs the outcome.
// It is shared by the push endpoint and the RabbitMQ consumer.
func ProcessEvent(ctx context.Context, notificationUC usecase.NotificationUsecase, event *service.BookingEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default())

	logger.Info("[Worker] Processing booking event",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.String("booking_id", event.BookingID),
	)

	if err := notificationUC.HandleBookingEvent(ctx, event); err != nil {
		logger.Error("[Worker] Failed to process booking event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", usecase.IsRetryable(err)),
		)

		return err
	}

	logger.Info("[Worker] Booking event processed", slog.String("event_id", event.EventID))

	return nil
}

// ExtractRequestID picks the request id for tracing.
// Priority: message attributes > event field > existing context > new UUID
func ExtractRequestID(ctx context.Context, attributes map[string]string, event *service.BookingEvent) string {
	if requestID, ok := attributes[constants.AttrRequestID]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
