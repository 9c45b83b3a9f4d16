// Package payment verifies transactions against the Paystack API.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"zerowaste/config"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/errors"

	"go.uber.org/fx"
)

const defaultTimeout = 15 * time.Second

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string          `json:"status"`
		Reference string          `json:"reference"`
		Amount    int64           `json:"amount"`
		Currency  string          `json:"currency"`
		Metadata  json.RawMessage `json:"metadata"`
	} `json:"data"`
}

type transactionMetadata struct {
	BookingID string `json:"booking_id"`
}

// GatewayParams holds dependencies for the Paystack gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type paystackGateway struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewPaystackGateway creates a PaymentGateway backed by Paystack
func NewPaystackGateway(params GatewayParams) service.PaymentGateway {
	cfg := params.Config.Paystack
	if cfg == nil {
		cfg = &config.PaystackConfig{}
	}
	if cfg.SecretKey == "" {
		params.Logger.Warn("Paystack secret key is not configured, payment verification will be rejected by the gateway")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &paystackGateway{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}
}

func (g *paystackGateway) Verify(ctx context.Context, reference string) (*service.PaymentVerification, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", g.baseURL, url.PathEscape(reference))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "paystack verify request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "read paystack response")
	}

	// Paystack answers unknown references with 400 and status=false; that is a verdict, not an outage.
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, errors.Errorf("paystack returned status %d", resp.StatusCode)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrapf(err, "decode paystack response (status %d)", resp.StatusCode)
	}

	result := &service.PaymentVerification{
		Success:   parsed.Status && parsed.Data.Status == "success",
		Reference: parsed.Data.Reference,
		OrderRef:  reference,
		Amount:    parsed.Data.Amount,
		Currency:  parsed.Data.Currency,
		Status:    parsed.Data.Status,
	}
	if result.Reference == "" {
		result.Reference = reference
	}
	if bookingID := metadataBookingID(parsed.Data.Metadata); bookingID != "" {
		result.OrderRef = bookingID
	}

	g.logger.DebugContext(ctx, "Paystack verification result",
		slog.String("reference", reference),
		slog.String("status", result.Status),
		slog.Bool("success", result.Success),
	)

	return result, nil
}

// metadataBookingID extracts booking_id; Paystack sends metadata as an object or a JSON string.
func metadataBookingID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var meta transactionMetadata
	if err := json.Unmarshal(raw, &meta); err == nil {
		return meta.BookingID
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return ""
	}
	if err := json.Unmarshal([]byte(encoded), &meta); err != nil {
		return ""
	}

	return meta.BookingID
}
