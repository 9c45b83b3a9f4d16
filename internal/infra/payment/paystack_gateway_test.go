package payment

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"zerowaste/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *paystackGateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Paystack: &config.PaystackConfig{BaseURL: srv.URL + "/", SecretKey: "sk_test"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gw, ok := NewPaystackGateway(GatewayParams{Config: cfg, Logger: logger}).(*paystackGateway)
	require.True(t, ok)

	return gw
}

func TestVerify_Success(t *testing.T) {
	var gotAuth, gotPath string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{
			"status":"success","reference":"ref-1","amount":2000,"currency":"NGN",
			"metadata":{"booking_id":"4b1e3c4a-1111-4222-8333-944455556666"}}}`))
	})

	result, err := gw.Verify(context.Background(), "ref-1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk_test", gotAuth)
	assert.Equal(t, "/transaction/verify/ref-1", gotPath)
	assert.True(t, result.Success)
	assert.Equal(t, int64(2000), result.Amount)
	assert.Equal(t, "NGN", result.Currency)
	assert.Equal(t, "4b1e3c4a-1111-4222-8333-944455556666", result.OrderRef)
}

func TestVerify_StringMetadata(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"success","reference":"ref-2","amount":1000,
			"metadata":"{\"booking_id\":\"b-42\"}"}}`))
	})

	result, err := gw.Verify(context.Background(), "ref-2")
	require.NoError(t, err)
	assert.Equal(t, "b-42", result.OrderRef)
}

func TestVerify_FallsBackToReference(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"success","amount":1000,"metadata":""}}`))
	})

	result, err := gw.Verify(context.Background(), "b-7")
	require.NoError(t, err)
	assert.Equal(t, "b-7", result.OrderRef)
	assert.Equal(t, "b-7", result.Reference)
}

func TestVerify_NotSuccessful(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"abandoned","reference":"ref-3","amount":2000}}`))
	})

	result, err := gw.Verify(context.Background(), "ref-3")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "abandoned", result.Status)
}

func TestVerify_UnknownReference(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	})

	result, err := gw.Verify(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestVerify_GatewayOutage(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := gw.Verify(context.Background(), "ref-4")
	assert.Error(t, err)
}

func TestVerify_MalformedBody(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := gw.Verify(context.Background(), "ref-5")
	assert.Error(t, err)
}
