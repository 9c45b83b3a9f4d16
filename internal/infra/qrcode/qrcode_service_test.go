package qrcode

import (
	"encoding/json"
	"testing"

	"zerowaste/config"
	domainerrors "zerowaste/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "h"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeServiceWithOptions(256, tt.errorCorrectionLevel)
			png, err := svc.GeneratePickupQR(uuid.New())
			require.NoError(t, err)
			assertPNG(t, png)
		})
	}
}

func TestNewQRCodeService_FromConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	png, err := svc.GeneratePickupQR(uuid.New())
	require.NoError(t, err)
	assertPNG(t, png)

	svc = NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "L"}})
	small, err := svc.GeneratePickupQR(uuid.New())
	require.NoError(t, err)
	assertPNG(t, small)
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	svc := NewQRCodeServiceWithOptions(256, "M")
	bookingID := uuid.New()

	payload, err := json.Marshal(PickupData{BookingID: bookingID.String(), Type: "pickup"})
	require.NoError(t, err)

	got, err := svc.ParsePickupQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, bookingID, got)
}

func TestQRCodeService_ParsePickupQR_Invalid(t *testing.T) {
	svc := NewQRCodeServiceWithOptions(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", "booking"},
		{"Wrong type", `{"booking_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{"Bad UUID", `{"booking_id":"nope","type":"pickup"}`},
		{"Empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ParsePickupQR(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
