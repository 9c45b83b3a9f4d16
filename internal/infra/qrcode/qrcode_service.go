package qrcode

import (
	"encoding/json"
	"strings"

	"zerowaste/config"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	pickupType  = "pickup"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupData is the payload encoded in a booking's pickup QR code
type PickupData struct {
	BookingID string `json:"booking_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a QR code service from configuration
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeServiceWithOptions(defaultSize, "M")
	}

	return NewQRCodeServiceWithOptions(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeServiceWithOptions creates a QR code service with an explicit size and recovery level
func NewQRCodeServiceWithOptions(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR generates the PNG a collector scans when picking up a booking
func (s *qrcodeService) GeneratePickupQR(bookingID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(PickupData{
		BookingID: bookingID.String(),
		Type:      pickupType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR parses scanned QR code data and returns the booking ID
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	var data PickupData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WrapMessage("malformed QR code data")
	}

	if data.Type != pickupType {
		return uuid.Nil, domainerrors.ErrInvalidInput.WrapMessage("invalid QR code type: " + data.Type)
	}

	bookingID, err := uuid.Parse(data.BookingID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WrapMessage("invalid booking ID in QR code")
	}

	return bookingID, nil
}
