package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code a collector scans on pickup.
	GeneratePickupQR(bookingID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the booking ID
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
