package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateSubscriptionQR generates a QR code that subscribes the scanner to a profile
	GenerateSubscriptionQR(profileID uuid.UUID) ([]byte, error)

	// ParseSubscriptionQR parses QR code data and returns the profile ID
	ParseSubscriptionQR(qrData string) (uuid.UUID, error)
}
