// Package qrcode renders and parses the QR codes that subscribe a scanner to a profile.
package qrcode

import (
	"encoding/json"
	"strings"

	"joinme/config"
	"joinme/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	// PayloadType marks a QR payload as a profile subscription.
	PayloadType = "profile_subscription"

	defaultSize = 256
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// Payload is the JSON document encoded in a subscription QR code.
type Payload struct {
	ProfileID string `json:"profile_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := "medium"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:  size,
		level: parseRecoveryLevel(level),
	}
}

// parseRecoveryLevel accepts either the single-letter QR level or its name.
func parseRecoveryLevel(value string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateSubscriptionQR renders the subscription payload of a profile as PNG.
func (s *qrcodeService) GenerateSubscriptionQR(profileID uuid.UUID) ([]byte, error) {
	content, err := json.Marshal(Payload{ProfileID: profileID.String(), Type: PayloadType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR payload")
	}

	png, err := qrcode.Encode(string(content), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return png, nil
}

// ParseSubscriptionQR validates a scanned payload and returns its profile ID.
func (s *qrcodeService) ParseSubscriptionQR(qrData string) (uuid.UUID, error) {
	var payload Payload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, errors.Wrap(err, "QR payload is not JSON")
	}

	if payload.Type != PayloadType {
		return uuid.Nil, errors.Errorf("unexpected QR payload type %q", payload.Type)
	}

	profileID, err := uuid.Parse(payload.ProfileID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "QR payload carries a malformed profile id")
	}

	return profileID, nil
}
