// Package qrcode renders lease share codes.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"suiteprop/internal/domain/entity"
	"suiteprop/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	leaseQRType     = "lease"
	defaultSize     = 256
	minSize         = 64
	maxSize         = 2048
	defaultECCLevel = qrcode.Medium
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance. Sizes outside
// [64, 2048] fall back to 256 pixels.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size < minSize || size > maxSize {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return defaultECCLevel
	}
}

// GenerateLeaseQR encodes the lease and unit ids as JSON in a PNG QR code.
func (s *qrcodeService) GenerateLeaseQR(lease *entity.Lease) ([]byte, error) {
	if lease == nil || lease.ID == "" {
		return nil, fmt.Errorf("lease id is required")
	}

	jsonData, err := json.Marshal(service.LeaseQRData{
		LeaseID: lease.ID,
		UnitID:  lease.UnitID,
		Type:    leaseQRType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseLeaseQR parses the scanned text of a lease QR code.
func (s *qrcodeService) ParseLeaseQR(qrData string) (*service.LeaseQRData, error) {
	var data service.LeaseQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != leaseQRType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.LeaseID == "" {
		return nil, fmt.Errorf("QR code has no lease id")
	}

	return &data, nil
}
