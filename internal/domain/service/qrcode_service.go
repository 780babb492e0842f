package service

import "suiteprop/internal/domain/entity"

// LeaseQRData is the payload encoded in a lease share code.
type LeaseQRData struct {
	LeaseID string `json:"lease_id"`
	UnitID  string `json:"unit_id"`
	Type    string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateLeaseQR renders a PNG QR code that identifies the lease.
	GenerateLeaseQR(lease *entity.Lease) ([]byte, error)

	// ParseLeaseQR decodes the text content of a lease QR code.
	ParseLeaseQR(qrData string) (*LeaseQRData, error)
}
