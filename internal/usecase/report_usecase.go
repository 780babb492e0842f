package usecase

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// ReportUsecase produces downloadable artifacts.
type ReportUsecase interface {
	// LeaseQRCode renders the share code of the resident's lease as PNG.
	LeaseQRCode(ctx context.Context, session entity.Session) ([]byte, error)

	// ExportBills renders the filtered bill list as a spreadsheet. Admin only.
	ExportBills(ctx context.Context, session entity.Session, filter BillFilter) (*ExportFile, error)
}

// ExportFile is a generated download.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
