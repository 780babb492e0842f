package service

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// BillExporter renders bills into a downloadable spreadsheet.
type BillExporter interface {
	// ExportBills returns the workbook bytes. Row order follows bills.
	ExportBills(ctx context.Context, bills []*entity.EnrichedBill) ([]byte, error)

	// ContentType is the MIME type of the produced file.
	ContentType() string

	// FileExtension is the extension used for download filenames, without the dot.
	FileExtension() string
}
