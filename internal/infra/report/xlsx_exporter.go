// Package report renders directory data into downloadable files.
package report

import (
	"context"
	"log/slog"

	"suiteprop/internal/domain/entity"
	"suiteprop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	billSheetName   = "Bills"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	amountFormat    = "#,##0.00"
)

// BillExportHeader is the first row of a bill export.
var BillExportHeader = []string{
	"Bill ID",
	"Description",
	"Type",
	"Status",
	"Amount",
	"Due Date",
	"Created",
	"Unit",
	"Resident",
}

var billColumnWidths = []float64{12, 30, 14, 12, 14, 14, 14, 24, 22}

type xlsxExporter struct {
	logger *slog.Logger
}

// NewXLSXExporter returns a BillExporter producing a single-sheet workbook.
func NewXLSXExporter(logger *slog.Logger) service.BillExporter {
	return &xlsxExporter{logger: logger}
}

func (e *xlsxExporter) ContentType() string { return xlsxContentType }

func (e *xlsxExporter) FileExtension() string { return "xlsx" }

// ExportBills writes one row per bill. Missing units or residents leave the cell blank.
func (e *xlsxExporter) ExportBills(ctx context.Context, bills []*entity.EnrichedBill) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.WarnContext(ctx, "Failed to close workbook", slog.Any("error", err))
		}
	}()

	index, err := f.NewSheet(billSheetName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to drop default sheet")
	}
	f.SetActiveSheet(index)

	if err := e.writeHeader(f); err != nil {
		return nil, err
	}

	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr(amountFormat)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create amount style")
	}

	for i, bill := range bills {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := f.SetSheetRow(billSheetName, cell, ptr(billRow(bill))); err != nil {
			return nil, errors.Wrapf(err, "failed to write bill %s", bill.ID)
		}

		amountCell, err := excelize.CoordinatesToCellName(5, row)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := f.SetCellStyle(billSheetName, amountCell, amountCell, amountStyle); err != nil {
			return nil, errors.Wrap(err, "failed to style amount")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}

func (e *xlsxExporter) writeHeader(f *excelize.File) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}

	header := make([]any, len(BillExportHeader))
	for i, title := range BillExportHeader {
		header[i] = title
	}
	if err := f.SetSheetRow(billSheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	last, err := excelize.CoordinatesToCellName(len(BillExportHeader), 1)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := f.SetCellStyle(billSheetName, "A1", last, headerStyle); err != nil {
		return errors.Wrap(err, "failed to style header")
	}

	for i, width := range billColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetColWidth(billSheetName, col, col, width); err != nil {
			return errors.Wrap(err, "failed to set column width")
		}
	}

	return nil
}

func billRow(bill *entity.EnrichedBill) []any {
	var unit, resident string
	if bill.Unit != nil {
		unit = bill.Unit.Address
	}
	if bill.Resident != nil {
		resident = bill.Resident.Name
	}

	return []any{
		bill.ID,
		bill.Description,
		string(bill.Type),
		string(bill.Status),
		bill.Amount,
		bill.DueDate.String(),
		bill.CreatedAt.String(),
		unit,
		resident,
	}
}

func ptr[T any](v T) *T {
	return &v
}
