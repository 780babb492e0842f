package report

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"suiteprop/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestExporter() *xlsxExporter {
	return NewXLSXExporter(slog.New(slog.NewTextHandler(io.Discard, nil))).(*xlsxExporter)
}

func readRows(t *testing.T, content []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{billSheetName}, f.GetSheetList())

	rows, err := f.GetRows(billSheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	return rows
}

func TestXLSXExporter_ExportBills(t *testing.T) {
	exporter := newTestExporter()
	bills := []*entity.EnrichedBill{
		{
			Bill: &entity.Bill{
				ID: "bill-1", Description: "January 2024 Rent", Type: entity.BillTypeRent, Status: entity.BillStatusPaid,
				Amount: 1800, DueDate: entity.MustParseDate("2024-01-01"), CreatedAt: entity.MustParseDate("2023-12-15"),
			},
			Unit:     &entity.Unit{ID: "unit-1", Address: "123 Main Street"},
			Resident: &entity.User{ID: "resident-1", Name: "John Doe"},
		},
		{
			Bill: &entity.Bill{
				ID: "bill-x", Description: "Orphan", Type: entity.BillTypeOther, Status: entity.BillStatusOverdue,
				Amount: 42.5, DueDate: entity.MustParseDate("2024-02-01"), CreatedAt: entity.MustParseDate("2024-01-20"),
			},
		},
	}

	content, err := exporter.ExportBills(context.Background(), bills)
	require.NoError(t, err)

	rows := readRows(t, content)
	require.Len(t, rows, 3)
	assert.Equal(t, BillExportHeader, rows[0])
	assert.Equal(t, []string{"bill-1", "January 2024 Rent", "rent", "paid", "1800", "2024-01-01", "2023-12-15", "123 Main Street", "John Doe"}, rows[1])
	assert.Equal(t, "bill-x", rows[2][0])
	assert.Equal(t, "42.5", rows[2][4])
	assert.Len(t, rows[2], 7)
}

func TestXLSXExporter_EmptyExportHasHeader(t *testing.T) {
	content, err := newTestExporter().ExportBills(context.Background(), nil)
	require.NoError(t, err)

	rows := readRows(t, content)
	require.Len(t, rows, 1)
	assert.Equal(t, BillExportHeader, rows[0])
}

func TestXLSXExporter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExporter().ExportBills(ctx, []*entity.EnrichedBill{{Bill: &entity.Bill{ID: "bill-1"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestXLSXExporter_Metadata(t *testing.T) {
	exporter := newTestExporter()

	assert.Equal(t, "xlsx", exporter.FileExtension())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exporter.ContentType())
}
