package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "suiteprop/internal/delivery/context"
	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/domain/service"
	"suiteprop/internal/errors"
	"suiteprop/internal/usecase"
	"suiteprop/internal/util"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	directory usecase.DirectoryUsecase
	portal    usecase.PortalUsecase
	qrcodes   service.QRCodeService
	exporter  service.BillExporter
	logger    *slog.Logger
	now       func() time.Time
}

// NewReportService is the constructor for reportService.
func NewReportService(
	directory usecase.DirectoryUsecase,
	portal usecase.PortalUsecase,
	qrcodes service.QRCodeService,
	exporter service.BillExporter,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		directory: directory,
		portal:    portal,
		qrcodes:   qrcodes,
		exporter:  exporter,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *reportService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) LeaseQRCode(ctx context.Context, session entity.Session) ([]byte, error) {
	lease, err := srv.directory.LeaseForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, errors.WithStack(domainerrors.ErrLeaseNotFound)
	}

	png, err := srv.qrcodes.GenerateLeaseQR(lease)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render lease QR code")
	}

	return png, nil
}

func (srv *reportService) ExportBills(ctx context.Context, session entity.Session, filter usecase.BillFilter) (*usecase.ExportFile, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	bills, err := srv.portal.ListBills(ctx, session, filter)
	if err != nil {
		return nil, err
	}

	content, err := srv.exporter.ExportBills(ctx, bills)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export bills")
	}

	file := &usecase.ExportFile{
		Name:        "bills-" + srv.now().Format("20060102") + "." + srv.exporter.FileExtension(),
		ContentType: srv.exporter.ContentType(),
		Content:     content,
	}

	srv.getLogger(ctx).InfoContext(ctx, "Bills exported",
		slog.Int("rows", len(bills)),
		slog.String("size", util.FormatBytes(int64(len(content)))),
	)

	return file, nil
}
