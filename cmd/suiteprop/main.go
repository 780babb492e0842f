package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"suiteprop/config"
	"suiteprop/internal/delivery"
	"suiteprop/internal/delivery/api"
	apimiddleware "suiteprop/internal/delivery/api/middleware"
	"suiteprop/internal/delivery/api/router/handler"
	"suiteprop/internal/domain/repository"
	"suiteprop/internal/domain/service"
	"suiteprop/internal/infra/auth"
	logs "suiteprop/internal/infra/log"
	"suiteprop/internal/infra/persistence"
	"suiteprop/internal/infra/pubsub"
	"suiteprop/internal/infra/qrcode"
	"suiteprop/internal/infra/report"
	"suiteprop/internal/usecase"
	"suiteprop/internal/usecase/impl"
	"suiteprop/internal/util"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositoryFactory,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			report.NewXLSXExporter,
			newQRCodeService,
			newRandomSource,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newRandomSource seeds the placeholder generator for revenue months without data.
func newRandomSource() usecase.RandomSource {
	seed := uint64(time.Now().UnixNano())

	return rand.New(rand.NewPCG(seed, seed>>32))
}

// newPortalService reads the dashboard chart length from config.
func newPortalService(
	cfg *config.Config,
	directory usecase.DirectoryUsecase,
	revenue usecase.RevenueUsecase,
	repos repository.RepositoryFactory,
	logger *slog.Logger,
) usecase.PortalUsecase {
	months := usecase.DefaultRevenueMonths
	if cfg.Revenue != nil && cfg.Revenue.Months > 0 {
		months = cfg.Revenue.Months
	}

	return impl.NewPortalService(directory, revenue, repos, months, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryService,
			impl.NewRevenueService,
			impl.NewSessionService,
			impl.NewMaintenanceService,
			impl.NewReportService,
			newPortalService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDirectoryHandler,
			handler.NewAdminHandler,
			handler.NewResidentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Logger.Info("Session settings",
		slog.String("access_token_ttl", util.FormatDuration(params.Config.Auth.AccessTokenTTL)),
		slog.String("storage", params.Config.Storage.Driver),
	)

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
