package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"suiteprop/internal/domain/entity"
	"suiteprop/internal/domain/repository"
	"suiteprop/internal/errors"
	"suiteprop/internal/usecase"
)

const (
	placeholderRevenueMin  = 2000
	placeholderRevenueSpan = 2000
)

// revenueService implements the RevenueUsecase interface.
type revenueService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger

	// rngMu guards rng; sources such as *rand.Rand are not safe for concurrent use.
	rngMu sync.Mutex
	rng   usecase.RandomSource
}

// NewRevenueService is the constructor for revenueService.
func NewRevenueService(repos repository.RepositoryFactory, rng usecase.RandomSource, logger *slog.Logger) usecase.RevenueUsecase {
	return &revenueService{
		repos:  repos,
		rng:    rng,
		logger: logger,
	}
}

// MonthlyRentSeries sums paid rent bills by the month they are due. A month
// that has rent bills but none paid reports 0; a month with no rent bill at
// all is a placeholder.
func (srv *revenueService) MonthlyRentSeries(ctx context.Context, ref time.Time, monthCount int) ([]entity.RevenuePoint, error) {
	if monthCount <= 0 {
		monthCount = usecase.DefaultRevenueMonths
	}

	bills, err := srv.repos.NewBillRepository().List(ctx, entity.Scope{Admin: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bills for revenue")
	}

	totals := make(map[string]float64)
	for _, bill := range bills {
		if bill.Type != entity.BillTypeRent {
			continue
		}
		month := bill.DueDate.MonthKey()
		if bill.Status == entity.BillStatusPaid {
			totals[month] += bill.Amount
		} else if _, ok := totals[month]; !ok {
			totals[month] = 0
		}
	}

	series := make([]entity.RevenuePoint, 0, monthCount)
	placeholders := 0
	for _, month := range trailingMonths(ref, monthCount) {
		if revenue, ok := totals[month]; ok {
			series = append(series, entity.RevenuePoint{Month: month, Revenue: revenue})

			continue
		}

		placeholders++
		series = append(series, entity.RevenuePoint{
			Month:       month,
			Revenue:     float64(placeholderRevenueMin + srv.placeholderOffset()),
			Placeholder: true,
		})
	}

	srv.logger.DebugContext(ctx, "Built rent revenue series",
		slog.String("ref", entity.MonthKeyOf(ref)),
		slog.Int("months", monthCount),
		slog.Int("placeholders", placeholders),
	)

	return series, nil
}

func (srv *revenueService) placeholderOffset() int {
	srv.rngMu.Lock()
	defer srv.rngMu.Unlock()

	return srv.rng.IntN(placeholderRevenueSpan)
}

// trailingMonths returns the n month keys ending at ref's month, oldest first.
func trailingMonths(ref time.Time, n int) []string {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		months = append(months, entity.MonthKeyOf(first.AddDate(0, -i, 0)))
	}

	return months
}
