package impl

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"suiteprop/internal/domain/entity"
	"suiteprop/internal/infra/persistence/memory"
	"suiteprop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func months(series []entity.RevenuePoint) []string {
	return collectIDs(series, func(p entity.RevenuePoint) string { return p.Month })
}

func TestRevenueService_MonthlyRentSeries(t *testing.T) {
	srv := NewRevenueService(memory.NewSeedStore(), fixedRandom{value: 500}, newDiscardLogger())

	series, err := srv.MonthlyRentSeries(context.Background(), fixedNow, 12)
	require.NoError(t, err)
	require.Len(t, series, 12)

	assert.Equal(t, "2023-04", series[0].Month)
	assert.Equal(t, "2024-03", series[11].Month)
	assert.IsIncreasing(t, months(series))

	for _, point := range series {
		if point.Month == "2024-01" {
			assert.False(t, point.Placeholder)
			assert.InDelta(t, 1800, point.Revenue, 0.001)

			continue
		}
		assert.True(t, point.Placeholder, point.Month)
		assert.InDelta(t, 2500, point.Revenue, 0.001, point.Month)
	}
}

func TestRevenueService_UnpaidMonthReportsZero(t *testing.T) {
	data := memory.SeedDataset()
	data.Bills = append(data.Bills,
		&entity.Bill{ID: "bill-feb-1", Type: entity.BillTypeRent, Amount: 1800, Status: entity.BillStatusPending, DueDate: entity.MustParseDate("2024-02-01")},
		&entity.Bill{ID: "bill-feb-2", Type: entity.BillTypeRent, Amount: 1500, Status: entity.BillStatusOverdue, DueDate: entity.MustParseDate("2024-02-01")},
		&entity.Bill{ID: "bill-feb-3", Type: entity.BillTypeUtilities, Amount: 90, Status: entity.BillStatusPaid, DueDate: entity.MustParseDate("2024-02-10")},
	)
	srv := NewRevenueService(memory.NewStore(data), fixedRandom{value: 0}, newDiscardLogger())

	series, err := srv.MonthlyRentSeries(context.Background(), fixedNow, 3)
	require.NoError(t, err)

	assert.Equal(t, []entity.RevenuePoint{
		{Month: "2024-01", Revenue: 1800},
		{Month: "2024-02", Revenue: 0},
		{Month: "2024-03", Revenue: 2000, Placeholder: true},
	}, series)
}

func TestRevenueService_DefaultMonthCount(t *testing.T) {
	srv := NewRevenueService(memory.NewSeedStore(), fixedRandom{}, newDiscardLogger())

	for _, count := range []int{0, -3} {
		series, err := srv.MonthlyRentSeries(context.Background(), fixedNow, count)
		require.NoError(t, err)
		assert.Len(t, series, usecase.DefaultRevenueMonths)
	}
}

func TestRevenueService_YearBoundary(t *testing.T) {
	srv := NewRevenueService(memory.NewSeedStore(), fixedRandom{}, newDiscardLogger())
	ref := time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)

	series, err := srv.MonthlyRentSeries(context.Background(), ref, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-02"}, months(series))
}

func TestRevenueService_PlaceholderRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	srv := NewRevenueService(memory.NewStore(memory.Dataset{}), rng, newDiscardLogger())

	series, err := srv.MonthlyRentSeries(context.Background(), fixedNow, 60)
	require.NoError(t, err)
	require.Len(t, series, 60)

	for _, point := range series {
		assert.True(t, point.Placeholder)
		assert.GreaterOrEqual(t, point.Revenue, 2000.0)
		assert.Less(t, point.Revenue, 4000.0)
	}
}

func TestRevenueService_ConcurrentSeries(t *testing.T) {
	srv := NewRevenueService(memory.NewSeedStore(), rand.New(rand.NewPCG(7, 11)), newDiscardLogger())

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			series, err := srv.MonthlyRentSeries(context.Background(), fixedNow, 60)
			if err == nil && len(series) != 60 {
				err = assert.AnError
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestRevenueService_StoreFailure(t *testing.T) {
	bills := &mockBillRepository{}
	bills.On("List", mock.Anything, entity.Scope{Admin: true}).Return(nil, assert.AnError)
	srv := NewRevenueService(brokenRepos{Store: memory.NewSeedStore(), bills: bills}, fixedRandom{}, newDiscardLogger())

	series, err := srv.MonthlyRentSeries(context.Background(), fixedNow, 12)
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, series)
}
