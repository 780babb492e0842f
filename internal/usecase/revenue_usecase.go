package usecase

import (
	"context"
	"time"

	"suiteprop/internal/domain/entity"
)

// DefaultRevenueMonths is the series length used when a caller passes none.
const DefaultRevenueMonths = 12

// RandomSource supplies placeholder values. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// RevenueUsecase aggregates rent revenue per month.
type RevenueUsecase interface {
	// MonthlyRentSeries returns monthCount months ending at ref's month, oldest first.
	// A month with no rent bill due gets a flagged placeholder in [2000, 4000).
	MonthlyRentSeries(ctx context.Context, ref time.Time, monthCount int) ([]entity.RevenuePoint, error)
}
