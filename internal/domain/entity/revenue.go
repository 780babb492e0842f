package entity

// RevenuePoint is one month of the rent revenue series.
type RevenuePoint struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
	// Placeholder is set when no rent bill was due in Month and Revenue is a
	// synthetic display value rather than an aggregate.
	Placeholder bool `json:"placeholder"`
}
