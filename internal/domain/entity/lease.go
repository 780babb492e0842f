package entity

import "slices"

// LeaseStatus is the state of a lease agreement.
type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

// IsValid checks if the LeaseStatus is a valid value.
func (s LeaseStatus) IsValid() bool {
	switch s {
	case LeaseStatusActive, LeaseStatusExpired, LeaseStatusTerminated:
		return true
	default:
		return false
	}
}

// Lease is a rental agreement between a resident and a unit.
type Lease struct {
	ID         string      `json:"id"`
	UnitID     string      `json:"unitId"`
	ResidentID string      `json:"residentId"`
	StartDate  Date        `json:"startDate"`
	EndDate    Date        `json:"endDate"`
	Rent       float64     `json:"rent"`
	Deposit    float64     `json:"deposit"`
	Terms      []string    `json:"terms"` // Clauses in the order they appear in the agreement.
	Status     LeaseStatus `json:"status"`
}

// Clone returns a deep copy of l.
func (l *Lease) Clone() *Lease {
	if l == nil {
		return nil
	}
	c := *l
	c.Terms = slices.Clone(l.Terms)

	return &c
}
