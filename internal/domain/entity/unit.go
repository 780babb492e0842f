package entity

// UnitStatus is the occupancy state of a unit.
type UnitStatus string

const (
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// IsValid checks if the UnitStatus is a valid value.
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusOccupied, UnitStatusVacant, UnitStatusMaintenance:
		return true
	default:
		return false
	}
}

// Unit is a rentable property record.
type Unit struct {
	ID         string     `json:"id"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	ZipCode    string     `json:"zipCode"`
	Bedrooms   int        `json:"bedrooms"`
	Bathrooms  int        `json:"bathrooms"`
	Rent       float64    `json:"rent"`
	Status     UnitStatus `json:"status"`
	ResidentID string     `json:"residentId,omitempty"` // Occupancy edge. Empty when nobody is assigned.
}

// Clone returns a copy of u that can be modified freely.
func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}
	c := *u

	return &c
}
