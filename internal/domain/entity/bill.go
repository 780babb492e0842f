package entity

// BillType classifies what a bill charges for.
type BillType string

const (
	BillTypeRent        BillType = "rent"
	BillTypeUtilities   BillType = "utilities"
	BillTypeMaintenance BillType = "maintenance"
	BillTypeOther       BillType = "other"
)

// IsValid checks if the BillType is a valid value.
func (t BillType) IsValid() bool {
	switch t {
	case BillTypeRent, BillTypeUtilities, BillTypeMaintenance, BillTypeOther:
		return true
	default:
		return false
	}
}

// BillStatus is the payment state of a bill.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

// IsValid checks if the BillStatus is a valid value.
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue:
		return true
	default:
		return false
	}
}

// IsOutstanding reports whether the bill still counts toward what is owed.
func (s BillStatus) IsOutstanding() bool {
	return s == BillStatusPending || s == BillStatusOverdue
}

// Bill is a charge owed by a resident for a unit.
type Bill struct {
	ID          string     `json:"id"`
	UnitID      string     `json:"unitId"`
	ResidentID  string     `json:"residentId"`
	Type        BillType   `json:"type"`
	Amount      float64    `json:"amount"`
	DueDate     Date       `json:"dueDate"`
	Status      BillStatus `json:"status"`
	Description string     `json:"description"`
	CreatedAt   Date       `json:"createdAt"`
}

// Clone returns a copy of b that can be modified freely.
func (b *Bill) Clone() *Bill {
	if b == nil {
		return nil
	}
	c := *b

	return &c
}

// EnrichedBill is a bill joined with the unit and resident it references.
// Either side is nil when the reference does not resolve.
type EnrichedBill struct {
	*Bill
	Unit     *Unit `json:"unit,omitempty"`
	Resident *User `json:"resident,omitempty"`
}
