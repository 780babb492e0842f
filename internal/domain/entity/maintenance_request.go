package entity

// MaintenancePriority is how urgent a repair ticket is.
type MaintenancePriority string

const (
	MaintenancePriorityLow       MaintenancePriority = "low"
	MaintenancePriorityMedium    MaintenancePriority = "medium"
	MaintenancePriorityHigh      MaintenancePriority = "high"
	MaintenancePriorityEmergency MaintenancePriority = "emergency"
)

// IsValid checks if the MaintenancePriority is a valid value.
func (p MaintenancePriority) IsValid() bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh, MaintenancePriorityEmergency:
		return true
	default:
		return false
	}
}

// MaintenanceStatus is where a ticket is in its pending → in-progress → completed life.
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in-progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

// IsValid checks if the MaintenanceStatus is a valid value.
func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	default:
		return false
	}
}

// IsOpen reports whether work on the ticket has not finished yet.
func (s MaintenanceStatus) IsOpen() bool {
	return s == MaintenanceStatusPending || s == MaintenanceStatusInProgress
}

// MaintenanceRequest is a repair ticket raised for a unit.
type MaintenanceRequest struct {
	ID          string              `json:"id"`
	UnitID      string              `json:"unitId"`
	ResidentID  string              `json:"residentId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    MaintenancePriority `json:"priority"`
	Status      MaintenanceStatus   `json:"status"`
	CreatedAt   Date                `json:"createdAt"`
	CompletedAt *Date               `json:"completedAt,omitempty"`
	AssignedTo  string              `json:"assignedTo,omitempty"`
}

// Clone returns a copy of r that can be modified freely.
func (r *MaintenanceRequest) Clone() *MaintenanceRequest {
	if r == nil {
		return nil
	}
	c := *r
	if r.CompletedAt != nil {
		completed := *r.CompletedAt
		c.CompletedAt = &completed
	}

	return &c
}

// EnrichedMaintenanceRequest is a ticket joined with its unit and resident.
type EnrichedMaintenanceRequest struct {
	*MaintenanceRequest
	Unit     *Unit `json:"unit,omitempty"`
	Resident *User `json:"resident,omitempty"`
}
