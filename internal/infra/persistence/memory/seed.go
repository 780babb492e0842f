package memory

import "suiteprop/internal/domain/entity"

// Dataset is the full set of collections a Store serves.
type Dataset struct {
	Users               []*entity.User
	Units               []*entity.Unit
	Bills               []*entity.Bill
	MaintenanceRequests []*entity.MaintenanceRequest
	Leases              []*entity.Lease
	Documents           []*entity.Document
}

// SeedDataset returns a fresh copy of the demo dataset.
func SeedDataset() Dataset {
	completed := entity.MustParseDate("2023-12-22")

	return Dataset{
		Users: []*entity.User{
			{ID: "admin-1", Email: "admin@demo.com", Name: "Property Manager", Role: entity.RoleAdmin},
			{ID: "resident-1", Email: "john.doe@demo.com", Name: "John Doe", Role: entity.RoleResident, UnitID: "unit-1"},
			{ID: "resident-2", Email: "jane.smith@demo.com", Name: "Jane Smith", Role: entity.RoleResident, UnitID: "unit-2"},
		},
		Units: []*entity.Unit{
			{
				ID: "unit-1", Address: "123 Main Street", City: "Downtown", State: "CA", ZipCode: "90210",
				Bedrooms: 2, Bathrooms: 1, Rent: 1800, Status: entity.UnitStatusOccupied, ResidentID: "resident-1",
			},
			{
				ID: "unit-2", Address: "456 Oak Avenue", City: "Midtown", State: "CA", ZipCode: "90211",
				Bedrooms: 1, Bathrooms: 1, Rent: 1500, Status: entity.UnitStatusOccupied, ResidentID: "resident-2",
			},
			{
				ID: "unit-3", Address: "789 Pine Street", City: "Uptown", State: "CA", ZipCode: "90212",
				Bedrooms: 3, Bathrooms: 2, Rent: 2200, Status: entity.UnitStatusVacant,
			},
			{
				ID: "unit-4", Address: "321 Elm Drive", City: "Downtown", State: "CA", ZipCode: "90210",
				Bedrooms: 2, Bathrooms: 1, Rent: 1700, Status: entity.UnitStatusMaintenance,
			},
		},
		Bills: []*entity.Bill{
			{
				ID: "bill-1", UnitID: "unit-1", ResidentID: "resident-1", Type: entity.BillTypeRent, Amount: 1800,
				DueDate: entity.MustParseDate("2024-01-01"), Status: entity.BillStatusPaid,
				Description: "January 2024 Rent", CreatedAt: entity.MustParseDate("2023-12-15"),
			},
			{
				ID: "bill-2", UnitID: "unit-1", ResidentID: "resident-1", Type: entity.BillTypeUtilities, Amount: 150,
				DueDate: entity.MustParseDate("2024-01-15"), Status: entity.BillStatusPending,
				Description: "Electricity and Water", CreatedAt: entity.MustParseDate("2024-01-01"),
			},
			{
				ID: "bill-3", UnitID: "unit-2", ResidentID: "resident-2", Type: entity.BillTypeRent, Amount: 1500,
				DueDate: entity.MustParseDate("2024-01-01"), Status: entity.BillStatusOverdue,
				Description: "January 2024 Rent", CreatedAt: entity.MustParseDate("2023-12-15"),
			},
		},
		MaintenanceRequests: []*entity.MaintenanceRequest{
			{
				ID: "mr-1", UnitID: "unit-1", ResidentID: "resident-1", Title: "Leaky Faucet",
				Description: "The kitchen faucet is dripping constantly and needs repair.",
				Priority:    entity.MaintenancePriorityMedium, Status: entity.MaintenanceStatusInProgress,
				CreatedAt: entity.MustParseDate("2024-01-05"), AssignedTo: "maintenance-team",
			},
			{
				ID: "mr-2", UnitID: "unit-2", ResidentID: "resident-2", Title: "Broken Window",
				Description: "Window in the living room won't close properly.",
				Priority:    entity.MaintenancePriorityHigh, Status: entity.MaintenanceStatusPending,
				CreatedAt: entity.MustParseDate("2024-01-10"),
			},
			{
				ID: "mr-3", UnitID: "unit-1", ResidentID: "resident-1", Title: "HVAC Not Working",
				Description: "Air conditioning stopped working completely.",
				Priority:    entity.MaintenancePriorityEmergency, Status: entity.MaintenanceStatusCompleted,
				CreatedAt: entity.MustParseDate("2023-12-20"), CompletedAt: &completed, AssignedTo: "maintenance-team",
			},
		},
		Leases: []*entity.Lease{
			{
				ID: "lease-1", UnitID: "unit-1", ResidentID: "resident-1",
				StartDate: entity.MustParseDate("2023-06-01"), EndDate: entity.MustParseDate("2024-05-31"),
				Rent: 1800, Deposit: 1800, Status: entity.LeaseStatusActive,
				Terms: []string{
					"No pets allowed",
					"No smoking",
					"Quiet hours 10 PM - 8 AM",
					"Parking space included",
					"Utilities not included",
				},
			},
			{
				ID: "lease-2", UnitID: "unit-2", ResidentID: "resident-2",
				StartDate: entity.MustParseDate("2023-08-01"), EndDate: entity.MustParseDate("2024-07-31"),
				Rent: 1500, Deposit: 1500, Status: entity.LeaseStatusActive,
				Terms: []string{
					"Small pets allowed with deposit",
					"No smoking",
					"Quiet hours 10 PM - 8 AM",
					"Parking space included",
					"Utilities not included",
				},
			},
		},
		Documents: []*entity.Document{
			{ID: "doc-1", Name: "Lease Agreement - 123 Main Street", Type: entity.DocumentTypeLease, UploadedAt: entity.MustParseDate("2024-01-10"), URL: "#"},
			{ID: "doc-2", Name: "Move-in Checklist", Type: entity.DocumentTypeForm, UploadedAt: entity.MustParseDate("2024-01-12"), URL: "#"},
			{ID: "doc-3", Name: "Pet Policy", Type: entity.DocumentTypePolicy, UploadedAt: entity.MustParseDate("2024-01-15"), URL: "#"},
			{ID: "doc-4", Name: "Maintenance Request Form", Type: entity.DocumentTypeForm, UploadedAt: entity.MustParseDate("2024-01-18"), URL: "#"},
		},
	}
}
