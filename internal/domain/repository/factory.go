package repository

// RepositoryFactory hands out the repositories of one backing store.
// Every repository returned by a factory reads the same dataset.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewUnitRepository() UnitRepository
	NewBillRepository() BillRepository
	NewMaintenanceRequestRepository() MaintenanceRequestRepository
	NewLeaseRepository() LeaseRepository
	NewDocumentRepository() DocumentRepository
}
