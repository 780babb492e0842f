// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"suiteprop/internal/domain/entity"
	"suiteprop/internal/domain/repository"

	"gorm.io/gorm"
)

// Store serves the directory from PostgreSQL. It never writes outside Seed.
type Store struct {
	db *gorm.DB
}

var _ repository.RepositoryFactory = (*Store)(nil)

// NewStore wraps an open connection pool.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) NewUserRepository() repository.UserRepository { return &userRepository{db: s.db} }

func (s *Store) NewUnitRepository() repository.UnitRepository { return &unitRepository{db: s.db} }

func (s *Store) NewBillRepository() repository.BillRepository { return &billRepository{db: s.db} }

func (s *Store) NewMaintenanceRequestRepository() repository.MaintenanceRequestRepository {
	return &maintenanceRequestRepository{db: s.db}
}

func (s *Store) NewLeaseRepository() repository.LeaseRepository { return &leaseRepository{db: s.db} }

func (s *Store) NewDocumentRepository() repository.DocumentRepository {
	return &documentRepository{db: s.db}
}

// scoped narrows a query on a resident_id column to what scope can see.
// The boolean is false when scope can see nothing and the query can be skipped.
func scoped(db *gorm.DB, scope entity.Scope) (*gorm.DB, bool) {
	if scope.Admin {
		return db, true
	}
	if scope.OwnerID == "" {
		return db, false
	}

	return db.Where("resident_id = ?", scope.OwnerID), true
}
