// Package memory serves the directory from fixed in-process collections.
// The collections are never mutated after construction and every read
// returns copies, so a Store is safe for concurrent use.
package memory

import (
	"context"

	"suiteprop/internal/domain/entity"
	"suiteprop/internal/domain/repository"
)

// Store is an immutable dataset exposed through the repository interfaces.
type Store struct {
	data Dataset
}

var _ repository.RepositoryFactory = (*Store)(nil)

// NewStore copies data into a new Store. Later changes to data are not observed.
func NewStore(data Dataset) *Store {
	return &Store{data: Dataset{
		Users:               cloneAll(data.Users, (*entity.User).Clone),
		Units:               cloneAll(data.Units, (*entity.Unit).Clone),
		Bills:               cloneAll(data.Bills, (*entity.Bill).Clone),
		MaintenanceRequests: cloneAll(data.MaintenanceRequests, (*entity.MaintenanceRequest).Clone),
		Leases:              cloneAll(data.Leases, (*entity.Lease).Clone),
		Documents:           cloneAll(data.Documents, (*entity.Document).Clone),
	}}
}

// NewSeedStore returns a Store holding the demo dataset.
func NewSeedStore() *Store {
	return NewStore(SeedDataset())
}

func (s *Store) NewUserRepository() repository.UserRepository { return &userRepository{users: s.data.Users} }

func (s *Store) NewUnitRepository() repository.UnitRepository { return &unitRepository{units: s.data.Units} }

func (s *Store) NewBillRepository() repository.BillRepository { return &billRepository{bills: s.data.Bills} }

func (s *Store) NewMaintenanceRequestRepository() repository.MaintenanceRequestRepository {
	return &maintenanceRequestRepository{requests: s.data.MaintenanceRequests}
}

func (s *Store) NewLeaseRepository() repository.LeaseRepository { return &leaseRepository{leases: s.data.Leases} }

func (s *Store) NewDocumentRepository() repository.DocumentRepository {
	return &documentRepository{documents: s.data.Documents}
}

func cloneAll[T any](items []*T, clone func(*T) *T) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, clone(item))
		}
	}

	return out
}

// visible filters items by scope and copies the survivors.
func visible[T any](scope entity.Scope, items []*T, owner func(*T) string, clone func(*T) *T) []*T {
	return cloneAll(entity.Filter(scope, items, owner), clone)
}

type userRepository struct {
	users []*entity.User
}

func (r *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) ListByRole(_ context.Context, role entity.Role) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u.Clone())
		}
	}

	return out, nil
}

type unitRepository struct {
	units []*entity.Unit
}

func (r *unitRepository) FindByID(_ context.Context, id string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.ID == id {
			return u.Clone(), nil
		}
	}

	return nil, repository.ErrUnitNotFound
}

func (r *unitRepository) List(_ context.Context, scope entity.Scope) ([]*entity.Unit, error) {
	return visible(scope, r.units, func(u *entity.Unit) string { return u.ResidentID }, (*entity.Unit).Clone), nil
}

type billRepository struct {
	bills []*entity.Bill
}

func (r *billRepository) List(_ context.Context, scope entity.Scope) ([]*entity.Bill, error) {
	return visible(scope, r.bills, func(b *entity.Bill) string { return b.ResidentID }, (*entity.Bill).Clone), nil
}

type maintenanceRequestRepository struct {
	requests []*entity.MaintenanceRequest
}

func (r *maintenanceRequestRepository) List(_ context.Context, scope entity.Scope) ([]*entity.MaintenanceRequest, error) {
	return visible(scope, r.requests,
		func(m *entity.MaintenanceRequest) string { return m.ResidentID },
		(*entity.MaintenanceRequest).Clone,
	), nil
}

type leaseRepository struct {
	leases []*entity.Lease
}

func (r *leaseRepository) List(_ context.Context, scope entity.Scope) ([]*entity.Lease, error) {
	return visible(scope, r.leases, func(l *entity.Lease) string { return l.ResidentID }, (*entity.Lease).Clone), nil
}

type documentRepository struct {
	documents []*entity.Document
}

func (r *documentRepository) List(_ context.Context) ([]*entity.Document, error) {
	return cloneAll(r.documents, (*entity.Document).Clone), nil
}
