package postgres

import (
	"context"

	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type leaseRepository struct {
	db *gorm.DB
}

func (repo *leaseRepository) List(ctx context.Context, scope entity.Scope) ([]*entity.Lease, error) {
	query, ok := scoped(repo.db.WithContext(ctx), scope)
	if !ok {
		return []*entity.Lease{}, nil
	}

	var rows []*model.LeaseModel
	err := query.
		Preload("Terms", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list leases")
	}

	return mapAll(rows, toLeaseDomain), nil
}

func toLeaseDomain(data *model.LeaseModel) *entity.Lease {
	if data == nil {
		return nil
	}

	terms := make([]string, 0, len(data.Terms))
	for _, term := range data.Terms {
		terms = append(terms, term.Clause)
	}

	return &entity.Lease{
		ID:         data.ID,
		UnitID:     data.UnitID,
		ResidentID: data.ResidentID,
		StartDate:  entity.DateOf(data.StartDate),
		EndDate:    entity.DateOf(data.EndDate),
		Rent:       data.Rent,
		Deposit:    data.Deposit,
		Terms:      terms,
		Status:     entity.LeaseStatus(data.Status),
	}
}

func fromLeaseDomain(data *entity.Lease, position int) *model.LeaseModel {
	terms := make([]model.LeaseTermModel, 0, len(data.Terms))
	for i, clause := range data.Terms {
		terms = append(terms, model.LeaseTermModel{LeaseID: data.ID, Position: i, Clause: clause})
	}

	return &model.LeaseModel{
		ID:         data.ID,
		Position:   position,
		UnitID:     data.UnitID,
		ResidentID: data.ResidentID,
		StartDate:  data.StartDate.Time(),
		EndDate:    data.EndDate.Time(),
		Rent:       data.Rent,
		Deposit:    data.Deposit,
		Status:     string(data.Status),
		Terms:      terms,
	}
}
