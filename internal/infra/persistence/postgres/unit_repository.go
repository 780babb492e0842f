package postgres

import (
	"context"

	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/domain/repository"
	"suiteprop/internal/errors"
	"suiteprop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type unitRepository struct {
	db *gorm.DB
}

func (repo *unitRepository) FindByID(ctx context.Context, id string) (*entity.Unit, error) {
	var unitM model.UnitModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&unitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnitNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find unit")
	}

	return toUnitDomain(&unitM), nil
}

func (repo *unitRepository) List(ctx context.Context, scope entity.Scope) ([]*entity.Unit, error) {
	query, ok := scoped(repo.db.WithContext(ctx), scope)
	if !ok {
		return []*entity.Unit{}, nil
	}

	var rows []*model.UnitModel
	if err := query.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list units")
	}

	return mapAll(rows, toUnitDomain), nil
}

func toUnitDomain(data *model.UnitModel) *entity.Unit {
	if data == nil {
		return nil
	}

	unit := &entity.Unit{
		ID:        data.ID,
		Address:   data.Address,
		City:      data.City,
		State:     data.State,
		ZipCode:   data.ZipCode,
		Bedrooms:  data.Bedrooms,
		Bathrooms: data.Bathrooms,
		Rent:      data.Rent,
		Status:    entity.UnitStatus(data.Status),
	}
	if data.ResidentID != nil {
		unit.ResidentID = *data.ResidentID
	}

	return unit
}

func fromUnitDomain(data *entity.Unit, position int) *model.UnitModel {
	unitM := &model.UnitModel{
		ID:        data.ID,
		Position:  position,
		Address:   data.Address,
		City:      data.City,
		State:     data.State,
		ZipCode:   data.ZipCode,
		Bedrooms:  data.Bedrooms,
		Bathrooms: data.Bathrooms,
		Rent:      data.Rent,
		Status:    string(data.Status),
	}
	if data.ResidentID != "" {
		residentID := data.ResidentID
		unitM.ResidentID = &residentID
	}

	return unitM
}
