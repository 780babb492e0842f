package postgres

import (
	"context"

	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

func (repo *billRepository) List(ctx context.Context, scope entity.Scope) ([]*entity.Bill, error) {
	query, ok := scoped(repo.db.WithContext(ctx), scope)
	if !ok {
		return []*entity.Bill{}, nil
	}

	var rows []*model.BillModel
	if err := query.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list bills")
	}

	return mapAll(rows, toBillDomain), nil
}

func toBillDomain(data *model.BillModel) *entity.Bill {
	if data == nil {
		return nil
	}

	return &entity.Bill{
		ID:          data.ID,
		UnitID:      data.UnitID,
		ResidentID:  data.ResidentID,
		Type:        entity.BillType(data.Type),
		Amount:      data.Amount,
		DueDate:     entity.DateOf(data.DueDate),
		Status:      entity.BillStatus(data.Status),
		Description: data.Description,
		CreatedAt:   entity.DateOf(data.CreatedAt),
	}
}

func fromBillDomain(data *entity.Bill, position int) *model.BillModel {
	return &model.BillModel{
		ID:          data.ID,
		Position:    position,
		UnitID:      data.UnitID,
		ResidentID:  data.ResidentID,
		Type:        string(data.Type),
		Amount:      data.Amount,
		DueDate:     data.DueDate.Time(),
		Status:      string(data.Status),
		Description: data.Description,
		CreatedAt:   data.CreatedAt.Time(),
	}
}
