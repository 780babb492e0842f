package postgres

import (
	"context"

	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type maintenanceRequestRepository struct {
	db *gorm.DB
}

func (repo *maintenanceRequestRepository) List(ctx context.Context, scope entity.Scope) ([]*entity.MaintenanceRequest, error) {
	query, ok := scoped(repo.db.WithContext(ctx), scope)
	if !ok {
		return []*entity.MaintenanceRequest{}, nil
	}

	var rows []*model.MaintenanceRequestModel
	if err := query.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list maintenance requests")
	}

	return mapAll(rows, toMaintenanceRequestDomain), nil
}

func toMaintenanceRequestDomain(data *model.MaintenanceRequestModel) *entity.MaintenanceRequest {
	if data == nil {
		return nil
	}

	mr := &entity.MaintenanceRequest{
		ID:          data.ID,
		UnitID:      data.UnitID,
		ResidentID:  data.ResidentID,
		Title:       data.Title,
		Description: data.Description,
		Priority:    entity.MaintenancePriority(data.Priority),
		Status:      entity.MaintenanceStatus(data.Status),
		CreatedAt:   entity.DateOf(data.CreatedAt),
		AssignedTo:  data.AssignedTo,
	}
	if data.CompletedAt != nil {
		completed := entity.DateOf(*data.CompletedAt)
		mr.CompletedAt = &completed
	}

	return mr
}

func fromMaintenanceRequestDomain(data *entity.MaintenanceRequest, position int) *model.MaintenanceRequestModel {
	mrM := &model.MaintenanceRequestModel{
		ID:          data.ID,
		Position:    position,
		UnitID:      data.UnitID,
		ResidentID:  data.ResidentID,
		Title:       data.Title,
		Description: data.Description,
		Priority:    string(data.Priority),
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt.Time(),
		AssignedTo:  data.AssignedTo,
	}
	if data.CompletedAt != nil {
		completed := data.CompletedAt.Time()
		mrM.CompletedAt = &completed
	}

	return mrM
}
