package postgres

import (
	"context"

	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

func (repo *documentRepository) List(ctx context.Context) ([]*entity.Document, error) {
	var rows []*model.DocumentModel
	if err := repo.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list documents")
	}

	return mapAll(rows, toDocumentDomain), nil
}

func toDocumentDomain(data *model.DocumentModel) *entity.Document {
	if data == nil {
		return nil
	}

	return &entity.Document{
		ID:         data.ID,
		Name:       data.Name,
		Type:       entity.DocumentType(data.Type),
		UploadedAt: entity.DateOf(data.UploadedAt),
		URL:        data.URL,
	}
}

func fromDocumentDomain(data *entity.Document, position int) *model.DocumentModel {
	return &model.DocumentModel{
		ID:         data.ID,
		Position:   position,
		Name:       data.Name,
		Type:       string(data.Type),
		UploadedAt: data.UploadedAt.Time(),
		URL:        data.URL,
	}
}
