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

type userRepository struct {
	db *gorm.DB
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return repo.first(ctx, "id = ?", id)
}

// FindByEmail matches the stored email byte for byte.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "email = ?", email)
}

func (repo *userRepository) first(ctx context.Context, query string, arg string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(query, arg).Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var rows []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return mapAll(rows, toUserDomain), nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:     data.ID,
		Email:  data.Email,
		Name:   data.Name,
		Role:   entity.Role(data.Role),
		UnitID: data.UnitID,
	}
}

func fromUserDomain(data *entity.User, position int) *model.UserModel {
	return &model.UserModel{
		ID:       data.ID,
		Position: position,
		Email:    data.Email,
		Name:     data.Name,
		Role:     data.Role.String(),
		UnitID:   data.UnitID,
	}
}

func mapAll[M any, E any](rows []*M, toDomain func(*M) *E) []*E {
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}

	return out
}
