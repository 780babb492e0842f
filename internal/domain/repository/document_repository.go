package repository

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// DocumentRepository defines the read operations for shared document metadata.
type DocumentRepository interface {
	List(ctx context.Context) ([]*entity.Document, error)
}
