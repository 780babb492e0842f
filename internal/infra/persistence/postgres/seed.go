package postgres

import (
	"context"
	"log/slog"

	"suiteprop/internal/errors"
	"suiteprop/internal/infra/persistence/memory"
	"suiteprop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Seed migrates the schema and loads data when the users table is empty.
// Collection order is stored in each row's position column.
func Seed(ctx context.Context, db *gorm.DB, data memory.Dataset, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.UserModel{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to count users")
		}
		if count > 0 {
			logger.InfoContext(ctx, "Postgres store already seeded", slog.Int64("users", count))

			return nil
		}

		return insertDataset(tx, data)
	})
	if isUniqueConstraintViolation(err) {
		// Another instance seeded concurrently.
		logger.WarnContext(ctx, "Postgres seed raced with another writer", slog.Any("error", err))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to seed postgres store")
	}

	return nil
}

func insertDataset(tx *gorm.DB, data memory.Dataset) error {
	batches := []struct {
		name string
		rows any
		n    int
	}{
		{"users", mapIndexed(data.Users, fromUserDomain), len(data.Users)},
		{"units", mapIndexed(data.Units, fromUnitDomain), len(data.Units)},
		{"bills", mapIndexed(data.Bills, fromBillDomain), len(data.Bills)},
		{"maintenance requests", mapIndexed(data.MaintenanceRequests, fromMaintenanceRequestDomain), len(data.MaintenanceRequests)},
		{"leases", mapIndexed(data.Leases, fromLeaseDomain), len(data.Leases)},
		{"documents", mapIndexed(data.Documents, fromDocumentDomain), len(data.Documents)},
	}

	for _, batch := range batches {
		if batch.n == 0 {
			continue
		}
		// Leases carry their terms as an association; GORM inserts them too.
		if err := tx.Create(batch.rows).Error; err != nil {
			return errors.Wrapf(err, "failed to insert %s", batch.name)
		}
	}

	return nil
}

func mapIndexed[E any, M any](items []*E, fromDomain func(*E, int) *M) []*M {
	out := make([]*M, 0, len(items))
	for i, item := range items {
		out = append(out, fromDomain(item, i))
	}

	return out
}
