package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"suiteprop/config"
	"suiteprop/internal/domain/entity"
	"suiteprop/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositoryFactory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{Storage: &config.StorageConfig{Driver: config.StorageDriverMemory}}

		factory, err := NewRepositoryFactory(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, factory)

		units, err := factory.NewUnitRepository().List(context.Background(), entity.Scope{Admin: true})
		require.NoError(t, err)
		assert.Len(t, units, 4)
	})

	t.Run("missing storage section defaults to memory", func(t *testing.T) {
		factory, err := NewRepositoryFactory(Params{Lifecycle: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, factory)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &config.Config{Storage: &config.StorageConfig{Driver: "bolt"}}

		_, err := NewRepositoryFactory(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.ErrorContains(t, err, "unsupported storage driver")
	})
}
