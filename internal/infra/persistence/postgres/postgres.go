package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"suiteprop/config"
	"suiteprop/internal/domain/lifecycle"
	"suiteprop/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval = 5 * time.Second
	poolSlowWait      = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the directory database and binds its ping and close to the
// application lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open directory database")
	}
	db = db.Session(&gorm.Session{
		// Reads only. Seeding opens its own transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap directory connection pool")
	}

	watcher := &poolWatcher{stats: sqlDB.Stats, logger: params.Logger, slowWait: poolSlowWait}
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping directory database")
			}
			go watcher.run(watchCtx, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher reports connection waits between two pool samples.
type poolWatcher struct {
	stats    func() sql.DBStats
	logger   *slog.Logger
	slowWait time.Duration
	last     sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.last = w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

// sample compares the pool against the previous sample and logs when
// callers had to wait for a connection. It returns the number of new waits.
func (w *poolWatcher) sample(ctx context.Context) int64 {
	cur := w.stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return 0
	}

	level := slog.LevelDebug
	if waited >= w.slowWait {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Directory pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)

	return waits
}
