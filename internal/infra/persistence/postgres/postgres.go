package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"habitrack/config"
	"habitrack/internal/domain/lifecycle"
	"habitrack/internal/errors"
	"habitrack/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	// One report per dispatch minute.
	defaultPoolMonitorInterval  = time.Minute
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the Postgres pool. On start it pings the database, optionally
// migrates the habit schema and starts the pool monitor.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	dbCfg := params.Config.Database
	if dbCfg == nil {
		dbCfg = &config.DatabaseConfig{}
	}
	interval := dbCfg.PoolMonitorInterval
	if interval <= 0 {
		interval = defaultPoolMonitorInterval
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if dbCfg.AutoMigrate {
				if err := migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Habit schema migrated")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, interval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrate creates or updates the tables of every persistence model.
func migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate habit schema")
	}

	return nil
}

// monitorDBPool reports connection pool pressure once per interval. Waits
// show up when a dispatch pass and API traffic compete for connections.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolStats(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolStats(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	waited := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int64("waitCount", waits),
	}
	if waits == 0 {
		logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool stats", attrs...)

		return
	}

	attrs = append(attrs,
		slog.Duration("waitDuration", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
	)
	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	logger.LogAttrs(ctx, level, "Postgres pool wait observed", attrs...)
}
