package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"joinme/config"
	"joinme/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the JoinMe connection pool. The pool is pinged on start and a
// sampler reports connection waits until the app stops.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open joinme database")
	}

	db = db.Session(&gorm.Session{
		// Multi-statement writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug, params.Config.Database.SlowQueryThreshold),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap joinme sql.DB")
	}

	sampler := &poolSampler{db: sqlDB, logger: params.Logger}
	stopSampler := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping joinme database")
			}

			var sampleCtx context.Context
			sampleCtx, stopSampler = context.WithCancel(context.Background())
			go sampler.run(sampleCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampler()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolSampler logs when requests had to wait for a free connection.
type poolSampler struct {
	db     *sql.DB
	logger *slog.Logger
}

func (s *poolSampler) run(ctx context.Context, interval time.Duration) {
	if s.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := s.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := s.db.Stats()
			s.report(ctx, last, cur)
			last = cur
		}
	}
}

func (s *poolSampler) report(ctx context.Context, last, cur sql.DBStats) {
	waits := cur.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - last.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "database pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
