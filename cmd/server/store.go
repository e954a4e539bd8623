package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/repository"
	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/repository/postgres"
	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/repository/sqlite"
	"github.com/jsamuelsen11/todo-spa-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-spa-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-spa-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-spa-service/internal/ports"
)

// store is the configured todo repository plus what main needs to manage
// its lifetime.
type store struct {
	repo     ports.TodoRepository
	checkers []ports.HealthChecker
	close    func()
}

// openStore connects the driver named by cfg.Repository.Driver and wraps it
// with instrumentation.
func openStore(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*store, error) {
	driver := cfg.Repository.Driver
	s := &store{close: func() {}}

	switch driver {
	case config.DriverMemory:
		s.repo = memory.NewRepo()

	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.Repository.SQLite.Path)
		if err != nil {
			return nil, err
		}
		s.repo = repo
		s.checkers = append(s.checkers, repo)
		s.close = func() {
			if err := repo.Close(); err != nil {
				logger.Error("closing sqlite store", slog.Any("error", err))
			}
		}

	case config.DriverPostgres:
		pg := cfg.Repository.Postgres
		pool, err := postgres.NewPool(ctx, pg.DSN, postgres.PoolOptions{
			MaxConns:       pg.MaxConns,
			ConnectTimeout: pg.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		repo := postgres.NewRepo(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		s.repo = repo
		s.checkers = append(s.checkers, repo)
		s.close = pool.Close

	case config.DriverRemote:
		client := acl.NewTodoClient(httpclient.New(&cfg.Client, acl.ServiceName, metrics, logger))
		s.repo = client
		s.checkers = append(s.checkers, client)

	default:
		return nil, fmt.Errorf("unknown repository driver %q", driver)
	}

	s.repo = repository.Instrument(s.repo, driver, metrics)

	logger.Info("todo store ready", slog.String("driver", driver))
	return s, nil
}
