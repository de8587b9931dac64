package db

import (
	"context"
	"fmt"
	"time"

	"ecbrates/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const healthCheckPeriod = 5 * time.Minute

func CreatePoolAndPing(ctx context.Context, cfg config.DbServer) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to parse db config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.HealthCheckPeriod = healthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping db at %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	logrus.WithFields(logrus.Fields{"host": cfg.Host, "db": cfg.Name, "max_conns": poolCfg.MaxConns}).Debug("Db pool ready")
	return pool, nil
}
