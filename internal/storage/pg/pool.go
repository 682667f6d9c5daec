package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationName       = "howtobangalore"
	defaultConnectTimeout = 5 * time.Second
)

type PoolConfig struct {
	ConnStr  string
	MaxConns int32
}

// ConnectionPool is shared by the article reader and storer and doubles as
// the backend health check.
type ConnectionPool struct {
	db *pgxpool.Pool
}

// NewConnectionPool connects and pings once, so a bad connection string
// fails at startup instead of on the first page request.
func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PostgreSQL connection string: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if poolCfg.ConnConfig.ConnectTimeout == 0 {
		poolCfg.ConnConfig.ConnectTimeout = defaultConnectTimeout
	}
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach PostgreSQL: %w", err)
	}

	slog.Info("Connected to PostgreSQL", "max_conns", poolCfg.MaxConns)
	return &ConnectionPool{db: db}, nil
}

func (p *ConnectionPool) Close() {
	p.db.Close()
}

func (p *ConnectionPool) Healthy(ctx context.Context) bool {
	if err := p.db.Ping(ctx); err != nil {
		slog.Warn("PostgreSQL health check failed", "error", err)
		return false
	}
	return true
}
