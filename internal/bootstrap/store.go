package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/config"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/repository"
)

type StoreOptions struct {
	PingTO       time.Duration
	MaxOpenConns int
}

// OpenStore connects to the backend named in cfg and verifies it answers a
// ping. The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg config.StoreConfig, opt StoreOptions) (repository.Store, error) {
	if opt.MaxOpenConns == 0 {
		opt.MaxOpenConns = 10
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	var store repository.Store
	switch cfg.Backend {
	case config.BackendRedis:
		s, err := openRedis(cfg)
		if err != nil {
			return nil, err
		}
		store = s
	case config.BackendPostgres:
		s, err := openPostgres(cfg, opt.MaxOpenConns)
		if err != nil {
			return nil, err
		}
		store = s
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := store.Ping(pctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("%s ping: %w", cfg.Backend, err)
	}

	return store, nil
}

func openRedis(cfg config.StoreConfig) (*repository.RedisStore, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is not set")
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return repository.NewRedisStore(redis.NewClient(opts), cfg.KeyPrefix), nil
}

func openPostgres(cfg config.StoreConfig, maxOpen int) (*repository.PostgresStore, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	driver := cfg.SQLDriver
	if driver == "" {
		driver = config.DriverPostgres
	}

	db, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen / 2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return repository.NewPostgresStore(db), nil
}
