package app

import (
	"database/sql"
	"errors"

	"go-hrms/internal/config"
	"go-hrms/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const connectRetries = 5

// platform holds the shared connections of one process.
type platform struct {
	cfg    config.Config
	gormDB *gorm.DB
	db     *sql.DB
	rdb    *redis.Client
}

func connect(cfg config.Config) (*platform, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &platform{cfg: cfg, gormDB: gormDB, db: sqlDB, rdb: rdb}, nil
}

func (in *platform) Close() error {
	return errors.Join(in.rdb.Close(), in.db.Close())
}
