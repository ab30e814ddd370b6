package db_fx

import (
	"context"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inzider/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, log *zap.Logger) (*gorm.DB, error) {
	cfg := infra.PostgresConfig{
		DSN:            os.Getenv("POSTGRES_DSN"),
		MaxOpenConns:   envInt("POSTGRES_MAX_OPEN_CONNS", 10),
		MaxIdleConns:   envInt("POSTGRES_MAX_IDLE_CONNS", 5),
		ConnectRetries: envInt("POSTGRES_CONNECT_RETRIES", 3),
		RetryBackoff:   2 * time.Second,
	}
	db, err := infra.NewPostgres(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgres(db, log)
			return nil
		},
	})
	return db, nil
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
