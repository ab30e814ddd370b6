package infra

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inzider/internal/models/db_models"
)

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// ConnectRetries bounds the ping-with-backoff loop at startup.
	ConnectRetries int
	RetryBackoff   time.Duration
}

// NewPostgres opens an explicitly constructed connection pool through
// lib/pq and hands it to GORM. The pool is dependency-injected rather
// than held as a package global, so unique-violation errors surface as
// *pq.Error for the response layer to classify.
func NewPostgres(cfg PostgresConfig, log *zap.Logger) (*gorm.DB, error) {
	if cfg.MaxOpenConns <= 0 {
		cfg.MaxOpenConns = 10
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 5
	}
	if cfg.ConnMaxLifetime <= 0 {
		cfg.ConnMaxLifetime = time.Hour
	}
	if cfg.ConnectRetries <= 0 {
		cfg.ConnectRetries = 3
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 2 * time.Second
	}

	sqlDB, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	var pingErr error
	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		pingErr = sqlDB.Ping()
		if pingErr == nil {
			break
		}
		log.Warn("postgres not reachable, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.ConnectRetries),
			zap.Error(pingErr))
		if attempt < cfg.ConnectRetries {
			time.Sleep(cfg.RetryBackoff * time.Duration(attempt))
		}
	}
	if pingErr != nil {
		return nil, fmt.Errorf("connect postgres after %d attempts: %w", cfg.ConnectRetries, pingErr)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("init gorm: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Creator{},
		&db_models.User{},
		&db_models.Trip{},
		&db_models.GoTo{},
		&db_models.Purchase{},
		&db_models.Discount{},
		&db_models.Refund{},
		&db_models.PackageAccess{},
	)
}

func ClosePostgres(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("get database instance", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("close database connection", zap.Error(err))
	}
}
