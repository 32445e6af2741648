package database

import (
	"context"
	"fmt"
	"time"

	"yamdb-backend/internal/config"
	"yamdb-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

// GormConfig is shared by the production and test dialectors. Driver errors
// are translated so unique violations surface as gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
		PrepareStmt:    true,
	}
}

func Connect(cfg config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig())
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	logrus.Info("Database connection established successfully")

	database := New(db, cfg)
	if err := database.AutoMigrate(); err != nil {
		logrus.WithError(err).Error("Failed to run auto migration")
		return nil, fmt.Errorf("failed to run auto migration: %w", err)
	}

	return database, nil
}

// New wraps an already opened connection.
func New(db *gorm.DB, cfg config.DatabaseConfig) *Database {
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 10 * time.Second
	}
	return &Database{
		DB:     db,
		config: cfg,
	}
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates the schema. Parents come before children so
// foreign keys can be declared.
func (d *Database) AutoMigrate() error {
	logrus.Info("Running auto migration...")

	err := d.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Genre{},
		&models.Title{},
		&models.Review{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}

	logrus.Info("Auto migration completed successfully")
	return nil
}
