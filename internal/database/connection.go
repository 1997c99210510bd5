// internal/database/connection.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocketmart/pocketmart-data/internal/config"
	"github.com/pocketmart/pocketmart-data/internal/models"
)

// Initialize opens the SQLite store described by cfg. The DSN switches
// foreign-key enforcement on so that cascade deletes are active for every
// connection, and the pool is capped at one open connection: SQLite allows a
// single writer, so this serializes concurrent operations at the store
// boundary instead of in application code.
func Initialize(cfg config.StoreConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(sqlite.Open(DSN(cfg)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	logrus.WithField("path", cfg.Path).Info("store connection established")
	return db, nil
}

// DSN builds the SQLite connection string for cfg. Exposed so tests can
// point the same options at an in-memory database.
func DSN(cfg config.StoreConfig) string {
	return fmt.Sprintf("file:%s?_fk=1&_busy_timeout=%d", cfg.Path, cfg.BusyTimeoutMS)
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("error closing store connection")
	} else {
		logrus.Info("store connection closed")
	}
}

// RunMigrations creates the users, products and cart_items tables if they do
// not exist yet, together with their constraints and indexes. It never drops
// or rewrites existing data, so it is safe to run on every startup.
func RunMigrations(db *gorm.DB) error {
	logrus.Info("running store migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("store migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_seller ON products(seller_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_cart_items_product ON cart_items(product_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return err
		}
	}

	return nil
}
