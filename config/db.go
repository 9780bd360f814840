package config

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	entity "storefront.GO/model/entity"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewDB opens the client-local database that backs the persistent stores.
// Default is a sqlite file next to the binary; MYSQL_DSN switches to a
// shared MySQL instance (same env contract as the fixture backend).
func NewDB() (*gorm.DB, error) {
	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode,
			Colorful:      true,
		},
	)

	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
		if err != nil {
			return nil, err
		}
		// MySQL gets its schema from AutoMigrate; the embedded migrations
		// below are sqlite-dialect only.
		if err := db.AutoMigrate(&entity.ClientKV{}); err != nil {
			return nil, err
		}
		return db, nil
	}

	path := GetEnv("LOCAL_DB", "storefront.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}
	if err := migrateLocalDB(db); err != nil {
		return nil, fmt.Errorf("migrate local db: %w", err)
	}
	return db, nil
}

// migrateLocalDB applies the embedded schema migrations (sqlite only; the
// MySQL path is provisioned by the fixture backend's AutoMigrate).
func migrateLocalDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
