package database

import (
	"fmt"
	"time"

	"clubhub/config"
	"clubhub/internal/domain/activity"
	"clubhub/internal/domain/auditlog"
	"clubhub/internal/domain/design"
	"clubhub/internal/domain/finance"
	"clubhub/internal/domain/link"
	"clubhub/internal/domain/meeting"
	"clubhub/internal/domain/user"
	"clubhub/internal/domain/vendor"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and configures the pool.
// TranslateError is on so driver errors surface as gorm sentinels.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	logMode := gormlogger.Warn
	if cfg.AppMode == "debug" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get generic database object: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&user.Session{},
		&activity.File{},
		&design.File{},
		&vendor.Vendor{},
		&link.Link{},
		&meeting.Record{},
		&finance.Record{},
		&auditlog.Entry{},
	)
}

// Ping verifies the connection is alive.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// HealthCheck is Ping under the name the health endpoint uses.
func HealthCheck(db *gorm.DB) error {
	return Ping(db)
}

// Close shuts the underlying pool down.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// TableExists reports whether a table is present.
func TableExists(db *gorm.DB, name string) bool {
	return db.Migrator().HasTable(name)
}
