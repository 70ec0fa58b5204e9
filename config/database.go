package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
)

// ConnectDB opens the shared MySQL pool and migrates the schema. The
// returned handle is passed explicitly to every route setup; there is no
// package-level connection. TranslateError is on so a violated unique
// index surfaces as gorm.ErrDuplicatedKey.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Driver{},
		&model.AttendanceRecord{},
		&model.Route{},
		&model.Stop{},
		&model.RouteStop{},
		&model.Alert{},
		&model.User{},
		&model.Bus{},
		&model.BusAvailability{},
		&model.Crew{},
		&model.ScheduleEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

// CloseDB releases the underlying connection pool on shutdown.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
