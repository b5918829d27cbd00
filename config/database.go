package config

import (
	"fmt"
	"time"

	"JATGo/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the MySQL connection and tunes the pool.
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return MigrateDB(DB)
}

// MigrateDB migrates all tables. Also used by tests against sqlite.
func MigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Todo{},
		&models.DailyCompletion{},
		&models.UserGamification{},
		&models.Notification{},
		&models.Friendship{},
		&models.FriendRequest{},
		&models.Resource{},
		&models.JobApplication{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %v", err)
	}

	return nil
}
