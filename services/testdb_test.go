package services_test

import (
	"path/filepath"
	"testing"
	"time"

	"JATGo/config"
	"JATGo/models"
	"JATGo/utils"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := config.MigrateDB(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func addUser(assert *assert.Assertions, db *gorm.DB, username string) *models.User {
	user := models.User{
		ID:        utils.GenerateID(),
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: time.Now(),
	}
	assert.Nil(db.Create(&user).Error)
	assert.Nil(db.Create(&models.UserGamification{UserID: user.ID, UpdatedAt: time.Now()}).Error)

	return &user
}

func addTodo(assert *assert.Assertions, db *gorm.DB, userID, date string, completed bool) *models.Todo {
	todo := models.Todo{
		ID:          utils.GenerateID(),
		UserID:      userID,
		Title:       "do some work",
		IsCompleted: completed,
		Date:        date,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	assert.Nil(db.Create(&todo).Error)

	return &todo
}

func addFriendship(assert *assert.Assertions, db *gorm.DB, a, b string) {
	assert.Nil(db.Create(&models.Friendship{
		ID:        utils.GenerateID(),
		UserID:    a,
		FriendID:  b,
		CreatedAt: time.Now(),
	}).Error)
}
