package services

import (
	"fmt"
	"math"
	"time"

	"JATGo/config"
	"JATGo/models"
	"JATGo/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecomputeCompletion rebuilds the DailyCompletion row for (user, date)
// from the current todo set and upserts it. It runs after the triggering
// todo mutation has committed; a failure here does not roll that back.
//
// Reaching 100% on a non-empty day fans out a STREAK_COMPLETION
// notification to the user's friends, best-effort: a fan-out failure is
// logged and the aggregation still succeeds.
func RecomputeCompletion(db *gorm.DB, userID, date string) (*models.DailyCompletion, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date, expected YYYY-MM-DD")
	}

	var todos []models.Todo
	if err := db.Where("user_id = ? AND date = ?", userID, date).Find(&todos).Error; err != nil {
		return nil, err
	}

	total := len(todos)
	completed := 0
	for _, t := range todos {
		if t.IsCompleted {
			completed++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	completion := models.DailyCompletion{
		ID:                   utils.GenerateID(),
		UserID:               userID,
		Date:                 date,
		TotalTasks:           total,
		CompletedTasks:       completed,
		CompletionPercentage: percentage,
		UpdatedAt:            time.Now(),
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_tasks", "completed_tasks", "completion_percentage", "updated_at"}),
	}).Create(&completion).Error
	if err != nil {
		return nil, err
	}

	if percentage == 100 && total > 0 {
		notifyStreakCompletion(db, userID, date, total)
	}

	return &completion, nil
}

func notifyStreakCompletion(db *gorm.DB, userID, date string, total int) {
	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if config.Logger != nil {
			config.Logger.Errorw("streak fan-out: user lookup failed", "error", err, "userID", userID)
		}
		return
	}

	created, err := NotifyFriends(db, userID, FriendEvent{
		Type:    models.NotificationTypeStreakCompletion,
		Message: fmt.Sprintf("%s completed all tasks for %s", user.GetDisplayName(), date),
		Data: map[string]interface{}{
			"user_id":     userID,
			"username":    user.GetDisplayName(),
			"date":        date,
			"total_tasks": total,
		},
		Date: date,
	})
	if err != nil {
		if config.Logger != nil {
			config.Logger.Errorw("streak fan-out failed", "error", err, "userID", userID, "date", date)
		}
		return
	}

	if created > 0 && config.Logger != nil {
		config.Logger.Infow("streak fan-out", "userID", userID, "date", date, "notified", created)
	}
}
