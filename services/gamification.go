package services

import (
	"fmt"
	"math"
	"time"

	"JATGo/models"

	"gorm.io/gorm"
)

// RatingMultipliers maps the 1..5 quality rating to an EXP multiplier.
var RatingMultipliers = map[int]float64{
	1: 0.4,
	2: 0.6,
	3: 0.8,
	4: 1.0,
	5: 1.2,
}

// DefaultExpValue is used when a todo has no EXP value set.
const DefaultExpValue = 10

// EarnedExp computes floor(base * multiplier) for a rating in 1..5.
func EarnedExp(baseExp, rating int) (int, error) {
	mult, ok := RatingMultipliers[rating]
	if !ok {
		return 0, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	if baseExp <= 0 {
		baseExp = DefaultExpValue
	}
	return int(math.Floor(float64(baseExp) * mult)), nil
}

// NextLevelExp is the EXP needed to clear the given level.
func NextLevelExp(level int) int {
	return level * 100
}

// LevelFromTotalExp derives level and in-level progress from cumulative
// EXP. Level L requires clearing thresholds 100, 200, ..., (L-1)*100, so
// the cumulative floor of level L is 100*L*(L-1)/2; currentExp is what
// remains above that floor.
func LevelFromTotalExp(totalExp int) (level, currentExp int) {
	if totalExp < 0 {
		totalExp = 0
	}
	level = 1
	for totalExp >= NextLevelExp(level) {
		totalExp -= NextLevelExp(level)
		level++
	}
	return level, totalExp
}

// CompleteTodoResult is what the completion transaction yields. Previous
// and new level are both present so callers can edge-detect level-ups.
type CompleteTodoResult struct {
	Todo          models.Todo
	EarnedExp     int
	TotalExp      int
	PreviousLevel int
	Level         int
	CurrentExp    int
}

// CompleteTodoWithRating marks the todo completed and credits the earned
// EXP in one transaction. The EXP credit is a single relative UPDATE
// (total_exp = total_exp + ?), never read-modify-write, so concurrent
// completions cannot lose updates.
func CompleteTodoWithRating(db *gorm.DB, userID, todoID string, rating int) (*CompleteTodoResult, error) {
	var result CompleteTodoResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var todo models.Todo
		if err := tx.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
			return err
		}
		if todo.IsCompleted {
			return fmt.Errorf("todo already completed")
		}

		earned, err := EarnedExp(todo.ExpValue, rating)
		if err != nil {
			return err
		}

		if err := tx.Model(&todo).Updates(map[string]interface{}{
			"is_completed": true,
			"updated_at":   time.Now(),
		}).Error; err != nil {
			return err
		}
		todo.IsCompleted = true

		res := tx.Model(&models.UserGamification{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"total_exp":  gorm.Expr("total_exp + ?", earned),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// stats row missing (user predates gamification); create it
			if err := tx.Create(&models.UserGamification{
				UserID:    userID,
				TotalExp:  earned,
				UpdatedAt: time.Now(),
			}).Error; err != nil {
				return err
			}
		}

		var stats models.UserGamification
		if err := tx.Where("user_id = ?", userID).First(&stats).Error; err != nil {
			return err
		}

		level, currentExp := LevelFromTotalExp(stats.TotalExp)
		prevLevel, _ := LevelFromTotalExp(stats.TotalExp - earned)

		result = CompleteTodoResult{
			Todo:          todo,
			EarnedExp:     earned,
			TotalExp:      stats.TotalExp,
			PreviousLevel: prevLevel,
			Level:         level,
			CurrentExp:    currentExp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
