package controllers

import (
	"net/http"
	"strconv"
	"time"

	"JATGo/config"
	"JATGo/models"
	"JATGo/services"

	"github.com/gin-gonic/gin"
)

type CompletionController struct{}

// completionHistory loads up to `days` of rollups ending today.
func completionHistory(uid string, days int) ([]models.DailyCompletion, error) {
	since := time.Now().AddDate(0, 0, -days).Format(models.DateLayout)

	var history []models.DailyCompletion
	err := config.DB.Where("user_id = ? AND date > ?", uid, since).
		Order("date asc").Find(&history).Error
	return history, err
}

// GetCompletions returns the caller's completion history, newest window
// first capped at the streak window.
func (cc *CompletionController) GetCompletions(c *gin.Context) {
	uid := c.GetString("uid")

	days := services.StreakWindowDays
	if q := c.Query("days"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 1 || parsed > services.StreakWindowDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
			return
		}
		days = parsed
	}

	history, err := completionHistory(uid, days)
	if err != nil {
		config.Logger.Errorw("completion history load failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load completions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completions": history})
}

// GetStreaks recomputes both streak figures from the full window.
func (cc *CompletionController) GetStreaks(c *gin.Context) {
	uid := c.GetString("uid")

	history, err := completionHistory(uid, services.StreakWindowDays)
	if err != nil {
		config.Logger.Errorw("completion history load failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load completions"})
		return
	}

	streaks := services.ComputeStreaks(history, time.Now().Format(models.DateLayout))

	c.JSON(http.StatusOK, models.StreaksResponse{
		CurrentStreak: streaks.CurrentStreak,
		LongestStreak: streaks.LongestStreak,
	})
}
