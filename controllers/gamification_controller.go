package controllers

import (
	"net/http"

	"JATGo/config"
	"JATGo/models"
	"JATGo/services"

	"github.com/gin-gonic/gin"
)

type GamificationController struct{}

// GetStats returns stored total EXP and the level/progress derived from it.
func (gc *GamificationController) GetStats(c *gin.Context) {
	uid := c.GetString("uid")

	var stats models.UserGamification
	if err := config.DB.Where("user_id = ?", uid).First(&stats).Error; err != nil {
		config.Logger.Errorw("gamification stats load failed", "error", err, "uid", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "gamification stats not found"})
		return
	}

	level, currentExp := services.LevelFromTotalExp(stats.TotalExp)

	c.JSON(http.StatusOK, models.GamificationResponse{
		Level:        level,
		CurrentExp:   currentExp,
		NextLevelExp: services.NextLevelExp(level),
		TotalExp:     stats.TotalExp,
	})
}
