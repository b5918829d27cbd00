package controllers

import (
	"net/http"

	"JATGo/config"
	"JATGo/models"
	"JATGo/services"
	"JATGo/utils"

	"github.com/gin-gonic/gin"
)

// FunctionsController hosts the handlers that used to run as standalone
// serverless functions. All are POST with JSON bodies; CORS and preflight
// are handled by the global middleware.
type FunctionsController struct{}

// CheckDailyCompletion recomputes and upserts the rollup for (user, date).
func (fnc *FunctionsController) CheckDailyCompletion(c *gin.Context) {
	var req models.CheckDailyCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and date are required"})
		return
	}

	completion, err := services.RecomputeCompletion(config.DB, req.UserID, req.Date)
	if err != nil {
		config.Logger.Errorw("daily completion check failed", "error", err, "userID", req.UserID, "date", req.Date)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CompletionResponse{
		Success:              true,
		CompletionPercentage: completion.CompletionPercentage,
		TotalTasks:           completion.TotalTasks,
		CompletedTasks:       completion.CompletedTasks,
	})
}

// EncryptPassword seals a vault password with the configured secret.
func (fnc *FunctionsController) EncryptPassword(c *gin.Context) {
	var req models.EncryptPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	encrypted, err := utils.EncryptPassword(config.C.VaultSecret, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"encrypted": encrypted})
}

// DecryptPassword reverses EncryptPassword.
func (fnc *FunctionsController) DecryptPassword(c *gin.Context) {
	var req models.DecryptPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "encrypted is required"})
		return
	}

	password, err := utils.DecryptPassword(config.C.VaultSecret, req.Encrypted)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"password": password})
}

// NotifyFriends fans a job-status change out to the subject's friends.
func (fnc *FunctionsController) NotifyFriends(c *gin.Context) {
	var req models.NotifyFriendsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", req.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown user"})
		return
	}

	link := "/jobs/" + req.JobID
	created, err := services.NotifyFriends(config.DB, req.UserID, services.FriendEvent{
		Type:    models.NotificationTypeFriendJobUpdate,
		Message: user.GetDisplayName() + " moved " + req.Role + " at " + req.Company + " to " + req.Status,
		Data: map[string]interface{}{
			"user_id": req.UserID,
			"company": req.Company,
			"role":    req.Role,
			"status":  req.Status,
			"job_id":  req.JobID,
		},
		Link: &link,
	})
	if err != nil {
		config.Logger.Errorw("notify-friends failed", "error", err, "userID", req.UserID)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notified": created})
}
