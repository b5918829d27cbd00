package controllers

import (
	"net/http"

	"JATGo/config"
	"JATGo/models"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{}

// ListNotifications returns the caller's notifications, newest first.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	uid := c.GetString("uid")

	query := config.DB.Where("user_id = ?", uid)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("created_at desc").Find(&notifications).Error; err != nil {
		config.Logger.Errorw("notification list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead flips is_read; the only mutation a recipient may make.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	uid := c.GetString("uid")
	notificationID := c.Param("id")

	res := config.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, uid).
		Update("is_read", true)
	if res.Error != nil {
		config.Logger.Errorw("notification update failed", "error", res.Error, "id", notificationID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
}

// DeleteNotification removes one of the caller's notifications.
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	uid := c.GetString("uid")
	notificationID := c.Param("id")

	res := config.DB.Where("id = ? AND user_id = ?", notificationID, uid).
		Delete(&models.Notification{})
	if res.Error != nil {
		config.Logger.Errorw("notification deletion failed", "error", res.Error, "id", notificationID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}
