package controllers

import (
	"io"
	"net/http"
	"time"

	"JATGo/config"
	"JATGo/models"
	"JATGo/services"

	"github.com/gin-gonic/gin"
)

type SyncController struct{}

// GetUpdates returns every row of the caller's that changed since
// lastSyncDate. Clients that missed stream events catch up here.
func (sc *SyncController) GetUpdates(c *gin.Context) {
	uid := c.GetString("uid")

	lastSyncDateStr := c.Query("lastSyncDate")
	var lastSyncDate time.Time
	var err error

	if lastSyncDateStr != "" {
		lastSyncDate, err = time.Parse(time.RFC3339, lastSyncDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lastSyncDate, expected RFC3339"})
			return
		}
	} else {
		lastSyncDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	var resp models.SyncUpdatesResponse

	if err := config.DB.Where("user_id = ? AND updated_at > ?", uid, lastSyncDate).
		Find(&resp.Todos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load todo updates"})
		return
	}

	if err := config.DB.Where("user_id = ? AND updated_at > ?", uid, lastSyncDate).
		Find(&resp.Completions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load completion updates"})
		return
	}

	if err := config.DB.Where("user_id = ? AND updated_at > ?", uid, lastSyncDate).
		Find(&resp.Resources).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load resource updates"})
		return
	}

	if err := config.DB.Where("user_id = ? AND created_at > ?", uid, lastSyncDate).
		Find(&resp.Notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notification updates"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// StreamChanges holds an SSE stream open and forwards the caller's change
// events until the client disconnects. The subscription is torn down on
// exit so nothing leaks.
func (sc *SyncController) StreamChanges(c *gin.Context) {
	uid := c.GetString("uid")

	events, cancel := services.SubscribeChanges(c.Request.Context(), uid)
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("change", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
