package controllers

import (
	"fmt"
	"net/http"
	"time"

	"JATGo/config"
	"JATGo/models"
	"JATGo/services"
	"JATGo/utils"

	"github.com/gin-gonic/gin"
)

type JobController struct{}

// ListJobs returns the caller's applications, newest first.
func (jc *JobController) ListJobs(c *gin.Context) {
	uid := c.GetString("uid")

	var jobs []models.JobApplication
	if err := config.DB.Where("user_id = ?", uid).Order("created_at desc").Find(&jobs).Error; err != nil {
		config.Logger.Errorw("job list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// CreateJob adds an application.
func (jc *JobController) CreateJob(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateJobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "Applied"
	}

	now := time.Now()
	job := models.JobApplication{
		ID:        utils.GenerateID(),
		UserID:    uid,
		Company:   req.Company,
		Role:      req.Role,
		Status:    status,
		Link:      req.Link,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := config.DB.Create(&job).Error; err != nil {
		config.Logger.Errorw("job creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create application"})
		return
	}

	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "job_applications", Action: services.ChangeActionInsert, Row: job,
	})

	c.JSON(http.StatusOK, gin.H{"job": job})
}

// UpdateJobStatus moves an application to a new pipeline status and fans
// the change out to friends. The fan-out is best-effort: its failure never
// fails the status update.
func (jc *JobController) UpdateJobStatus(c *gin.Context) {
	uid := c.GetString("uid")
	jobID := c.Param("id")

	var req models.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var job models.JobApplication
	if err := config.DB.Where("id = ? AND user_id = ?", jobID, uid).First(&job).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}

	if err := config.DB.Model(&job).Updates(map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now(),
	}).Error; err != nil {
		config.Logger.Errorw("job status update failed", "error", err, "jobID", jobID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update application"})
		return
	}
	job.Status = req.Status

	notified := notifyJobUpdate(uid, job)

	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "job_applications", Action: services.ChangeActionUpdate, Row: job,
	})

	c.JSON(http.StatusOK, gin.H{"job": job, "notified": notified})
}

// DeleteJob removes an application.
func (jc *JobController) DeleteJob(c *gin.Context) {
	uid := c.GetString("uid")
	jobID := c.Param("id")

	var job models.JobApplication
	if err := config.DB.Where("id = ? AND user_id = ?", jobID, uid).First(&job).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}

	if err := config.DB.Delete(&job).Error; err != nil {
		config.Logger.Errorw("job deletion failed", "error", err, "jobID", jobID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete application"})
		return
	}

	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "job_applications", Action: services.ChangeActionDelete, Row: job,
	})

	c.JSON(http.StatusOK, gin.H{"message": "application deleted"})
}

// notifyJobUpdate fans a status change out to the owner's friends.
func notifyJobUpdate(uid string, job models.JobApplication) int {
	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("job fan-out: user lookup failed", "error", err, "uid", uid)
		return 0
	}

	link := "/jobs/" + job.ID
	created, err := services.NotifyFriends(config.DB, uid, services.FriendEvent{
		Type: models.NotificationTypeFriendJobUpdate,
		Message: fmt.Sprintf("%s moved %s at %s to %s",
			user.GetDisplayName(), job.Role, job.Company, job.Status),
		Data: map[string]interface{}{
			"user_id": uid,
			"company": job.Company,
			"role":    job.Role,
			"status":  job.Status,
			"job_id":  job.ID,
		},
		Link: &link,
	})
	if err != nil {
		config.Logger.Errorw("job fan-out failed", "error", err, "uid", uid, "jobID", job.ID)
		return 0
	}

	return created
}
