package controllers

import (
	"net/http"
	"strings"
	"time"

	"JATGo/config"
	"JATGo/models"
	"JATGo/services"
	"JATGo/utils"

	"github.com/gin-gonic/gin"
)

type ResourceController struct{}

// ListResources returns the caller's vault, optionally filtered by type,
// status or a tag.
func (rc *ResourceController) ListResources(c *gin.Context) {
	uid := c.GetString("uid")

	query := config.DB.Where("user_id = ?", uid)
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	var resources []models.Resource
	if err := query.Order("created_at desc").Find(&resources).Error; err != nil {
		config.Logger.Errorw("resource list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load resources"})
		return
	}

	// tag filter applies after load; tags are stored serialized
	if tag := c.Query("tag"); tag != "" {
		filtered := resources[:0]
		for _, r := range resources {
			for _, t := range r.Tags {
				if t == tag {
					filtered = append(filtered, r)
					break
				}
			}
		}
		resources = filtered
	}

	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

// CreateResource adds a vault entry / DSA problem.
func (rc *ResourceController) CreateResource(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	resource := models.Resource{
		ID:          utils.GenerateID(),
		UserID:      uid,
		Title:       req.Title,
		Type:        req.Type,
		Content:     req.Content,
		Description: req.Description,
		Tags:        req.Tags,
		Status:      models.ResourceStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := config.DB.Create(&resource).Error; err != nil {
		config.Logger.Errorw("resource creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create resource"})
		return
	}

	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "resources", Action: services.ChangeActionInsert, Row: resource,
	})

	c.JSON(http.StatusOK, gin.H{"resource": resource})
}

// UpdateResource patches mutable fields; absent fields keep their values.
func (rc *ResourceController) UpdateResource(c *gin.Context) {
	uid := c.GetString("uid")
	resourceID := c.Param("id")

	var req models.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var resource models.Resource
	if err := config.DB.Where("id = ? AND user_id = ?", resourceID, uid).First(&resource).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Content != nil {
		resource.Content = *req.Content
	}
	if req.Description != nil {
		resource.Description = req.Description
	}
	if req.Tags != nil {
		resource.Tags = *req.Tags
	}
	if req.Status != nil {
		resource.Status = *req.Status
	}
	if req.NeedsRevision != nil {
		resource.NeedsRevision = *req.NeedsRevision
	}
	resource.UpdatedAt = time.Now()

	if err := config.DB.Save(&resource).Error; err != nil {
		config.Logger.Errorw("resource update failed", "error", err, "resourceID", resourceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update resource"})
		return
	}

	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "resources", Action: services.ChangeActionUpdate, Row: resource,
	})

	c.JSON(http.StatusOK, gin.H{"resource": resource})
}

// DeleteResource removes a vault entry.
func (rc *ResourceController) DeleteResource(c *gin.Context) {
	uid := c.GetString("uid")
	resourceID := c.Param("id")

	var resource models.Resource
	if err := config.DB.Where("id = ? AND user_id = ?", resourceID, uid).First(&resource).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	if err := config.DB.Delete(&resource).Error; err != nil {
		config.Logger.Errorw("resource deletion failed", "error", err, "resourceID", resourceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete resource"})
		return
	}

	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "resources", Action: services.ChangeActionDelete, Row: resource,
	})

	c.JSON(http.StatusOK, gin.H{"message": "resource deleted"})
}

// MigrateTagStatus is the one-time migration from the old tag-string
// status convention ("Completed"/"Revise" tags, matched case-insensitively
// since call sites disagreed on case) to the explicit fields. Operator
// endpoint, idempotent.
func (rc *ResourceController) MigrateTagStatus(c *gin.Context) {
	var resources []models.Resource
	if err := config.DB.Find(&resources).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load resources"})
		return
	}

	migrated := 0
	for i := range resources {
		r := &resources[i]
		completed, revise := false, false
		for _, tag := range r.Tags {
			switch strings.ToLower(tag) {
			case "completed":
				completed = true
			case "revise":
				revise = true
			}
		}

		status := models.ResourceStatusPending
		if completed {
			status = models.ResourceStatusCompleted
		}
		if r.Status == status && r.NeedsRevision == revise {
			continue
		}

		if err := config.DB.Model(r).Updates(map[string]interface{}{
			"status":         status,
			"needs_revision": revise,
		}).Error; err != nil {
			config.Logger.Errorw("tag migration failed", "error", err, "resourceID", r.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "migration failed", "migrated": migrated})
			return
		}
		migrated++
	}

	config.Logger.Infow("resource tag migration", "migrated", migrated, "scanned", len(resources))
	c.JSON(http.StatusOK, gin.H{"migrated": migrated, "scanned": len(resources)})
}
