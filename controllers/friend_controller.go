package controllers

import (
	"net/http"
	"time"

	"JATGo/config"
	"JATGo/models"
	"JATGo/services"
	"JATGo/utils"

	"github.com/gin-gonic/gin"
)

type FriendController struct{}

// ListFriends resolves the caller's friend set and returns user summaries.
func (fc *FriendController) ListFriends(c *gin.Context) {
	uid := c.GetString("uid")

	friendIDs, err := services.ResolveFriends(config.DB, uid)
	if err != nil {
		config.Logger.Errorw("friend resolution failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friends"})
		return
	}

	friends := []gin.H{}
	if len(friendIDs) > 0 {
		var users []models.User
		if err := config.DB.Where("id IN ?", friendIDs).Find(&users).Error; err != nil {
			config.Logger.Errorw("friend lookup failed", "error", err, "uid", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friends"})
			return
		}
		for _, u := range users {
			friends = append(friends, gin.H{
				"id":       u.ID,
				"username": u.GetDisplayName(),
				"email":    u.Email,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// CreateFriendRequest sends a request to a receiver by email. A duplicate
// pending request from the same sender to the same email is rejected.
func (fc *FriendController) CreateFriendRequest(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	var sender models.User
	if err := config.DB.Where("id = ?", uid).First(&sender).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unauthenticated"})
		return
	}

	if sender.Email == req.Email {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot send a friend request to yourself"})
		return
	}

	var existing models.FriendRequest
	err := config.DB.Where("sender_id = ? AND receiver_email = ? AND status = ?",
		uid, req.Email, models.FriendRequestStatusPending).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "friend request already pending"})
		return
	}

	request := models.FriendRequest{
		ID:            utils.GenerateID(),
		SenderID:      uid,
		SenderEmail:   sender.Email,
		ReceiverEmail: req.Email,
		Status:        models.FriendRequestStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := config.DB.Create(&request).Error; err != nil {
		config.Logger.Errorw("friend request creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create friend request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request sent", "request": request})
}

// ListFriendRequests returns pending requests addressed to the caller and
// requests the caller sent.
func (fc *FriendController) ListFriendRequests(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var incoming []models.FriendRequest
	if err := config.DB.Where("receiver_email = ? AND status = ?",
		user.Email, models.FriendRequestStatusPending).Find(&incoming).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friend requests"})
		return
	}

	var outgoing []models.FriendRequest
	if err := config.DB.Where("sender_id = ?", uid).Find(&outgoing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friend requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"incoming": incoming, "outgoing": outgoing})
}

// AcceptFriendRequest moves a pending request to ACCEPTED and creates the
// single canonical friendship row in the same transaction. A duplicate
// pair insert means the friendship already exists and is logged, not
// surfaced.
func (fc *FriendController) AcceptFriendRequest(c *gin.Context) {
	uid := c.GetString("uid")
	requestID := c.Param("id")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var request models.FriendRequest
	if err := config.DB.Where("id = ? AND receiver_email = ? AND status = ?",
		requestID, user.Email, models.FriendRequestStatusPending).First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pending friend request not found"})
		return
	}

	a, b := models.CanonicalPair(request.SenderID, uid)

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&request).Update("status", models.FriendRequestStatusAccepted).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept friend request"})
		return
	}

	var existing models.Friendship
	if err := tx.Where("user_id = ? AND friend_id = ?", a, b).First(&existing).Error; err != nil {
		friendship := models.Friendship{
			ID:        utils.GenerateID(),
			UserID:    a,
			FriendID:  b,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&friendship).Error; err != nil {
			// pair already exists (raced with another accept); not fatal
			config.Logger.Warnw("friendship insert conflict", "error", err, "userA", a, "userB", b)
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept friend request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request accepted"})
}

// RejectFriendRequest moves a pending request to REJECTED. Terminal.
func (fc *FriendController) RejectFriendRequest(c *gin.Context) {
	uid := c.GetString("uid")
	requestID := c.Param("id")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var request models.FriendRequest
	if err := config.DB.Where("id = ? AND receiver_email = ? AND status = ?",
		requestID, user.Email, models.FriendRequestStatusPending).First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pending friend request not found"})
		return
	}

	if err := config.DB.Model(&request).Update("status", models.FriendRequestStatusRejected).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject friend request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request rejected"})
}
