package models

import (
	"fmt"
	"time"
)

// RegisterRequest creates a user account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateTodoRequest creates one todo, or RepeatDays independent todos on
// consecutive calendar days starting at Date.
type CreateTodoRequest struct {
	Title      string `json:"title" binding:"required"`
	Date       string `json:"date"`
	ExpValue   int    `json:"expValue"`
	RepeatDays int    `json:"repeatDays"`
}

func (r *CreateTodoRequest) Validate() error {
	if r.Date != "" {
		if _, err := time.Parse(DateLayout, r.Date); err != nil {
			return fmt.Errorf("invalid date, expected YYYY-MM-DD")
		}
	}
	if r.RepeatDays < 0 || r.RepeatDays > 365 {
		return fmt.Errorf("repeatDays must be between 0 and 365")
	}
	return nil
}

// CompleteTodoRequest completes a todo with a quality rating. Rating 0 or
// absent means the caller skipped rating and gets the full multiplier.
type CompleteTodoRequest struct {
	Rating int `json:"rating"`
}

// CheckDailyCompletionRequest is the body of the check-daily-completion
// function endpoint.
type CheckDailyCompletionRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

// EncryptPasswordRequest / DecryptPasswordRequest are the vault function
// bodies.
type EncryptPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type DecryptPasswordRequest struct {
	Encrypted string `json:"encrypted" binding:"required"`
}

// CreateFriendRequestRequest targets a receiver by email.
type CreateFriendRequestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// NotifyFriendsRequest is the body of the notify-friends function endpoint.
type NotifyFriendsRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Company string `json:"company" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Status  string `json:"status" binding:"required"`
	JobID   string `json:"job_id" binding:"required"`
}

// CreateResourceRequest creates a vault entry / DSA problem.
type CreateResourceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=PDF LINK NOTE"`
	Content     string   `json:"content"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

// UpdateResourceRequest updates mutable resource fields; nil means keep.
type UpdateResourceRequest struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	Description   *string   `json:"description"`
	Tags          *[]string `json:"tags"`
	Status        *string   `json:"status"`
	NeedsRevision *bool     `json:"needsRevision"`
}

func (r *UpdateResourceRequest) Validate() error {
	if r.Status != nil && *r.Status != ResourceStatusPending && *r.Status != ResourceStatusCompleted {
		return fmt.Errorf("status must be pending or completed")
	}
	return nil
}

// CreateJobApplicationRequest creates a job application.
type CreateJobApplicationRequest struct {
	Company string  `json:"company" binding:"required"`
	Role    string  `json:"role" binding:"required"`
	Status  string  `json:"status"`
	Link    *string `json:"link"`
	Notes   string  `json:"notes"`
}

// UpdateJobStatusRequest moves an application to a new pipeline status.
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
