package models

import "time"

// DailyCompletion is the per-day rollup of a user's todos. It is derived
// state: the aggregator overwrites it from the current todo set on every
// mutation, keyed uniquely by (user_id, date).
type DailyCompletion struct {
	ID                   string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID               string    `gorm:"type:varchar(50);uniqueIndex:uidx_completion_user_date" json:"user_id"`
	Date                 string    `gorm:"type:varchar(10);uniqueIndex:uidx_completion_user_date" json:"date"`
	TotalTasks           int       `gorm:"default:0" json:"totalTasks"`
	CompletedTasks       int       `gorm:"default:0" json:"completedTasks"`
	CompletionPercentage int       `gorm:"default:0" json:"completionPercentage"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
