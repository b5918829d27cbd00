package models

import "time"

const (
	NotificationTypeStreakCompletion = "STREAK_COMPLETION"
	NotificationTypeFriendJobUpdate  = "FRIEND_JOB_UPDATE"
)

// Notification targets one recipient and is only ever created on behalf of
// another user's action, never self-targeted.
//
// DedupKey carries a day-scoped key for STREAK_COMPLETION rows and is nil
// for job updates; the unique index turns a duplicate streak fan-out into
// a no-op insert instead of a second notification.
type Notification struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index;uniqueIndex:uidx_notification_dedup" json:"user_id"`
	Type      string    `gorm:"type:varchar(30)" json:"type"`
	Message   string    `gorm:"type:text" json:"message"`
	Data      string    `gorm:"type:text" json:"data"`
	Link      *string   `gorm:"type:varchar(255)" json:"link,omitempty"`
	DedupKey  *string   `gorm:"type:varchar(100);uniqueIndex:uidx_notification_dedup" json:"-"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
