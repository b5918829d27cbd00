package models

import "time"

// JobApplication tracks one application through its pipeline. Status is
// free-form (Applied, Interviewing, Offer, Rejected, ...); a status change
// fans out a FRIEND_JOB_UPDATE notification to the owner's friends.
type JobApplication struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"user_id"`
	Company   string    `gorm:"type:varchar(200)" json:"company"`
	Role      string    `gorm:"type:varchar(200)" json:"role"`
	Status    string    `gorm:"type:varchar(50)" json:"status"`
	Link      *string   `gorm:"type:varchar(500)" json:"link,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
