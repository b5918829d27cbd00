package models

import "time"

// UserGamification stores the authoritative cumulative EXP for a user.
// Level and progress are derived from TotalExp at read time, never stored,
// so the two representations cannot drift.
type UserGamification struct {
	UserID    string    `gorm:"type:varchar(50);primaryKey" json:"user_id"`
	TotalExp  int       `gorm:"default:0" json:"totalExp"`
	UpdatedAt time.Time `json:"updatedAt"`
}
