package models

import "time"

// DateLayout is the calendar-date format used for todo and completion keys.
const DateLayout = "2006-01-02"

// Todo is a single task pinned to one calendar day. Date never changes
// after creation; the "repeat for N days" mode creates N independent rows.
type Todo struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index:idx_todos_user_date" json:"user_id"`
	Title       string    `gorm:"type:varchar(200)" json:"title"`
	IsCompleted bool      `gorm:"default:false" json:"isCompleted"`
	Date        string    `gorm:"type:varchar(10);index:idx_todos_user_date" json:"date"`
	ExpValue    int       `gorm:"default:10" json:"expValue"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
