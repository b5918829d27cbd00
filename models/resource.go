package models

import "time"

const (
	ResourceTypePDF  = "PDF"
	ResourceTypeLink = "LINK"
	ResourceTypeNote = "NOTE"

	ResourceStatusPending   = "pending"
	ResourceStatusCompleted = "completed"
)

// Resource doubles as a vault entry and a DSA problem. Problem state lives
// in the explicit Status/NeedsRevision fields; the old convention of
// encoding it in "Completed"/"Revise" tag strings is migrated once via
// MigrateTagStatus and not consulted afterwards.
type Resource struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(50);index" json:"user_id"`
	Title         string    `gorm:"type:varchar(200)" json:"title"`
	Type          string    `gorm:"type:varchar(10)" json:"type"`
	Content       string    `gorm:"type:text" json:"content"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	Tags          []string  `gorm:"serializer:json" json:"tags"`
	Status        string    `gorm:"type:varchar(20);default:pending" json:"status"`
	NeedsRevision bool      `gorm:"default:false" json:"needsRevision"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
