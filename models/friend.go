package models

import "time"

const (
	FriendRequestStatusPending  = "PENDING"
	FriendRequestStatusAccepted = "ACCEPTED"
	FriendRequestStatusRejected = "REJECTED"
)

// Friendship stores one row per unordered pair, canonical ordering
// (UserID < FriendID) enforced at insert by CanonicalPair. A single unique
// index replaces the dual-row scheme and its half-written races; resolution
// still uses an OR query so legacy rows in either direction keep working.
type Friendship struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);uniqueIndex:uidx_friend_pair" json:"user_id"`
	FriendID  string    `gorm:"type:varchar(50);uniqueIndex:uidx_friend_pair" json:"friend_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// CanonicalPair orders two user ids for friendship storage.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// FriendRequest is terminal after either transition out of PENDING.
type FriendRequest struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	SenderID      string    `gorm:"type:varchar(50);index" json:"sender_id"`
	SenderEmail   string    `gorm:"type:varchar(100)" json:"sender_email"`
	ReceiverEmail string    `gorm:"type:varchar(100);index" json:"receiver_email"`
	Status        string    `gorm:"type:varchar(20);default:PENDING" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
