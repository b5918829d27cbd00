package services

import (
	"encoding/json"
	"fmt"
	"time"

	"JATGo/models"
	"JATGo/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendEvent describes a triggering action to fan out. SubjectID is the
// acting user; they never receive their own notification.
type FriendEvent struct {
	Type    string
	Message string
	Data    map[string]interface{}
	Link    *string
	// Date scopes STREAK_COMPLETION dedup to one calendar day.
	Date string
}

// ResolveFriends returns the subject's friend set. The OR query finds the
// pair regardless of which direction a row was stored in, so rows written
// under the old dual-row scheme still resolve.
func ResolveFriends(db *gorm.DB, userID string) ([]string, error) {
	var rows []models.Friendship
	if err := db.Where("user_id = ? OR friend_id = ?", userID, userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	friends := make([]string, 0, len(rows))
	for _, row := range rows {
		other := row.FriendID
		if other == userID {
			other = row.UserID
		}
		if other == userID || seen[other] {
			continue
		}
		seen[other] = true
		friends = append(friends, other)
	}

	return friends, nil
}

// NotifyFriends inserts one notification per friend of the subject and
// returns how many rows were actually created.
//
// STREAK_COMPLETION rows carry a (subject, date) dedup key; the unique
// index on (user_id, dedup_key) makes a repeat fan-out for the same day a
// conflict, which is treated as "already notified" rather than an error.
// FRIEND_JOB_UPDATE rows have no dedup key and always insert.
func NotifyFriends(db *gorm.DB, subjectID string, event FriendEvent) (int, error) {
	friends, err := ResolveFriends(db, subjectID)
	if err != nil {
		return 0, err
	}
	if len(friends) == 0 {
		return 0, nil
	}

	payload, err := json.Marshal(event.Data)
	if err != nil {
		return 0, err
	}

	var dedupKey *string
	if event.Type == models.NotificationTypeStreakCompletion {
		key := fmt.Sprintf("streak:%s:%s", subjectID, event.Date)
		dedupKey = &key
	}

	notifications := make([]models.Notification, 0, len(friends))
	for _, friendID := range friends {
		notifications = append(notifications, models.Notification{
			ID:        utils.GenerateID(),
			UserID:    friendID,
			Type:      event.Type,
			Message:   event.Message,
			Data:      string(payload),
			Link:      event.Link,
			DedupKey:  dedupKey,
			CreatedAt: time.Now(),
		})
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&notifications)
	if res.Error != nil {
		return 0, res.Error
	}

	return int(res.RowsAffected), nil
}
