package services_test

import (
	"encoding/json"
	"testing"

	"JATGo/models"
	"JATGo/services"

	"github.com/stretchr/testify/assert"
)

func TestResolveFriendsSymmetric(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	alice := addUser(assert, db, "alice")
	bob := addUser(assert, db, "bob")

	// one directed row must be enough for both sides
	addFriendship(assert, db, alice.ID, bob.ID)

	friends, err := services.ResolveFriends(db, alice.ID)
	assert.Nil(err)
	assert.Equal([]string{bob.ID}, friends)

	friends, err = services.ResolveFriends(db, bob.ID)
	assert.Nil(err)
	assert.Equal([]string{alice.ID}, friends)
}

func TestResolveFriendsDeduplicatesLegacyRows(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	alice := addUser(assert, db, "alice")
	bob := addUser(assert, db, "bob")

	// a legacy dual-row pair stored in both directions
	addFriendship(assert, db, alice.ID, bob.ID)
	addFriendship(assert, db, bob.ID, alice.ID)

	friends, err := services.ResolveFriends(db, alice.ID)
	assert.Nil(err)
	assert.Len(friends, 1)
}

func TestResolveFriendsNoFriends(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	alice := addUser(assert, db, "alice")

	friends, err := services.ResolveFriends(db, alice.ID)
	assert.Nil(err)
	assert.Empty(friends)
}

func TestNotifyFriendsJobUpdate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	subject := addUser(assert, db, "subject")
	f1 := addUser(assert, db, "friend1")
	f2 := addUser(assert, db, "friend2")
	addFriendship(assert, db, subject.ID, f1.ID)
	addFriendship(assert, db, subject.ID, f2.ID)

	link := "/jobs/job-1"
	event := services.FriendEvent{
		Type:    models.NotificationTypeFriendJobUpdate,
		Message: "subject moved Engineer at Initech to Offer",
		Data: map[string]interface{}{
			"user_id": subject.ID,
			"company": "Initech",
			"role":    "Engineer",
			"status":  "Offer",
			"job_id":  "job-1",
		},
		Link: &link,
	}

	created, err := services.NotifyFriends(db, subject.ID, event)
	assert.Nil(err)
	assert.Equal(2, created)

	var row models.Notification
	assert.Nil(db.Where("user_id = ?", f1.ID).First(&row).Error)
	assert.Equal(models.NotificationTypeFriendJobUpdate, row.Type)
	assert.NotNil(row.Link)
	assert.Equal(link, *row.Link)

	var payload map[string]interface{}
	assert.Nil(json.Unmarshal([]byte(row.Data), &payload))
	assert.Equal("Initech", payload["company"])
	assert.Equal("job-1", payload["job_id"])

	// job updates are not deduplicated; a second status change notifies again
	created, err = services.NotifyFriends(db, subject.ID, event)
	assert.Nil(err)
	assert.Equal(2, created)
}

func TestNotifyFriendsStreakDeduplicatedPerDay(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	subject := addUser(assert, db, "subject")
	friend := addUser(assert, db, "friend")
	addFriendship(assert, db, subject.ID, friend.ID)

	event := services.FriendEvent{
		Type:    models.NotificationTypeStreakCompletion,
		Message: "subject completed all tasks",
		Data:    map[string]interface{}{"user_id": subject.ID, "date": "2026-08-30"},
		Date:    "2026-08-30",
	}

	created, err := services.NotifyFriends(db, subject.ID, event)
	assert.Nil(err)
	assert.Equal(1, created)

	created, err = services.NotifyFriends(db, subject.ID, event)
	assert.Nil(err)
	assert.Equal(0, created)

	// a different day notifies again
	event.Date = "2026-08-31"
	created, err = services.NotifyFriends(db, subject.ID, event)
	assert.Nil(err)
	assert.Equal(1, created)
}

func TestNotifyFriendsNoFriendsNoRows(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	subject := addUser(assert, db, "loner")

	created, err := services.NotifyFriends(db, subject.ID, services.FriendEvent{
		Type:    models.NotificationTypeFriendJobUpdate,
		Message: "nobody hears this",
		Data:    map[string]interface{}{},
	})
	assert.Nil(err)
	assert.Equal(0, created)

	var count int64
	assert.Nil(db.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(int64(0), count)
}
