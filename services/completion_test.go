package services_test

import (
	"testing"

	"JATGo/models"
	"JATGo/services"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeCompletionCounts(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "alice")

	addTodo(assert, db, user.ID, "2026-08-30", true)
	addTodo(assert, db, user.ID, "2026-08-30", true)
	addTodo(assert, db, user.ID, "2026-08-30", false)

	completion, err := services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)
	assert.Equal(3, completion.TotalTasks)
	assert.Equal(2, completion.CompletedTasks)
	assert.Equal(67, completion.CompletionPercentage) // round(66.67)
}

func TestRecomputeCompletionNoTasks(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "bob")

	completion, err := services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)
	assert.Equal(0, completion.TotalTasks)
	assert.Equal(0, completion.CompletedTasks)
	assert.Equal(0, completion.CompletionPercentage)
}

func TestRecomputeCompletionRejectsBadDate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)

	_, err := services.RecomputeCompletion(db, "someone", "30/08/2026")
	assert.NotNil(err)
}

func TestRecomputeCompletionIdempotent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "carol")

	addTodo(assert, db, user.ID, "2026-08-30", true)
	addTodo(assert, db, user.ID, "2026-08-30", false)

	first, err := services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)

	second, err := services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)

	assert.Equal(first.TotalTasks, second.TotalTasks)
	assert.Equal(first.CompletedTasks, second.CompletedTasks)
	assert.Equal(first.CompletionPercentage, second.CompletionPercentage)

	// the upsert never grows a second row for the same (user, date)
	var count int64
	assert.Nil(db.Model(&models.DailyCompletion{}).
		Where("user_id = ? AND date = ?", user.ID, "2026-08-30").Count(&count).Error)
	assert.Equal(int64(1), count)
}

func TestRecomputeCompletionUpsertsAfterToggle(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "dave")

	todo := addTodo(assert, db, user.ID, "2026-08-30", false)

	completion, err := services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)
	assert.Equal(0, completion.CompletionPercentage)

	assert.Nil(db.Model(todo).Update("is_completed", true).Error)

	completion, err = services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)
	assert.Equal(100, completion.CompletionPercentage)

	var stored models.DailyCompletion
	assert.Nil(db.Where("user_id = ? AND date = ?", user.ID, "2026-08-30").First(&stored).Error)
	assert.Equal(100, stored.CompletionPercentage)
	assert.Equal(1, stored.TotalTasks)
}

func TestRecomputeCompletionFansOutAtHundredPercent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "erin")
	friend := addUser(assert, db, "frank")
	addFriendship(assert, db, user.ID, friend.ID)

	addTodo(assert, db, user.ID, "2026-08-30", true)

	_, err := services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)

	var notifications []models.Notification
	assert.Nil(db.Where("user_id = ?", friend.ID).Find(&notifications).Error)
	assert.Len(notifications, 1)
	assert.Equal(models.NotificationTypeStreakCompletion, notifications[0].Type)

	// the subject never notifies themselves
	var selfCount int64
	assert.Nil(db.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&selfCount).Error)
	assert.Equal(int64(0), selfCount)
}

func TestRecomputeCompletionStreakFanOutDedupedPerDay(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "grace")
	friend := addUser(assert, db, "henry")
	addFriendship(assert, db, user.ID, friend.ID)

	todo := addTodo(assert, db, user.ID, "2026-08-30", true)

	_, err := services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)

	// toggle off and back on; the day re-reaches 100% twice
	assert.Nil(db.Model(todo).Update("is_completed", false).Error)
	_, err = services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)
	assert.Nil(db.Model(todo).Update("is_completed", true).Error)
	_, err = services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)

	var count int64
	assert.Nil(db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", friend.ID, models.NotificationTypeStreakCompletion).
		Count(&count).Error)
	assert.Equal(int64(1), count)
}

func TestRecomputeCompletionPartialDayNoFanOut(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "ivy")
	friend := addUser(assert, db, "jack")
	addFriendship(assert, db, user.ID, friend.ID)

	addTodo(assert, db, user.ID, "2026-08-30", true)
	addTodo(assert, db, user.ID, "2026-08-30", false)

	_, err := services.RecomputeCompletion(db, user.ID, "2026-08-30")
	assert.Nil(err)

	var count int64
	assert.Nil(db.Model(&models.Notification{}).Where("user_id = ?", friend.ID).Count(&count).Error)
	assert.Equal(int64(0), count)
}
