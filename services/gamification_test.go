package services_test

import (
	"testing"
	"time"

	"JATGo/models"
	"JATGo/services"

	"github.com/stretchr/testify/assert"
)

func TestEarnedExp(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cases := []struct {
		base, rating, want int
	}{
		{10, 1, 4},
		{10, 2, 6},
		{10, 3, 8},
		{10, 4, 10},
		{10, 5, 12},
		{25, 3, 20},
		{7, 3, 5},  // floor(5.6)
		{0, 5, 12}, // unset base falls back to the default of 10
	}

	for _, tc := range cases {
		earned, err := services.EarnedExp(tc.base, tc.rating)
		assert.Nil(err)
		assert.Equal(tc.want, earned)
	}
}

func TestEarnedExpRejectsBadRating(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	for _, rating := range []int{-1, 0, 6, 100} {
		_, err := services.EarnedExp(10, rating)
		assert.NotNil(err)
	}
}

func TestLevelFromTotalExp(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cases := []struct {
		total, level, current int
	}{
		{0, 1, 0},
		{99, 1, 99},
		{100, 2, 0},   // level 1 cleared at 100
		{250, 2, 150}, // level 2 needs 200 more
		{300, 3, 0},
		{599, 3, 299},
		{600, 4, 0},
	}

	for _, tc := range cases {
		level, current := services.LevelFromTotalExp(tc.total)
		assert.Equal(tc.level, level, "total=%d", tc.total)
		assert.Equal(tc.current, current, "total=%d", tc.total)
	}
}

func TestCompleteTodoWithRating(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "alice")
	todo := addTodo(assert, db, user.ID, "2026-08-30", false)

	result, err := services.CompleteTodoWithRating(db, user.ID, todo.ID, 3)
	assert.Nil(err)
	assert.True(result.Todo.IsCompleted)
	assert.Equal(8, result.EarnedExp)
	assert.Equal(8, result.TotalExp)
	assert.Equal(1, result.Level)

	var stored models.Todo
	assert.Nil(db.Where("id = ?", todo.ID).First(&stored).Error)
	assert.True(stored.IsCompleted)
}

func TestCompleteTodoExpAccumulates(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "bob")

	first := addTodo(assert, db, user.ID, "2026-08-30", false)
	second := addTodo(assert, db, user.ID, "2026-08-30", false)

	r1, err := services.CompleteTodoWithRating(db, user.ID, first.ID, 3)
	assert.Nil(err)
	assert.Equal(8, r1.EarnedExp)

	r2, err := services.CompleteTodoWithRating(db, user.ID, second.ID, 5)
	assert.Nil(err)
	assert.Equal(12, r2.EarnedExp)
	assert.Equal(20, r2.TotalExp)

	var stats models.UserGamification
	assert.Nil(db.Where("user_id = ?", user.ID).First(&stats).Error)
	assert.Equal(20, stats.TotalExp)
}

func TestCompleteTodoLevelUpIsObservable(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "carol")
	todo := addTodo(assert, db, user.ID, "2026-08-30", false)

	assert.Nil(db.Model(&models.UserGamification{}).Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{"total_exp": 95, "updated_at": time.Now()}).Error)

	result, err := services.CompleteTodoWithRating(db, user.ID, todo.ID, 5)
	assert.Nil(err)
	assert.Equal(107, result.TotalExp)
	assert.Equal(1, result.PreviousLevel)
	assert.Equal(2, result.Level)
	assert.Equal(7, result.CurrentExp)
}

func TestCompleteTodoAlreadyCompleted(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "dave")
	todo := addTodo(assert, db, user.ID, "2026-08-30", true)

	_, err := services.CompleteTodoWithRating(db, user.ID, todo.ID, 5)
	assert.NotNil(err)

	var stats models.UserGamification
	assert.Nil(db.Where("user_id = ?", user.ID).First(&stats).Error)
	assert.Equal(0, stats.TotalExp)
}

func TestCompleteTodoBadRatingLeavesStateAlone(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	user := addUser(assert, db, "erin")
	todo := addTodo(assert, db, user.ID, "2026-08-30", false)

	_, err := services.CompleteTodoWithRating(db, user.ID, todo.ID, 9)
	assert.NotNil(err)

	var stored models.Todo
	assert.Nil(db.Where("id = ?", todo.ID).First(&stored).Error)
	assert.False(stored.IsCompleted)
}

func TestCompleteTodoWrongUser(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	db := newTestDB(t)
	owner := addUser(assert, db, "frank")
	other := addUser(assert, db, "grace")
	todo := addTodo(assert, db, owner.ID, "2026-08-30", false)

	_, err := services.CompleteTodoWithRating(db, other.ID, todo.ID, 5)
	assert.NotNil(err)
}
