package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"JATGo/config"
	"JATGo/models"
	"JATGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func getJSON(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTodoRepeatDays(t *testing.T) {
	assert := assert.New(t)
	r := setupRouter(t)
	user := seedUser(assert, "alice")
	token, _ := utils.GenerateToken(user.ID)

	w := postJSON(r, "/api/v1/todos", token, gin.H{
		"title":      "morning run",
		"date":       "2026-08-30",
		"repeatDays": 3,
	})
	assert.Equal(http.StatusOK, w.Code)

	// three independent rows on consecutive days
	var todos []models.Todo
	assert.Nil(config.DB.Where("user_id = ?", user.ID).Order("date asc").Find(&todos).Error)
	assert.Len(todos, 3)
	assert.Equal("2026-08-30", todos[0].Date)
	assert.Equal("2026-08-31", todos[1].Date)
	assert.Equal("2026-09-01", todos[2].Date)

	// each day got its rollup seeded
	var completions []models.DailyCompletion
	assert.Nil(config.DB.Where("user_id = ?", user.ID).Find(&completions).Error)
	assert.Len(completions, 3)
	for _, c := range completions {
		assert.Equal(1, c.TotalTasks)
		assert.Equal(0, c.CompletedTasks)
	}
}

func TestCreateTodoRejectsBadDate(t *testing.T) {
	assert := assert.New(t)
	r := setupRouter(t)
	user := seedUser(assert, "bob")
	token, _ := utils.GenerateToken(user.ID)

	w := postJSON(r, "/api/v1/todos", token, gin.H{"title": "x", "date": "30-08-2026"})
	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestCompleteTodoDefaultsRatingToFive(t *testing.T) {
	assert := assert.New(t)
	r := setupRouter(t)
	user := seedUser(assert, "carol")
	token, _ := utils.GenerateToken(user.ID)

	todo := models.Todo{
		ID: utils.GenerateID(), UserID: user.ID, Title: "t",
		Date: "2026-08-30", ExpValue: 10,
	}
	assert.Nil(config.DB.Create(&todo).Error)

	// no rating in the body: caller policy treats it as 5
	w := postJSON(r, "/api/v1/todos/"+todo.ID+"/complete", token, gin.H{})
	assert.Equal(http.StatusOK, w.Code)

	var resp struct {
		EarnedExp int `json:"earnedExp"`
		Stats     struct {
			TotalExp int `json:"totalExp"`
		} `json:"stats"`
	}
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(12, resp.EarnedExp)
	assert.Equal(12, resp.Stats.TotalExp)
}

func TestToggleTodoUpdatesRollup(t *testing.T) {
	assert := assert.New(t)
	r := setupRouter(t)
	user := seedUser(assert, "dave")
	token, _ := utils.GenerateToken(user.ID)

	todo := models.Todo{
		ID: utils.GenerateID(), UserID: user.ID, Title: "t", Date: "2026-08-30",
	}
	assert.Nil(config.DB.Create(&todo).Error)

	w := postJSON(r, "/api/v1/todos", token, gin.H{"title": "second", "date": "2026-08-30"})
	assert.Equal(http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/todos/"+todo.ID+"/toggle", nil)
	req.Header.Set("Authorization", token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(http.StatusOK, w.Code)

	var completion models.DailyCompletion
	assert.Nil(config.DB.Where("user_id = ? AND date = ?", user.ID, "2026-08-30").First(&completion).Error)
	assert.Equal(2, completion.TotalTasks)
	assert.Equal(1, completion.CompletedTasks)
	assert.Equal(50, completion.CompletionPercentage)
}

func TestStreaksEndpoint(t *testing.T) {
	assert := assert.New(t)
	r := setupRouter(t)
	user := seedUser(assert, "erin")
	token, _ := utils.GenerateToken(user.ID)

	w := getJSON(r, "/api/v1/streaks", token)
	assert.Equal(http.StatusOK, w.Code)

	var resp models.StreaksResponse
	assert.Nil(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(0, resp.CurrentStreak)
	assert.Equal(0, resp.LongestStreak)
}

func TestTodosRequireAuth(t *testing.T) {
	assert := assert.New(t)
	r := setupRouter(t)

	w := getJSON(r, "/api/v1/todos", "")
	assert.Equal(http.StatusUnauthorized, w.Code)
}
