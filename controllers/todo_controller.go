package controllers

import (
	"net/http"
	"time"

	"JATGo/config"
	"JATGo/models"
	"JATGo/services"
	"JATGo/utils"

	"github.com/gin-gonic/gin"
)

type TodoController struct{}

// ListTodos returns the caller's todos for one date (default today).
func (tc *TodoController) ListTodos(c *gin.Context) {
	uid := c.GetString("uid")

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	var todos []models.Todo
	if err := config.DB.Where("user_id = ? AND date = ?", uid, date).
		Order("created_at asc").Find(&todos).Error; err != nil {
		config.Logger.Errorw("todo list failed", "error", err, "uid", uid, "date", date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load todos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"todos": todos, "date": date})
}

// CreateTodo creates a todo, or RepeatDays independent todos on
// consecutive days starting at the given date. Each affected day gets its
// completion rollup refreshed.
func (tc *TodoController) CreateTodo(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	if req.Date != "" {
		start, _ = time.Parse(models.DateLayout, req.Date)
	}

	days := req.RepeatDays
	if days < 1 {
		days = 1
	}

	todos := make([]models.Todo, 0, days)
	now := time.Now()
	for i := 0; i < days; i++ {
		todos = append(todos, models.Todo{
			ID:        utils.GenerateID(),
			UserID:    uid,
			Title:     req.Title,
			Date:      start.AddDate(0, 0, i).Format(models.DateLayout),
			ExpValue:  req.ExpValue,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := config.DB.Create(&todos).Error; err != nil {
		config.Logger.Errorw("todo creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create todo"})
		return
	}

	for i := range todos {
		tc.refresh(c, uid, todos[i].Date)
		services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
			Table: "todos", Action: services.ChangeActionInsert, Row: todos[i],
		})
	}

	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

// ToggleTodo flips is_completed without awarding EXP (EXP is only earned
// through the rated completion flow).
func (tc *TodoController) ToggleTodo(c *gin.Context) {
	uid := c.GetString("uid")
	todoID := c.Param("id")

	var todo models.Todo
	if err := config.DB.Where("id = ? AND user_id = ?", todoID, uid).First(&todo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}

	if err := config.DB.Model(&todo).Updates(map[string]interface{}{
		"is_completed": !todo.IsCompleted,
		"updated_at":   time.Now(),
	}).Error; err != nil {
		config.Logger.Errorw("todo toggle failed", "error", err, "todoID", todoID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update todo"})
		return
	}
	todo.IsCompleted = !todo.IsCompleted

	completion := tc.refresh(c, uid, todo.Date)
	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "todos", Action: services.ChangeActionUpdate, Row: todo,
	})

	c.JSON(http.StatusOK, gin.H{"todo": todo, "completion": completion})
}

// CompleteTodo completes a todo with a 1..5 quality rating and credits the
// earned EXP. Rating 0 or absent means no rating given and defaults to 5.
func (tc *TodoController) CompleteTodo(c *gin.Context) {
	uid := c.GetString("uid")
	todoID := c.Param("id")

	var req models.CompleteTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating == 0 {
		req.Rating = 5
	}

	result, err := services.CompleteTodoWithRating(config.DB, uid, todoID, req.Rating)
	if err != nil {
		config.Logger.Errorw("todo completion failed", "error", err, "todoID", todoID, "uid", uid)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completion := tc.refresh(c, uid, result.Todo.Date)
	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "todos", Action: services.ChangeActionUpdate, Row: result.Todo,
	})

	c.JSON(http.StatusOK, gin.H{
		"todo":          result.Todo,
		"earnedExp":     result.EarnedExp,
		"previousLevel": result.PreviousLevel,
		"stats": models.GamificationResponse{
			Level:        result.Level,
			CurrentExp:   result.CurrentExp,
			NextLevelExp: services.NextLevelExp(result.Level),
			TotalExp:     result.TotalExp,
		},
		"completion": completion,
	})
}

// DeleteTodo removes a todo and refreshes its day's rollup.
func (tc *TodoController) DeleteTodo(c *gin.Context) {
	uid := c.GetString("uid")
	todoID := c.Param("id")

	var todo models.Todo
	if err := config.DB.Where("id = ? AND user_id = ?", todoID, uid).First(&todo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}

	if err := config.DB.Delete(&todo).Error; err != nil {
		config.Logger.Errorw("todo deletion failed", "error", err, "todoID", todoID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete todo"})
		return
	}

	completion := tc.refresh(c, uid, todo.Date)
	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "todos", Action: services.ChangeActionDelete, Row: todo,
	})

	c.JSON(http.StatusOK, gin.H{"message": "todo deleted", "completion": completion})
}

// refresh reruns the aggregator for one day. The triggering todo mutation
// has already committed and stays committed; an aggregation failure is
// logged and reported as a nil rollup.
func (tc *TodoController) refresh(c *gin.Context, uid, date string) *models.DailyCompletion {
	completion, err := services.RecomputeCompletion(config.DB, uid, date)
	if err != nil {
		config.Logger.Errorw("completion recompute failed", "error", err, "uid", uid, "date", date)
		return nil
	}

	services.PublishChange(c.Request.Context(), uid, services.ChangeEvent{
		Table: "daily_completions", Action: services.ChangeActionUpdate, Row: completion,
	})
	return completion
}
