package models

// CompletionResponse mirrors the check-daily-completion function response.
type CompletionResponse struct {
	Success              bool `json:"success"`
	CompletionPercentage int  `json:"completion_percentage"`
	TotalTasks           int  `json:"total_tasks"`
	CompletedTasks       int  `json:"completed_tasks"`
}

// StreaksResponse reports the two streak figures.
type StreaksResponse struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// GamificationResponse exposes stored total EXP plus the values derived
// from it.
type GamificationResponse struct {
	Level        int `json:"level"`
	CurrentExp   int `json:"currentExp"`
	NextLevelExp int `json:"nextLevelExp"`
	TotalExp     int `json:"totalExp"`
}

// CompleteTodoResponse lets the client edge-detect level-ups.
type CompleteTodoResponse struct {
	Todo          Todo                 `json:"todo"`
	EarnedExp     int                  `json:"earnedExp"`
	PreviousLevel int                  `json:"previousLevel"`
	Stats         GamificationResponse `json:"stats"`
}

// SyncUpdatesResponse carries everything changed since the client's last
// sync timestamp.
type SyncUpdatesResponse struct {
	Todos         []Todo            `json:"todos"`
	Completions   []DailyCompletion `json:"completions"`
	Resources     []Resource        `json:"resources"`
	Notifications []Notification    `json:"notifications"`
}
