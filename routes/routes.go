package routes

import (
	"JATGo/controllers"
	"JATGo/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	authController := controllers.AuthController{}
	todoController := controllers.TodoController{}
	completionController := controllers.CompletionController{}
	gamificationController := controllers.GamificationController{}
	resourceController := controllers.ResourceController{}
	jobController := controllers.JobController{}
	friendController := controllers.FriendController{}
	notificationController := controllers.NotificationController{}
	syncController := controllers.SyncController{}
	functionsController := controllers.FunctionsController{}

	// public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// authenticated routes
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/todos", todoController.ListTodos)
		private.POST("/todos", todoController.CreateTodo)
		private.PATCH("/todos/:id/toggle", todoController.ToggleTodo)
		private.POST("/todos/:id/complete", todoController.CompleteTodo)
		private.DELETE("/todos/:id", todoController.DeleteTodo)

		private.GET("/completions", completionController.GetCompletions)
		private.GET("/streaks", completionController.GetStreaks)
		private.GET("/gamification", gamificationController.GetStats)

		private.GET("/resources", resourceController.ListResources)
		private.POST("/resources", resourceController.CreateResource)
		private.PATCH("/resources/:id", resourceController.UpdateResource)
		private.DELETE("/resources/:id", resourceController.DeleteResource)

		private.GET("/jobs", jobController.ListJobs)
		private.POST("/jobs", jobController.CreateJob)
		private.PATCH("/jobs/:id/status", jobController.UpdateJobStatus)
		private.DELETE("/jobs/:id", jobController.DeleteJob)

		private.GET("/friends", friendController.ListFriends)
		private.GET("/friend-requests", friendController.ListFriendRequests)
		private.POST("/friend-requests/:id/accept", friendController.AcceptFriendRequest)
		private.POST("/friend-requests/:id/reject", friendController.RejectFriendRequest)

		private.GET("/notifications", notificationController.ListNotifications)
		private.PATCH("/notifications/:id/read", notificationController.MarkRead)
		private.DELETE("/notifications/:id", notificationController.DeleteNotification)

		private.GET("/sync/updates", syncController.GetUpdates)
		private.GET("/stream", syncController.StreamChanges)
	}

	// the former serverless functions; CORS-open, POST+JSON
	functions := r.Group("/functions")
	{
		functions.POST("/check-daily-completion", functionsController.CheckDailyCompletion)
		functions.POST("/encrypt-password", functionsController.EncryptPassword)
		functions.POST("/decrypt-password", functionsController.DecryptPassword)
		functions.POST("/notify-friends", functionsController.NotifyFriends)
		functions.POST("/friend-request", middleware.AuthMiddleware(), friendController.CreateFriendRequest)
	}

	// operator-only routes
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.POST("/resources/migrate-tags", resourceController.MigrateTagStatus)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
