package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liftlog/workout-app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	workoutService service.WorkoutService,
	advisorService service.AdvisorService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	workoutHandler := NewWorkoutHandler(workoutService)
	chatHandler := NewChatHandler(advisorService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)
		protected.GET("/profile/metrics", profileHandler.GetMetrics)
		protected.POST("/avatar", profileHandler.UploadAvatar)

		// --- Active Session ---
		sessions := protected.Group("/sessions")
		{
			sessions.POST("", workoutHandler.StartSession)
			sessions.GET("/active", workoutHandler.GetActiveSession)
			sessions.POST("/active/complete", workoutHandler.CompleteSession)
			sessions.DELETE("/active", workoutHandler.DiscardSession)

			sessions.POST("/active/exercises", workoutHandler.AddExercise)
			sessions.DELETE("/active/exercises/:exerciseId", workoutHandler.RemoveExercise)
			sessions.PUT("/active/exercises/:exerciseId/name", workoutHandler.RenameExercise)
			sessions.POST("/active/exercises/:exerciseId/sets", workoutHandler.AddSet)
			sessions.PUT("/active/exercises/:exerciseId/sets/:setId", workoutHandler.UpdateSet)
		}
		protected.GET("/exercises/suggestions", workoutHandler.GetSuggestions)

		// --- History & Analytics ---
		protected.GET("/history", workoutHandler.GetHistory)
		protected.GET("/history/stats", workoutHandler.GetStats)
		protected.GET("/history/last-weight", workoutHandler.GetLastWeight)
		protected.DELETE("/history/:id", workoutHandler.DeleteHistoryEntry)
		protected.GET("/streak", workoutHandler.GetStreak)
		protected.GET("/achievements", workoutHandler.GetAchievements)

		// --- AI Coach ---
		protected.POST("/chat", chatHandler.Ask)
	}
}
