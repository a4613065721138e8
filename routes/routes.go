package routes

import (
	"net/http"
	"time"

	userRepo "routinely/database/repository/user"
	"routinely/handlers"
	"routinely/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the assembled handlers plus the repository the auth
// middleware verifies tokens against.
type HandlerBundle struct {
	UserRepo       userRepo.UserRepository
	UserHandler    *handlers.UserHandler
	RoutineHandler *handlers.RoutineHandler
	ChatHandler    *handlers.ChatHandler
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.UserHandler.RegisterHandler)
		api.POST("/login", hb.UserHandler.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.UserHandler.GetMeHandler)
		api.PUT("/me", hb.UserHandler.UpdateUserHandler)
		api.PUT("/me/password", hb.UserHandler.UpdatePasswordHandler)
		api.PUT("/me/plan", hb.UserHandler.ChangePlanHandler)
		api.POST("/me/first-login-done", hb.UserHandler.MarkFirstLoginDoneHandler)
		api.POST("/logout", hb.UserHandler.LogoutHandler)
		api.DELETE("/me", hb.UserHandler.DeleteUserHandler)
	}
}

// RegisterRoutineRoutes registers the weekly routine endpoints.
func RegisterRoutineRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/routine")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.RoutineHandler.GetWeekHandler)
		api.GET("/:day/timeline", hb.RoutineHandler.GetTimelineHandler)
		api.POST("/:day/tasks", hb.RoutineHandler.AddTaskHandler)
		api.PUT("/:day/tasks/:index", hb.RoutineHandler.EditTaskHandler)
		api.PUT("/:day/tasks/:index/every-day", hb.RoutineHandler.EditTaskEveryDayHandler)
		api.DELETE("/:day/tasks/:index", hb.RoutineHandler.RemoveTaskHandler)

		// Multi-day and whole-week operations.
		api.POST("/tasks", hb.RoutineHandler.AddTaskToDaysHandler)
		api.POST("/every-day/tasks", hb.RoutineHandler.AddTaskEveryDayHandler)
		api.DELETE("/tasks", hb.RoutineHandler.RemoveTaskEveryDayHandler)
	}
}

// RegisterChatRoutes registers assistant endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.ChatHandler.Chat)
		api.GET("/history", hb.ChatHandler.History)
		api.DELETE("/context", hb.ChatHandler.ClearContext)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Routinely"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterRoutineRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
