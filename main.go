// File: routinely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"routinely/config"
	"routinely/cron"
	"routinely/database"
	userRepoPkg "routinely/database/repository/user"
	"routinely/handlers"
	"routinely/middleware"
	"routinely/routes"
	chatSvc "routinely/services/chat"
	routineSvc "routinely/services/routine"
	userSvc "routinely/services/user"
	"routinely/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}
	routineService := &routineSvc.DefaultRoutineService{
		Repo:  userRepo,
		Cache: utils.GetCacheClient(),
	}

	var generator chatSvc.Generator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := chatSvc.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat endpoints will fail")
	}
	ctxStore := chatSvc.NewRedisContextStore(utils.GetChatContextClient(), 30*time.Minute)
	chatService := &chatSvc.DefaultChatService{
		Repo:      userRepo,
		Generator: generator,
		CtxStore:  ctxStore,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		UserRepo:       userRepo,
		UserHandler:    handlers.NewUserHandler(userService),
		RoutineHandler: handlers.NewRoutineHandler(routineService),
		ChatHandler:    handlers.NewChatHandler(chatService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background subscription sweep.
	sweeper := cron.StartSubscriptionSweeper(userRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
