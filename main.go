// File: calendarcopilot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendarcopilot/config"
	"calendarcopilot/database"
	tutorRepoPkg "calendarcopilot/database/repository/tutor"
	"calendarcopilot/handlers"
	"calendarcopilot/middleware"
	"calendarcopilot/routes"
	ai "calendarcopilot/services/intelligence"
	"calendarcopilot/services/schedule"
	"calendarcopilot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()

	// services.
	interpreter := ai.NewDefaultAvailabilityInterpreter(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
	)
	scheduleService := &schedule.DefaultScheduleService{
		Repo:        tutorRepo,
		Interpreter: interpreter,
		Cache:       utils.GetCacheClient(),
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListTutorsHandler:  scheduleHandler.ListTutorsHandler,
		GetTutorHandler:    scheduleHandler.GetTutorHandler,
		UpsertTutorHandler: scheduleHandler.UpsertTutorHandler,
		DeleteTutorHandler: scheduleHandler.DeleteTutorHandler,

		ParseAvailabilityHandler: scheduleHandler.ParseAvailabilityHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
