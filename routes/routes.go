package routes

import (
	"net/http"
	"strings"
	"time"

	"calendarcopilot/config"
	"calendarcopilot/handlers"
	"calendarcopilot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTutorRoutes registers tutor calendar endpoints.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		api.GET("", hb.ListTutorsHandler)
		api.GET("/:tutorId", hb.GetTutorHandler)
		api.POST("", hb.UpsertTutorHandler)
		api.DELETE("/:tutorId", hb.DeleteTutorHandler)
	}
}

// RegisterAvailabilityRoutes registers the AI interpretation endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/parse", hb.ParseAvailabilityHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Calendar Co-pilot API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AppConfig.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTutorRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterHealthRoute(r)
}
