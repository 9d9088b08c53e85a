package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers wired in main and consumed by the
// routes package.
type HandlerBundle struct {
	// Tutor calendar endpoints.
	ListTutorsHandler  gin.HandlerFunc
	GetTutorHandler    gin.HandlerFunc
	UpsertTutorHandler gin.HandlerFunc
	DeleteTutorHandler gin.HandlerFunc

	// Availability interpretation endpoint.
	ParseAvailabilityHandler gin.HandlerFunc
}
