package handlers

import (
	"net/http"

	"calendarcopilot/models"
	"calendarcopilot/services/schedule"
	"calendarcopilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParseAvailabilityHandler interprets a free-text description into a
// structured week for the caller to review before saving.
func (h *ScheduleHandler) ParseAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ParseAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid availability parse request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	generated, err := h.Service.Generate(c.Request.Context(), req.Description)
	if err != nil {
		switch schedule.ErrorCode(err) {
		case schedule.CodeValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		case schedule.CodeInterpreter:
			logger.Error("Availability interpretation failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to interpret availability", "message": err.Error()})
		default:
			logger.Error("Availability generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to interpret availability"})
		}
		return
	}

	c.JSON(http.StatusOK, generated)
}
