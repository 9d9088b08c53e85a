package handlers

import (
	"net/http"

	"calendarcopilot/models"
	"calendarcopilot/services/schedule"
	"calendarcopilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes tutor calendar CRUD over the schedule service.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) ListTutorsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	records, err := h.Service.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch tutors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tutors"})
		return
	}
	if records == nil {
		records = []models.TutorRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *ScheduleHandler) GetTutorHandler(c *gin.Context) {
	tutorID := c.Param("tutorId")

	record, err := h.Service.Get(c.Request.Context(), tutorID)
	if err != nil {
		if schedule.ErrorCode(err) == schedule.CodeNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch tutor", zap.String("tutorId", tutorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tutor"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ScheduleHandler) UpsertTutorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.UpsertTutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid tutor upsert request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "tutorId is required"})
		return
	}

	record, err := h.Service.Save(c.Request.Context(), req.TutorID, req.Availability)
	if err != nil {
		if schedule.ErrorCode(err) == schedule.CodeValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tutorId is required"})
			return
		}
		logger.Error("Failed to save tutor calendar", zap.String("tutorId", req.TutorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tutor calendar"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ScheduleHandler) DeleteTutorHandler(c *gin.Context) {
	tutorID := c.Param("tutorId")

	deleted, err := h.Service.Delete(c.Request.Context(), tutorID)
	if err != nil {
		utils.GetLogger().Error("Failed to delete tutor", zap.String("tutorId", tutorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tutor"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tutor deleted successfully"})
}
