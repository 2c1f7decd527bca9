package handlers

import (
	"errors"
	"net/http"

	"studyhub/models"
	"studyhub/services/calendar"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes the calendar endpoints.
type CalendarHandler struct {
	CalendarService calendar.CalendarService
}

func calendarErrorStatus(err error) int {
	switch {
	case errors.Is(err, calendar.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, calendar.ErrNotEventOwner):
		return http.StatusForbidden
	case errors.Is(err, calendar.ErrInvalidTimeRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CreateEventHandler handles POST /api/calendar/events.
func (h *CalendarHandler) CreateEventHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	event, err := h.CalendarService.CreateEvent(userID, req)
	if err != nil {
		c.JSON(calendarErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetEventHandler handles GET /api/calendar/events/:id.
func (h *CalendarHandler) GetEventHandler(c *gin.Context) {
	userID := c.GetString("userID")
	event, err := h.CalendarService.GetEvent(userID, c.Param("id"))
	if err != nil {
		c.JSON(calendarErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// ListEventsHandler handles GET /api/calendar/events.
func (h *CalendarHandler) ListEventsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	events, err := h.CalendarService.ListEvents(userID)
	if err != nil {
		logger.Error("Failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// UpdateEventHandler handles PUT /api/calendar/events/:id.
func (h *CalendarHandler) UpdateEventHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	var event models.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.Error("Invalid update event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	event.ID = c.Param("id")

	updated, err := h.CalendarService.UpdateEvent(userID, event)
	if err != nil {
		c.JSON(calendarErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEventHandler handles DELETE /api/calendar/events/:id.
func (h *CalendarHandler) DeleteEventHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.CalendarService.DeleteEvent(userID, c.Param("id")); err != nil {
		c.JSON(calendarErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
