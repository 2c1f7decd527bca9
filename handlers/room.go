package handlers

import (
	"errors"
	"net/http"

	"studyhub/models"
	"studyhub/services/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler exposes the study room endpoints.
type RoomHandler struct {
	RoomService room.RoomService
}

func roomErrorStatus(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrRoomFull), errors.Is(err, room.ErrAlreadyMember):
		return http.StatusConflict
	case errors.Is(err, room.ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CreateRoomHandler handles POST /api/rooms.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create room request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.RoomService.CreateRoom(userID, req)
	if err != nil {
		logger.Error("Failed to create room", zap.Error(err))
		c.JSON(roomErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetRoomHandler handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	r, err := h.RoomService.GetRoom(c.Param("id"))
	if err != nil {
		c.JSON(roomErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// ListRoomsHandler handles GET /api/rooms.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	logger := getLogger(c)

	rooms, err := h.RoomService.ListRooms()
	if err != nil {
		logger.Error("Failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// JoinRoomHandler handles POST /api/rooms/:id/join.
func (h *RoomHandler) JoinRoomHandler(c *gin.Context) {
	userID := c.GetString("userID")
	r, err := h.RoomService.JoinRoom(c.Param("id"), userID)
	if err != nil {
		c.JSON(roomErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// LeaveRoomHandler handles POST /api/rooms/:id/leave.
func (h *RoomHandler) LeaveRoomHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.RoomService.LeaveRoom(c.Param("id"), userID); err != nil {
		c.JSON(roomErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left room"})
}

// DeleteRoomHandler handles DELETE /api/rooms/:id.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.RoomService.DeleteRoom(c.Param("id"), userID); err != nil {
		c.JSON(roomErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}
