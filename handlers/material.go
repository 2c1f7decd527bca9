package handlers

import (
	"errors"
	"net/http"

	"studyhub/models"
	"studyhub/services/material"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaterialHandler exposes the study material endpoints.
type MaterialHandler struct {
	MaterialService material.MaterialService
}

func materialErrorStatus(err error) int {
	switch {
	case errors.Is(err, material.ErrMaterialNotFound):
		return http.StatusNotFound
	case errors.Is(err, material.ErrNotUploader):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// AddMaterialHandler handles POST /api/materials.
func (h *MaterialHandler) AddMaterialHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	var req models.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid add material request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	mat, err := h.MaterialService.AddMaterial(userID, req)
	if err != nil {
		logger.Error("Failed to add material", zap.Error(err))
		c.JSON(materialErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, mat)
}

// GetMaterialHandler handles GET /api/materials/:id.
func (h *MaterialHandler) GetMaterialHandler(c *gin.Context) {
	mat, err := h.MaterialService.GetMaterial(c.Param("id"))
	if err != nil {
		c.JSON(materialErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mat)
}

// ListMaterialsHandler handles GET /api/materials. It filters by subject
// or room via query parameters.
func (h *MaterialHandler) ListMaterialsHandler(c *gin.Context) {
	logger := getLogger(c)

	var (
		mats []models.Material
		err  error
	)
	if roomID := c.Query("roomId"); roomID != "" {
		mats, err = h.MaterialService.ListByRoom(roomID)
	} else if subject := c.Query("subject"); subject != "" {
		mats, err = h.MaterialService.ListBySubject(subject)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide a subject or roomId query parameter"})
		return
	}

	if err != nil {
		logger.Error("Failed to list materials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list materials"})
		return
	}
	c.JSON(http.StatusOK, mats)
}

// RemoveMaterialHandler handles DELETE /api/materials/:id.
func (h *MaterialHandler) RemoveMaterialHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.MaterialService.RemoveMaterial(c.Param("id"), userID); err != nil {
		c.JSON(materialErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material removed"})
}
