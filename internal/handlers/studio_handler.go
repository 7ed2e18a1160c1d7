package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/httpresp"
	"github.com/silverhalide/studio-api/internal/middleware"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/timezone"
)

type StudioHandler struct {
	db *gorm.DB
}

func NewStudioHandler(db *gorm.DB) *StudioHandler {
	return &StudioHandler{db: db}
}

type UpdateStudioRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *StudioHandler) GetMeStudio(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "studio_not_found", "Studio not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_studio", "Failed to load studio settings.")
		return
	}

	httpresp.OK(c, studio)
}

func (h *StudioHandler) UpdateMeStudio(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "studio_not_found", "Studio not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_studio", "Failed to load studio settings.")
		return
	}

	var req UpdateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		studio.Name = *req.Name
	}
	if req.Phone != nil {
		studio.Phone = *req.Phone
	}
	if req.Address != nil {
		studio.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone identifier.")
			return
		}
		studio.Timezone = *req.Timezone
	}

	if err := h.db.Save(&studio).Error; err != nil {
		httperr.Internal(c, "failed_to_update_studio", "Failed to save studio settings.")
		return
	}

	httpresp.OK(c, studio)
}
