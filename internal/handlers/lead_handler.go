package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/httpresp"
	"github.com/silverhalide/studio-api/internal/middleware"
	"github.com/silverhalide/studio-api/internal/models"
)

type LeadHandler struct {
	db *gorm.DB
}

func NewLeadHandler(db *gorm.DB) *LeadHandler {
	return &LeadHandler{db: db}
}

// ======================================================
// LIST
// ======================================================

func (h *LeadHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	q := h.db.Where("studio_id = ?", studioID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var leads []models.Lead
	if err := q.
		Order("created_at DESC").
		Find(&leads).Error; err != nil {

		httperr.Internal(c, "failed_to_list_leads", "Failed to load leads.")
		return
	}

	httpresp.List(c, leads)
}

// ======================================================
// UPDATE STATUS
// ======================================================

type UpdateLeadRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_lead_id", "Invalid lead id.")
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var lead models.Lead
	if err := h.db.
		Where("id = ? AND studio_id = ?", id, studioID).
		First(&lead).Error; err != nil {

		httperr.NotFound(c, "lead_not_found", "Lead not found.")
		return
	}

	lead.Status = req.Status
	if err := h.db.Save(&lead).Error; err != nil {
		httperr.Internal(c, "failed_to_update_lead", "Failed to update lead.")
		return
	}

	httpresp.OK(c, lead)
}
