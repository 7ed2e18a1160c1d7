package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/httpresp"
	"github.com/silverhalide/studio-api/internal/middleware"
	"github.com/silverhalide/studio-api/internal/models"

	ucbooking "github.com/silverhalide/studio-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db       *gorm.DB
	cancel   *ucbooking.CancelBooking
	complete *ucbooking.CompleteBooking
}

func NewBookingHandler(
	db *gorm.DB,
	cancel *ucbooking.CancelBooking,
	complete *ucbooking.CompleteBooking,
) *BookingHandler {
	return &BookingHandler{db: db, cancel: cancel, complete: complete}
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		httperr.Internal(c, "studio_not_found", "Studio not found.")
		return
	}

	date, err := parseDateInStudio(&studio, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	var bookings []models.Booking
	h.db.
		Preload("Client").
		Where(
			"studio_id = ? AND start_time >= ? AND start_time < ?",
			studioID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings)

	httpresp.List(c, bookings)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), studioID, userID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Booking cannot be cancelled.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_booking", "Failed to cancel booking.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *BookingHandler) Complete(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), studioID, userID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Booking cannot be completed.")
			return
		}
		httperr.Internal(c, "failed_to_complete_booking", "Failed to complete booking.")
		return
	}

	httpresp.OK(c, b)
}
