package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/httpresp"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/timezone"
	"github.com/silverhalide/studio-api/internal/validators"

	bookingdomain "github.com/silverhalide/studio-api/internal/domain/booking"
	ucbooking "github.com/silverhalide/studio-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	availability *ucbooking.GetAvailability
	createBk     *ucbooking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucbooking.GetAvailability,
	createBk *ucbooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		createBk:     createBk,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	SessionType string `json:"session_type" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

type PublicLeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

func (h *PublicHandler) studioBySlug(c *gin.Context) (*models.Studio, bool) {
	slug := c.Param("slug")

	var studio models.Studio
	if err := h.db.Where("slug = ?", slug).First(&studio).Error; err != nil {
		httperr.NotFound(c, "studio_not_found", "Studio not found.")
		return nil, false
	}
	return &studio, true
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	studio, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" {
		httperr.BadRequest(c, "missing_start", "Start date is required.")
		return
	}
	if endStr == "" {
		endStr = startStr
	}

	start, err := parseDateInStudio(studio, startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "Invalid start date.")
		return
	}

	end, err := parseDateInStudio(studio, endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "Invalid end date.")
		return
	}

	if end.Before(start) {
		httperr.BadRequest(c, "invalid_range", "End date before start date.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		bookingdomain.AvailabilityInput{
			StudioID:    studio.ID,
			Start:       start,
			End:         end.Add(24*time.Hour - time.Second),
			SessionType: c.Query("session_type"),
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to compute availability.")
		return
	}

	httpresp.OK(c, gin.H{
		"start": startStr,
		"end":   endStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	studio, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.createBk.Execute(
		c.Request.Context(),
		ucbooking.CreateBookingInput{
			StudioID:    studio.ID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			SessionType: req.SessionType,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			httperr.BadRequest(c, "slot_unavailable", "The requested slot is no longer available.")
			return
		}
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
		return
	}

	c.JSON(http.StatusCreated, b)
}

////////////////////////////////////////////////////////
// LEAD CAPTURE
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateLead(c *gin.Context) {
	studio, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	var req PublicLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	lead := models.Lead{
		StudioID: studio.ID,
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		Message:  req.Message,
		Source:   req.Source,
		Status:   "new",
	}

	if err := h.db.Create(&lead).Error; err != nil {
		httperr.Internal(c, "failed_to_create_lead", "Failed to submit enquiry.")
		return
	}

	c.JSON(http.StatusCreated, lead)
}

////////////////////////////////////////////////////////
// GALLERY (PUBLIC VIEW)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetGallery(c *gin.Context) {
	studio, ok := h.studioBySlug(c)
	if !ok {
		return
	}

	gslug := c.Param("gslug")

	var gallery models.Gallery
	if err := h.db.
		Preload("Media").
		Where("studio_id = ? AND slug = ? AND public = true", studio.ID, gslug).
		First(&gallery).Error; err != nil {

		httperr.NotFound(c, "gallery_not_found", "Gallery not found.")
		return
	}

	httpresp.OK(c, gallery)
}

////////////////////////////////////////////////////////
// PLACEHOLDER INTEGRATIONS
////////////////////////////////////////////////////////

// Weather and session suggestions return canned data until the real
// integrations land.
func (h *PublicHandler) WeatherForecast(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.Now().Format("2006-01-02")
	}

	httpresp.OK(c, gin.H{
		"date":    date,
		"summary": "partly_cloudy",
		"temp_c":  18,
		"golden_hour": gin.H{
			"morning": "06:45",
			"evening": "19:30",
		},
	})
}

func (h *PublicHandler) SessionSuggestion(c *gin.Context) {
	sessionType := c.Query("type")
	if sessionType == "" {
		sessionType = "portrait"
	}

	httpresp.OK(c, gin.H{
		"session_type": sessionType,
		"suggestion":   "Morning slots get the softest light at this time of year; outdoor sessions work best within two hours of sunrise.",
	})
}
