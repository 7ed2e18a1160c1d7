package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/httpresp"
	"github.com/silverhalide/studio-api/internal/images"
	"github.com/silverhalide/studio-api/internal/middleware"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/storage"
)

type GalleryHandler struct {
	db    *gorm.DB
	store storage.Store
}

func NewGalleryHandler(db *gorm.DB, store storage.Store) *GalleryHandler {
	return &GalleryHandler{db: db, store: store}
}

// ======================================================
// CREATE / LIST
// ======================================================

type CreateGalleryRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Category string `json:"category"`
	Public   *bool  `json:"public"`
}

func (h *GalleryHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	gallery := models.Gallery{
		StudioID: studioID,
		Title:    req.Title,
		Slug:     strings.ToLower(strings.TrimSpace(req.Slug)),
		Category: req.Category,
		Public:   true,
	}
	if req.Public != nil {
		gallery.Public = *req.Public
	}

	if err := h.db.Create(&gallery).Error; err != nil {
		httperr.Internal(c, "failed_to_create_gallery", "Failed to create gallery.")
		return
	}

	c.JSON(http.StatusCreated, gallery)
}

func (h *GalleryHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var galleries []models.Gallery
	if err := h.db.
		Preload("Media").
		Where("studio_id = ?", studioID).
		Order("created_at DESC").
		Find(&galleries).Error; err != nil {

		httperr.Internal(c, "failed_to_list_galleries", "Failed to load galleries.")
		return
	}

	httpresp.List(c, galleries)
}

// ======================================================
// UPLOAD MEDIA
// ======================================================

// UploadMedia stores the original image and a webp thumbnail. A failed
// thumbnail never fails the upload; the media row just has no thumbnail URL.
func (h *GalleryHandler) UploadMedia(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_gallery_id", "Invalid gallery id.")
		return
	}
	galleryID := uint(id)

	var gallery models.Gallery
	if err := h.db.
		Where("id = ? AND studio_id = ?", galleryID, studioID).
		First(&gallery).Error; err != nil {

		httperr.NotFound(c, "gallery_not_found", "Gallery not found.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "File is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read uploaded file.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read uploaded file.")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	key := storage.GalleryMediaKey(galleryID, fileHeader.Filename)

	url, err := h.store.Upload(c.Request.Context(), key, contentType, bytes.NewReader(raw))
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Failed to store media.")
		return
	}

	thumbURL := ""
	if thumb, err := images.Thumbnail(raw); err == nil {
		thumbKey := key + ".thumb.webp"
		if u, err := h.store.Upload(c.Request.Context(), thumbKey, "image/webp", bytes.NewReader(thumb)); err == nil {
			thumbURL = u
		} else {
			log.Printf("gallery thumbnail upload failed for %s: %v", key, err)
		}
	} else {
		log.Printf("gallery thumbnail encode failed for %s: %v", key, err)
	}

	media := models.GalleryMedia{
		GalleryID:    galleryID,
		Name:         fileHeader.Filename,
		FileURL:      url,
		ThumbnailURL: thumbURL,
		FileType:     contentType,
		Size:         fileHeader.Size,
		StorageKey:   key,
	}

	if err := h.db.Create(&media).Error; err != nil {
		httperr.Internal(c, "failed_to_save_media", "Failed to save media.")
		return
	}

	if gallery.CoverURL == "" {
		cover := thumbURL
		if cover == "" {
			cover = url
		}
		h.db.Model(&gallery).Update("cover_url", cover)
	}

	c.JSON(http.StatusCreated, media)
}
