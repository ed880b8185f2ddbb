package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/httpresp"
	"github.com/courtdesk/court-scheduler/internal/models"
	"github.com/courtdesk/court-scheduler/internal/storage"
)

type CourtHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewCourtHandler(db *gorm.DB, photos *storage.PhotoStore) *CourtHandler {
	return &CourtHandler{db: db, photos: photos}
}

type CourtRequest struct {
	Name      string   `json:"name" binding:"required"`
	Code      string   `json:"code"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
}

func (h *CourtHandler) List(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var courts []models.Court
	if err := h.db.
		Where("tenant_id = ?", tenantID).
		Order("id ASC").
		Find(&courts).Error; err != nil {

		httperr.Internal(c, "failed_to_list_courts", "Failed to list courts.")
		return
	}

	httpresp.List(c, courts)
}

func (h *CourtHandler) Get(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	court, ok := h.find(c, tenantID)
	if !ok {
		return
	}

	httpresp.OK(c, court)
}

func (h *CourtHandler) Create(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var req CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	court := models.Court{
		TenantID:  tenantID,
		Name:      req.Name,
		Code:      req.Code,
		Location:  req.Location,
		Amenities: models.StringList(req.Amenities),
	}
	if court.Amenities == nil {
		court.Amenities = models.StringList{}
	}

	if err := h.db.Create(&court).Error; err != nil {
		httperr.Internal(c, "failed_to_create_court", "Failed to create court.")
		return
	}

	// The code anchors slot IDs, so it must exist and never change once
	// slots reference it.
	if court.Code == "" {
		court.Code = fmt.Sprintf("court-%d", court.ID)
		if err := h.db.Save(&court).Error; err != nil {
			httperr.Internal(c, "failed_to_create_court", "Failed to create court.")
			return
		}
	}

	c.JSON(http.StatusCreated, court)
}

type CourtUpdateRequest struct {
	Name      *string   `json:"name"`
	Location  *string   `json:"location"`
	Amenities *[]string `json:"amenities"`
}

func (h *CourtHandler) Update(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	court, ok := h.find(c, tenantID)
	if !ok {
		return
	}

	var req CourtUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.Location != nil {
		court.Location = *req.Location
	}
	if req.Amenities != nil {
		court.Amenities = models.StringList(*req.Amenities)
	}

	if err := h.db.Save(court).Error; err != nil {
		httperr.Internal(c, "failed_to_update_court", "Failed to update court.")
		return
	}

	httpresp.OK(c, court)
}

func (h *CourtHandler) Delete(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	court, ok := h.find(c, tenantID)
	if !ok {
		return
	}

	if err := h.db.Delete(court).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_court", "Failed to delete court.")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto stores a court photo (re-encoded webp) and saves its URL.
func (h *CourtHandler) UploadPhoto(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	if h.photos == nil {
		httperr.Internal(c, "photo_storage_disabled", "Photo storage is not configured.")
		return
	}

	court, ok := h.find(c, tenantID)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field 'photo' is required.")
		return
	}
	defer file.Close()

	url, err := h.photos.UploadCourtPhoto(c.Request.Context(), tenantID, court.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Failed to store the photo.")
		return
	}

	court.PhotoURL = url
	if err := h.db.Save(court).Error; err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Failed to save the photo URL.")
		return
	}

	httpresp.OK(c, court)
}

func (h *CourtHandler) find(c *gin.Context, tenantID uint) (*models.Court, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "court_not_found", "Court not found.")
		return nil, false
	}

	var court models.Court
	if err := h.db.
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&court).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Court not found.")
		return nil, false
	}

	return &court, true
}
