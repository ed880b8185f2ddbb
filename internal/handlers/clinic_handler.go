package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtdesk/court-scheduler/internal/audit"
	"github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/httpresp"
	"github.com/courtdesk/court-scheduler/internal/models"
)

type ClinicHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClinicHandler(db *gorm.DB, audit *audit.Dispatcher) *ClinicHandler {
	return &ClinicHandler{db: db, audit: audit}
}

type ClinicRequest struct {
	Title           string  `json:"title" binding:"required"`
	CoachID         uint    `json:"coachId"`
	CourtID         uint    `json:"courtId" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	StartTime       string  `json:"startTime" binding:"required"`
	EndTime         string  `json:"endTime"`
	MaxParticipants int     `json:"maxParticipants"`
	Price           float64 `json:"price"`
}

func (h *ClinicHandler) List(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	q := h.db.Where("tenant_id = ?", tenantID)
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var clinics []models.Clinic
	if err := q.Order("date ASC, start_time ASC").Find(&clinics).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clinics", "Failed to list clinics.")
		return
	}

	httpresp.List(c, clinics)
}

// Create inserts the clinic and claims its time slot in the same
// transaction, so the slot can never show as bookable while the clinic
// exists.
func (h *ClinicHandler) Create(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var req ClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		httperr.BadRequest(c, "invalid_time", "Start time must be HH:MM.")
		return
	}

	var court models.Court
	if err := h.db.
		Where("id = ? AND tenant_id = ?", req.CourtID, tenantID).
		First(&court).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Court not found.")
		return
	}

	if req.MaxParticipants <= 0 {
		req.MaxParticipants = 8
	}
	if req.EndTime == "" {
		req.EndTime = req.StartTime
	}

	slotID := schedule.SlotIDFor(court.Code, req.Date, req.StartTime)

	clinic := models.Clinic{
		TenantID:        tenantID,
		CoachID:         req.CoachID,
		Title:           req.Title,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		TimeSlotID:      &slotID,
		MaxParticipants: req.MaxParticipants,
		Participants:    models.ParticipantList{},
		Price:           req.Price,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&clinic).Error; err != nil {
			return err
		}

		var slot models.TimeSlot
		err := tx.
			Where("slot_id = ? AND tenant_id = ?", slotID, tenantID).
			First(&slot).Error
		switch {
		case err == nil:
			slot.Available = false
			slot.Type = models.SlotTypeClinic
			slot.ClinicID = &clinic.ID
			return tx.Save(&slot).Error
		case err == gorm.ErrRecordNotFound:
			return tx.Create(&models.TimeSlot{
				SlotID:    slotID,
				TenantID:  tenantID,
				CourtID:   court.ID,
				Date:      req.Date,
				StartTime: req.StartTime,
				EndTime:   req.EndTime,
				Available: false,
				Type:      models.SlotTypeClinic,
				ClinicID:  &clinic.ID,
				Comments:  models.StringList{},
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_clinic", "Failed to create clinic.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   userIDFrom(c),
		Action:   "clinic_created",
		Entity:   "clinic",
		EntityID: audit.RefID(clinic.ID),
	})

	c.JSON(http.StatusCreated, clinic)
}

type ClinicUpdateRequest struct {
	Title           *string  `json:"title"`
	CoachID         *uint    `json:"coachId"`
	MaxParticipants *int     `json:"maxParticipants"`
	Price           *float64 `json:"price"`
}

func (h *ClinicHandler) Update(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	clinic, ok := h.find(c, tenantID)
	if !ok {
		return
	}

	var req ClinicUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Title != nil {
		clinic.Title = *req.Title
	}
	if req.CoachID != nil {
		clinic.CoachID = *req.CoachID
	}
	if req.MaxParticipants != nil && *req.MaxParticipants > 0 {
		clinic.MaxParticipants = *req.MaxParticipants
	}
	if req.Price != nil {
		clinic.Price = *req.Price
	}

	if err := h.db.Save(&clinic).Error; err != nil {
		httperr.Internal(c, "failed_to_update_clinic", "Failed to update clinic.")
		return
	}

	httpresp.OK(c, clinic)
}

// Delete removes the clinic and releases its slot. The slot row is
// deleted rather than flipped back so the generator regenerates it as a
// plain available slot.
func (h *ClinicHandler) Delete(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	clinic, ok := h.find(c, tenantID)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if clinic.TimeSlotID != nil {
			if err := tx.
				Where("slot_id = ? AND tenant_id = ? AND clinic_id = ?",
					*clinic.TimeSlotID, tenantID, clinic.ID).
				Delete(&models.TimeSlot{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&clinic).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_clinic", "Failed to delete clinic.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   userIDFrom(c),
		Action:   "clinic_deleted",
		Entity:   "clinic",
		EntityID: audit.RefID(clinic.ID),
	})

	c.Status(http.StatusNoContent)
}

func (h *ClinicHandler) find(c *gin.Context, tenantID uint) (models.Clinic, bool) {
	var clinic models.Clinic

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "clinic_not_found", "Clinic not found.")
		return clinic, false
	}

	if err := h.db.
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&clinic).Error; err != nil {
		httperr.NotFound(c, "clinic_not_found", "Clinic not found.")
		return clinic, false
	}

	return clinic, true
}
