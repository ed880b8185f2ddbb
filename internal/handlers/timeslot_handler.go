package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtdesk/court-scheduler/internal/audit"
	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/models"
	ucSchedule "github.com/courtdesk/court-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type TimeSlotHandler struct {
	db      *gorm.DB
	listDay *ucSchedule.ListDaySlots
	audit   *audit.Dispatcher
}

func NewTimeSlotHandler(
	db *gorm.DB,
	listDay *ucSchedule.ListDaySlots,
	audit *audit.Dispatcher,
) *TimeSlotHandler {
	return &TimeSlotHandler{db: db, listDay: listDay, audit: audit}
}

// ======================================================
// LIST BY DATE
// ======================================================

// ListByDate returns the reconciled slot list for one date; an empty array
// when the venue is closed that day.
func (h *TimeSlotHandler) ListByDate(c *gin.Context) {
	tenant := tenantFrom(c)

	views, err := h.listDay.Execute(
		c.Request.Context(),
		tenant.ID,
		c.Param("date"),
		locationFromTenant(tenant),
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Failed to load the schedule.")
		return
	}

	c.JSON(http.StatusOK, views)
}

// ======================================================
// UPSERT OVERRIDE
// ======================================================

type UpsertTimeSlotRequest struct {
	CourtID   uint   `json:"courtId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime"`

	Available *bool    `json:"available"`
	Blocked   *bool    `json:"blocked"`
	Type      *string  `json:"type"`
	ClinicID  *uint    `json:"clinicId"`
	Comments  []string `json:"comments"`
}

// Upsert materializes or updates an override row: explicit blocks, clinic
// links, comments. This is the admin surface; bookings go through the
// reservation endpoints.
func (h *TimeSlotHandler) Upsert(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var req UpsertTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var court models.Court
	if err := h.db.
		Where("id = ? AND tenant_id = ?", req.CourtID, tenantID).
		First(&court).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Court not found.")
		return
	}

	slotID := domain.SlotIDFor(court.Code, req.Date, req.StartTime)
	parsed, err := domain.ParseSlotID(slotID)
	if err != nil {
		httperr.BadRequest(c, "invalid_time_slot", err.Error())
		return
	}

	var slot models.TimeSlot
	found := true
	err = h.db.
		Where("tenant_id = ? AND slot_id IN ?", tenantID, []string{parsed.Canonical(), parsed.Legacy()}).
		First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		found = false
		slot = models.TimeSlot{
			SlotID:    parsed.Canonical(),
			TenantID:  tenantID,
			CourtID:   court.ID,
			Date:      parsed.Date(),
			StartTime: parsed.StartTime(),
			EndTime:   req.EndTime,
			Available: true,
			Comments:  models.StringList{},
		}
	} else if err != nil {
		httperr.Internal(c, "failed_to_upsert_slot", "Failed to save the slot.")
		return
	}

	if req.Available != nil {
		slot.Available = *req.Available
	}
	if req.Blocked != nil {
		slot.Blocked = *req.Blocked
		if slot.Blocked {
			slot.Available = false
		}
	}
	if req.Type != nil {
		slot.Type = *req.Type
	}
	if req.ClinicID != nil {
		slot.ClinicID = req.ClinicID
	}
	if req.Comments != nil {
		slot.Comments = models.StringList(req.Comments)
	}
	if req.EndTime != "" {
		slot.EndTime = req.EndTime
	}

	if err := h.db.Save(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_upsert_slot", "Failed to save the slot.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   userIDFrom(c),
		Action:   "time_slot_upserted",
		Entity:   "time_slot",
		EntityID: audit.RefSlot(slot.SlotID),
	})

	status := http.StatusOK
	if !found {
		status = http.StatusCreated
	}
	c.JSON(status, slot)
}

// ======================================================
// UPDATE OVERRIDE
// ======================================================

type UpdateTimeSlotRequest struct {
	Available *bool    `json:"available"`
	Blocked   *bool    `json:"blocked"`
	Type      *string  `json:"type"`
	ClinicID  *uint    `json:"clinicId"`
	Comments  []string `json:"comments"`
}

func (h *TimeSlotHandler) Update(c *gin.Context) {
	tenantID := tenantIDFrom(c)
	slotID := c.Param("id")

	var req UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ids := []string{slotID}
	if parsed, err := domain.ParseSlotID(slotID); err == nil {
		ids = append(ids, parsed.Canonical(), parsed.Legacy())
	}

	var slot models.TimeSlot
	if err := h.db.
		Where("tenant_id = ? AND slot_id IN ?", tenantID, ids).
		First(&slot).Error; err != nil {
		httperr.NotFound(c, "slot_not_found", "Time slot not found.")
		return
	}

	if req.Available != nil {
		slot.Available = *req.Available
	}
	if req.Blocked != nil {
		slot.Blocked = *req.Blocked
	}
	if req.Type != nil {
		slot.Type = *req.Type
	}
	if req.ClinicID != nil {
		slot.ClinicID = req.ClinicID
	}
	if req.Comments != nil {
		slot.Comments = models.StringList(req.Comments)
	}

	if err := h.db.Save(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_update_slot", "Failed to save the slot.")
		return
	}

	c.JSON(http.StatusOK, slot)
}
