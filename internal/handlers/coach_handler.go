package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/httpresp"
	"github.com/courtdesk/court-scheduler/internal/models"
)

type CoachHandler struct {
	db *gorm.DB
}

func NewCoachHandler(db *gorm.DB) *CoachHandler {
	return &CoachHandler{db: db}
}

type CoachRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Bio        string  `json:"bio"`
	HourlyRate float64 `json:"hourlyRate"`
}

func (h *CoachHandler) List(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var coaches []models.Coach
	if err := h.db.
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Order("name ASC").
		Find(&coaches).Error; err != nil {

		httperr.Internal(c, "failed_to_list_coaches", "Failed to list coaches.")
		return
	}

	httpresp.List(c, coaches)
}

func (h *CoachHandler) Create(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var req CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	coach := models.Coach{
		TenantID:   tenantID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Bio:        req.Bio,
		HourlyRate: req.HourlyRate,
		Active:     true,
	}

	if err := h.db.Create(&coach).Error; err != nil {
		httperr.Internal(c, "failed_to_create_coach", "Failed to create coach.")
		return
	}

	c.JSON(http.StatusCreated, coach)
}

type CoachUpdateRequest struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Bio        *string  `json:"bio"`
	HourlyRate *float64 `json:"hourlyRate"`
	Active     *bool    `json:"active"`
}

func (h *CoachHandler) Update(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "coach_not_found", "Coach not found.")
		return
	}

	var coach models.Coach
	if err := h.db.
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&coach).Error; err != nil {
		httperr.NotFound(c, "coach_not_found", "Coach not found.")
		return
	}

	var req CoachUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		coach.Name = *req.Name
	}
	if req.Email != nil {
		coach.Email = *req.Email
	}
	if req.Phone != nil {
		coach.Phone = *req.Phone
	}
	if req.Bio != nil {
		coach.Bio = *req.Bio
	}
	if req.HourlyRate != nil {
		coach.HourlyRate = *req.HourlyRate
	}
	if req.Active != nil {
		coach.Active = *req.Active
	}

	if err := h.db.Save(&coach).Error; err != nil {
		httperr.Internal(c, "failed_to_update_coach", "Failed to update coach.")
		return
	}

	httpresp.OK(c, coach)
}

// Delete deactivates the coach rather than removing the row; past clinics
// keep their coach reference.
func (h *CoachHandler) Delete(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "coach_not_found", "Coach not found.")
		return
	}

	result := h.db.Model(&models.Coach{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("active", false)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_coach", "Failed to delete coach.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "coach_not_found", "Coach not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
