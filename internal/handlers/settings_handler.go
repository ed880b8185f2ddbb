package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/models"
	ucSettings "github.com/courtdesk/court-scheduler/internal/usecase/settings"
)

type SettingsHandler struct {
	repo   domain.Repository
	update *ucSettings.Update
}

func NewSettingsHandler(repo domain.Repository, update *ucSettings.Update) *SettingsHandler {
	return &SettingsHandler{repo: repo, update: update}
}

// Get returns the venue settings, provisioning defaults on first read.
func (h *SettingsHandler) Get(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	s, err := ucSettings.Ensure(c.Request.Context(), h.repo, tenantID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_settings", "Failed to load settings.")
		return
	}

	c.JSON(http.StatusOK, s)
}

type UpdateSettingsRequest struct {
	OperatingHours *models.DaySettingList `json:"operatingHours"`

	AdvanceBookingLimitHours  *int `json:"advanceBookingLimitHours"`
	CancellationDeadlineHours *int `json:"cancellationDeadlineHours"`

	MinPlayersPerSlot *int `json:"minPlayersPerSlot"`
	MaxPlayersPerSlot *int `json:"maxPlayersPerSlot"`

	AllowWalkIns         *bool `json:"allowWalkIns"`
	RequirePayment       *bool `json:"requirePayment"`
	VisibilityPeriodDays *int  `json:"visibilityPeriodDays"`
}

// Update patches the settings row; an operating-hours change cascades to the
// persisted slot overrides within the same transaction.
func (h *SettingsHandler) Update(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	s, err := h.update.Execute(c.Request.Context(), tenantID, userIDFrom(c), ucSettings.UpdateInput{
		OperatingHours:            req.OperatingHours,
		AdvanceBookingLimitHours:  req.AdvanceBookingLimitHours,
		CancellationDeadlineHours: req.CancellationDeadlineHours,
		MinPlayersPerSlot:         req.MinPlayersPerSlot,
		MaxPlayersPerSlot:         req.MaxPlayersPerSlot,
		AllowWalkIns:              req.AllowWalkIns,
		RequirePayment:            req.RequirePayment,
		VisibilityPeriodDays:      req.VisibilityPeriodDays,
	})
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			httperr.WriteValidation(c, ve)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "settings_not_found", "Settings not provisioned for this venue.")
			return
		}
		httperr.Internal(c, "failed_to_update_settings", "Failed to save settings.")
		return
	}

	c.JSON(http.StatusOK, s)
}
