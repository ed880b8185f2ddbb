package settings

import (
	"context"
	"fmt"

	"github.com/courtdesk/court-scheduler/internal/audit"
	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateInput struct {
	OperatingHours *models.DaySettingList

	AdvanceBookingLimitHours  *int
	CancellationDeadlineHours *int

	MinPlayersPerSlot *int
	MaxPlayersPerSlot *int

	AllowWalkIns         *bool
	RequirePayment       *bool
	VisibilityPeriodDays *int
}

// ======================================================
// USE CASE
// ======================================================

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, audit: audit}
}

func (uc *Update) Execute(
	ctx context.Context,
	tenantID uint,
	userID *uint,
	in UpdateInput,
) (*models.Settings, error) {

	if err := validate(in); err != nil {
		return nil, err
	}

	var updated *models.Settings

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		s, err := tx.GetSettings(ctx, tenantID)
		if err != nil {
			return err
		}

		apply(s, in)

		if err := tx.SaveSettings(ctx, s); err != nil {
			return err
		}

		// Operating hours changed: retroactively clean up override rows
		// that the new schedule no longer explains.
		if in.OperatingHours != nil {
			if err := cascade(ctx, tx, tenantID, *in.OperatingHours); err != nil {
				return err
			}
		}

		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   userID,
		Action:   "settings_updated",
		Entity:   "settings",
	})

	return updated, nil
}

func validate(in UpdateInput) error {
	var fields []string

	if in.OperatingHours != nil {
		for _, day := range *in.OperatingHours {
			if !day.IsOpen {
				continue
			}
			if day.StartTime >= day.EndTime {
				fields = append(fields, fmt.Sprintf(
					"day %d: startTime must be before endTime", day.DayOfWeek,
				))
			}
			if day.SlotDurationMinutes <= 0 {
				fields = append(fields, fmt.Sprintf(
					"day %d: slotDurationMinutes must be positive", day.DayOfWeek,
				))
			}
		}
	}

	if in.MinPlayersPerSlot != nil && in.MaxPlayersPerSlot != nil &&
		*in.MinPlayersPerSlot > *in.MaxPlayersPerSlot {
		fields = append(fields, "minPlayersPerSlot must not exceed maxPlayersPerSlot")
	}

	if len(fields) > 0 {
		return httperr.ErrValidation("invalid_settings", fields...)
	}
	return nil
}

func apply(s *models.Settings, in UpdateInput) {
	if in.OperatingHours != nil {
		s.OperatingHours = *in.OperatingHours
	}
	if in.AdvanceBookingLimitHours != nil {
		s.AdvanceBookingLimitHours = *in.AdvanceBookingLimitHours
	}
	if in.CancellationDeadlineHours != nil {
		s.CancellationDeadlineHours = *in.CancellationDeadlineHours
	}
	if in.MinPlayersPerSlot != nil {
		s.MinPlayersPerSlot = *in.MinPlayersPerSlot
	}
	if in.MaxPlayersPerSlot != nil {
		s.MaxPlayersPerSlot = *in.MaxPlayersPerSlot
	}
	if in.AllowWalkIns != nil {
		s.AllowWalkIns = *in.AllowWalkIns
	}
	if in.RequirePayment != nil {
		s.RequirePayment = *in.RequirePayment
	}
	if in.VisibilityPeriodDays != nil {
		s.VisibilityPeriodDays = *in.VisibilityPeriodDays
	}
}
