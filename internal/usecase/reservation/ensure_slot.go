package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/models"
)

// ensureSlot returns the persisted override row for slotID, materializing it
// on first write. Lookup order: the ID as given, then its canonical form,
// then the legacy bare-hour form. A row created here starts unavailable and
// unblocked; the caller's transaction owns it via the row lock.
func ensureSlot(
	ctx context.Context,
	tx domain.Repository,
	tenantID uint,
	slotID string,
) (*models.TimeSlot, error) {

	slot, err := tx.GetSlotForUpdate(ctx, tenantID, slotID)
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	parsed, perr := domain.ParseSlotID(slotID)
	if perr != nil {
		return nil, perr
	}

	for _, alias := range []string{parsed.Canonical(), parsed.Legacy()} {
		if alias == slotID {
			continue
		}
		slot, err = tx.GetSlotForUpdate(ctx, tenantID, alias)
		if err == nil {
			return slot, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	court, err := tx.GetCourtByCode(ctx, tenantID, parsed.CourtCode)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.InvalidSlotIDError{ID: slotID, Reason: "unknown court code"}
	}
	if err != nil {
		return nil, err
	}

	slot = &models.TimeSlot{
		SlotID:    parsed.Canonical(),
		TenantID:  tenantID,
		CourtID:   court.ID,
		Date:      parsed.Date(),
		StartTime: parsed.StartTime(),
		EndTime:   endTimeFor(ctx, tx, tenantID, parsed),
		Available: false,
		Blocked:   false,
		Comments:  models.StringList{},
	}

	if err := tx.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

// endTimeFor derives the window end from the weekday's configured slot
// duration, defaulting to an hour when settings are missing or the date is
// off-schedule.
func endTimeFor(
	ctx context.Context,
	tx domain.Repository,
	tenantID uint,
	parsed domain.ParsedSlotID,
) string {

	duration := 60

	if s, err := tx.GetSettings(ctx, tenantID); err == nil {
		if day, ok := dayFor(s.OperatingHours, parsed); ok && day.SlotDurationMinutes > 0 {
			duration = day.SlotDurationMinutes
		}
	}

	total := parsed.Hour*60 + parsed.Minute + duration
	if total > 24*60 {
		total = 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func dayFor(hours models.DaySettingList, parsed domain.ParsedSlotID) (models.DaySetting, bool) {
	t, err := time.Parse("2006-01-02", parsed.Date())
	if err != nil {
		return models.DaySetting{}, false
	}
	return hours.ByWeekday(int(t.Weekday()))
}
