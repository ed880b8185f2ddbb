package settings

import (
	"context"
	"time"

	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/models"
)

// cascade reconciles every persisted slot row of the tenant with a new
// operating-hours configuration. Rows holding a reservation or a clinic are
// never touched, whatever the new schedule says. For the rest:
//
//   - weekday now closed            -> delete (the generator governs again)
//   - weekday open, row blocked     -> unblock (a block on a closed day was
//     moot; the day coming back makes the slot live again)
//   - weekday open, not blocked     -> delete (stale override, nothing left
//     that distinguishes it from a generated candidate)
func cascade(
	ctx context.Context,
	repo domain.Repository,
	tenantID uint,
	hours models.DaySettingList,
) error {

	slots, err := repo.ListSlots(ctx, tenantID)
	if err != nil {
		return err
	}

	reserved, err := repo.SlotIDsWithReservations(ctx, tenantID)
	if err != nil {
		return err
	}

	for i := range slots {
		slot := &slots[i]

		isClinic := slot.Type == models.SlotTypeClinic && slot.ClinicID != nil
		if isClinic || reserved[slot.SlotID] {
			continue
		}

		day, err := time.Parse("2006-01-02", slot.Date)
		if err != nil {
			// Unparseable date: leave the row alone rather than guess.
			continue
		}

		ds, ok := hours.ByWeekday(int(day.Weekday()))
		open := ok && ds.IsOpen

		switch {
		case !open:
			if err := repo.DeleteSlot(ctx, tenantID, slot.SlotID); err != nil {
				return err
			}
		case slot.Blocked:
			slot.Blocked = false
			slot.Available = true
			if err := repo.SaveSlot(ctx, slot); err != nil {
				return err
			}
		default:
			if err := repo.DeleteSlot(ctx, tenantID, slot.SlotID); err != nil {
				return err
			}
		}
	}

	return nil
}
