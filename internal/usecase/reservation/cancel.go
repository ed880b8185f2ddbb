package reservation

import (
	"context"

	"github.com/courtdesk/court-scheduler/internal/audit"
	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
)

// Cancel deletes the reservation and frees its slot in one transaction, so a
// crash can no longer strand the slot in the unavailable state.
type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(repo domain.Repository, audit *audit.Dispatcher) *Cancel {
	return &Cancel{repo: repo, audit: audit}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	tenantID uint,
	reservationID uint,
	userID *uint,
) error {

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		res, err := tx.GetReservationForUpdate(ctx, tenantID, reservationID)
		if err != nil {
			return err
		}

		if err := tx.DeleteReservation(ctx, res); err != nil {
			return err
		}

		return tx.SetSlotAvailable(ctx, tenantID, res.TimeSlotID, true)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: audit.RefID(reservationID),
	})

	return nil
}
