package schedule

import (
	"context"
	"time"

	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	ucSettings "github.com/courtdesk/court-scheduler/internal/usecase/settings"
)

// ListDaySlots produces the reconciled slot list for one date: generate the
// candidate windows from the operating hours, then merge in whatever
// persisted rows, reservations and clinics exist. Always computed fresh;
// the past/future split depends on the moment the request runs.
type ListDaySlots struct {
	repo  domain.Repository
	clock domain.Clock
}

func NewListDaySlots(repo domain.Repository, clock domain.Clock) *ListDaySlots {
	return &ListDaySlots{repo: repo, clock: clock}
}

func (uc *ListDaySlots) Execute(
	ctx context.Context,
	tenantID uint,
	dateStr string,
	loc *time.Location,
) ([]domain.SlotView, error) {

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	s, err := ucSettings.Ensure(ctx, uc.repo, tenantID)
	if err != nil {
		return nil, err
	}

	courts, err := uc.repo.ListCourts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now().In(loc)
	candidates := domain.GenerateDay(s.OperatingHours, courts, date, now)

	// Closed day: nothing to merge, persisted rows notwithstanding.
	if len(candidates) == 0 {
		return []domain.SlotView{}, nil
	}

	rows, err := uc.repo.ListSlotsByDate(ctx, tenantID, dateStr)
	if err != nil {
		return nil, err
	}

	slotIDs := make([]string, 0, 2*len(candidates))
	for _, c := range candidates {
		slotIDs = append(slotIDs, c.SlotID)
		if c.LegacySlotID != c.SlotID {
			slotIDs = append(slotIDs, c.LegacySlotID)
		}
	}

	reservations, err := uc.repo.ListReservationsBySlotIDs(ctx, tenantID, slotIDs)
	if err != nil {
		return nil, err
	}

	clinics, err := uc.repo.ListClinicsByDate(ctx, tenantID, dateStr)
	if err != nil {
		return nil, err
	}

	return domain.Reconcile(candidates, rows, reservations, clinics), nil
}
