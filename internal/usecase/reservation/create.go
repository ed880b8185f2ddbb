package reservation

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/courtdesk/court-scheduler/internal/audit"
	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	TimeSlotID string
	CourtID    uint

	PlayerName  string
	PlayerEmail string
	PlayerPhone string

	Players *int

	IsOpenPlay     bool
	OpenPlaySlots  *int
	MaxOpenPlayers *int

	PaymentStatus *string
	AmountPaid    *float64

	Comments    []string
	CreatedByID *uint
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(
	ctx context.Context,
	tenantID uint,
	in CreateInput,
) (*models.Reservation, error) {

	if err := validateCreate(in); err != nil {
		return nil, err
	}

	court, err := uc.repo.GetCourt(ctx, tenantID, in.CourtID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrValidation("invalid_reservation", "court not found for this venue")
	}
	if err != nil {
		return nil, err
	}

	players := 1
	if in.Players != nil {
		players = *in.Players
	}

	res := &models.Reservation{
		TenantID:      tenantID,
		CourtID:       court.ID,
		PlayerName:    strings.TrimSpace(in.PlayerName),
		PlayerEmail:   strings.TrimSpace(in.PlayerEmail),
		PlayerPhone:   strings.TrimSpace(in.PlayerPhone),
		Players:       players,
		Participants:  models.ParticipantList{},
		IsOpenPlay:    in.IsOpenPlay,
		OpenPlaySlots: in.OpenPlaySlots,
		PaymentStatus: in.PaymentStatus,
		AmountPaid:    in.AmountPaid,
		Comments:      models.StringList(in.Comments),
		CreatedByID:   in.CreatedByID,
	}
	if res.Comments == nil {
		res.Comments = models.StringList{}
	}

	if in.IsOpenPlay {
		groupID := uuid.NewString()
		res.OpenPlayGroupID = &groupID

		maxPlayers := models.DefaultMaxOpenPlayers
		if in.MaxOpenPlayers != nil && *in.MaxOpenPlayers > 0 {
			maxPlayers = *in.MaxOpenPlayers
		}
		res.MaxOpenPlayers = &maxPlayers
	}

	// One transaction: materialize the slot row if needed, insert the
	// reservation, flip the slot unavailable. All or nothing.
	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		slot, err := ensureSlot(ctx, tx, tenantID, in.TimeSlotID)
		if err != nil {
			return err
		}

		res.TimeSlotID = slot.SlotID

		if err := tx.CreateReservation(ctx, res); err != nil {
			return err
		}

		return tx.SetSlotAvailable(ctx, tenantID, slot.SlotID, false)
	})
	if err != nil {
		// A bad slot ID is the caller's mistake, not a storage failure.
		if domain.IsInvalidSlotID(err) {
			return nil, httperr.ErrValidation("invalid_time_slot", err.Error())
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   in.CreatedByID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: audit.RefID(res.ID),
	})

	return res, nil
}

func validateCreate(in CreateInput) error {
	var fields []string

	if strings.TrimSpace(in.TimeSlotID) == "" {
		fields = append(fields, "timeSlotId is required")
	}
	if in.CourtID == 0 {
		fields = append(fields, "courtId is required")
	}
	if strings.TrimSpace(in.PlayerName) == "" {
		fields = append(fields, "playerName is required")
	}
	if strings.TrimSpace(in.PlayerEmail) == "" {
		fields = append(fields, "playerEmail is required")
	}
	if strings.TrimSpace(in.PlayerPhone) == "" {
		fields = append(fields, "playerPhone is required")
	}
	if in.Players != nil && (*in.Players < 1 || *in.Players > 4) {
		fields = append(fields, "players must be between 1 and 4")
	}

	if len(fields) > 0 {
		return httperr.ErrValidation("invalid_reservation", fields...)
	}
	return nil
}
