package reservation

import (
	"context"

	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/models"
)

type UpdateInput struct {
	PlayerName  *string
	PlayerEmail *string
	PlayerPhone *string

	Players *int

	OpenPlaySlots  *int
	MaxOpenPlayers *int

	PaymentStatus *string
	AmountPaid    *float64

	Comments *[]string
}

// Update patches reservation fields in place. The slot stays as it is: it
// was flipped unavailable at creation and no field change undoes that.
type Update struct {
	repo domain.Repository
}

func NewUpdate(repo domain.Repository) *Update {
	return &Update{repo: repo}
}

func (uc *Update) Execute(
	ctx context.Context,
	tenantID uint,
	reservationID uint,
	in UpdateInput,
) (*models.Reservation, error) {

	if in.Players != nil && (*in.Players < 1 || *in.Players > 4) {
		return nil, httperr.ErrValidation("invalid_reservation", "players must be between 1 and 4")
	}

	res, err := uc.repo.GetReservation(ctx, tenantID, reservationID)
	if err != nil {
		return nil, err
	}

	if in.PlayerName != nil {
		res.PlayerName = *in.PlayerName
	}
	if in.PlayerEmail != nil {
		res.PlayerEmail = *in.PlayerEmail
	}
	if in.PlayerPhone != nil {
		res.PlayerPhone = *in.PlayerPhone
	}
	if in.Players != nil {
		res.Players = *in.Players
	}
	if in.OpenPlaySlots != nil {
		res.OpenPlaySlots = in.OpenPlaySlots
	}
	if in.MaxOpenPlayers != nil {
		res.MaxOpenPlayers = in.MaxOpenPlayers
	}
	if in.PaymentStatus != nil {
		res.PaymentStatus = in.PaymentStatus
	}
	if in.AmountPaid != nil {
		res.AmountPaid = in.AmountPaid
	}
	if in.Comments != nil {
		res.Comments = models.StringList(*in.Comments)
	}

	if err := uc.repo.SaveReservation(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}
