package reservation

import (
	"context"
	"strings"

	"github.com/courtdesk/court-scheduler/internal/audit"
	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/models"
)

type JoinInput struct {
	Name  string
	Email string
	Phone string
}

// Join adds a participant to an open-play reservation. The whole read-check-
// write sequence runs in one transaction with the group rows locked, so two
// concurrent joins for the last seat serialize and the loser sees the group
// full.
type Join struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewJoin(repo domain.Repository, audit *audit.Dispatcher) *Join {
	return &Join{repo: repo, audit: audit}
}

func (uc *Join) Execute(
	ctx context.Context,
	tenantID uint,
	reservationID uint,
	in JoinInput,
) (*models.Reservation, error) {

	var fields []string
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, "name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		fields = append(fields, "email is required")
	}
	if len(fields) > 0 {
		return nil, httperr.ErrValidation("invalid_participant", fields...)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	var joined *models.Reservation

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		res, err := tx.GetReservationForUpdate(ctx, tenantID, reservationID)
		if err != nil {
			return err
		}

		if !res.IsOpenPlay {
			return httperr.ErrBusiness("not_open_play")
		}

		// The group is every reservation sharing the group ID; a lone
		// open-play reservation without one is a group of itself.
		group := []models.Reservation{*res}
		if res.OpenPlayGroupID != nil {
			group, err = tx.ListGroupReservationsForUpdate(ctx, tenantID, *res.OpenPlayGroupID)
			if err != nil {
				return err
			}
		}

		total := 0
		for _, member := range group {
			total += member.Players
		}

		maxPlayers := res.CapOpenPlayers()
		if total >= maxPlayers {
			return httperr.ErrBusiness("game_full")
		}

		for _, member := range group {
			if strings.ToLower(strings.TrimSpace(member.PlayerEmail)) == email {
				return httperr.ErrBusiness("already_joined")
			}
			for _, p := range member.Participants {
				if strings.ToLower(strings.TrimSpace(p.Email)) == email {
					return httperr.ErrBusiness("already_joined")
				}
			}
		}

		res.Participants = append(res.Participants, models.Participant{
			Name:  strings.TrimSpace(in.Name),
			Email: strings.TrimSpace(in.Email),
			Phone: strings.TrimSpace(in.Phone),
		})
		res.Players++

		// Last seat taken: close the whole group to further joins.
		full := total+1 >= maxPlayers
		if full {
			res.IsOpenPlay = false
		}

		if err := tx.SaveReservation(ctx, res); err != nil {
			return err
		}

		if full {
			for i := range group {
				if group[i].ID == res.ID {
					continue
				}
				group[i].IsOpenPlay = false
				if err := tx.SaveReservation(ctx, &group[i]); err != nil {
					return err
				}
			}
		}

		joined = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		Action:   "open_play_joined",
		Entity:   "reservation",
		EntityID: audit.RefID(reservationID),
	})

	return joined, nil
}
