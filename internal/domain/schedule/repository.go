package schedule

import (
	"context"
	"errors"

	"github.com/courtdesk/court-scheduler/internal/models"
)

// ErrNotFound is returned by repository lookups when no row matches within
// the tenant scope. Infra implementations translate their driver's sentinel.
var ErrNotFound = errors.New("not found")

type Repository interface {
	// Transact runs fn against a repository bound to one database
	// transaction; any error rolls the whole thing back.
	Transact(ctx context.Context, fn func(Repository) error) error

	// -------- Tenant --------
	GetTenantBySlug(ctx context.Context, slug string) (*models.Tenant, error)

	// -------- Courts --------
	ListCourts(ctx context.Context, tenantID uint) ([]models.Court, error)

	GetCourt(ctx context.Context, tenantID uint, courtID uint) (*models.Court, error)

	GetCourtByCode(ctx context.Context, tenantID uint, code string) (*models.Court, error)

	// -------- Settings --------
	GetSettings(ctx context.Context, tenantID uint) (*models.Settings, error)

	CreateSettings(ctx context.Context, s *models.Settings) error

	SaveSettings(ctx context.Context, s *models.Settings) error

	// -------- Time slots --------
	GetSlot(ctx context.Context, tenantID uint, slotID string) (*models.TimeSlot, error)

	GetSlotForUpdate(ctx context.Context, tenantID uint, slotID string) (*models.TimeSlot, error)

	CreateSlot(ctx context.Context, slot *models.TimeSlot) error

	SaveSlot(ctx context.Context, slot *models.TimeSlot) error

	DeleteSlot(ctx context.Context, tenantID uint, slotID string) error

	ListSlots(ctx context.Context, tenantID uint) ([]models.TimeSlot, error)

	ListSlotsByDate(ctx context.Context, tenantID uint, date string) ([]models.TimeSlot, error)

	SetSlotAvailable(ctx context.Context, tenantID uint, slotID string, available bool) error

	// -------- Reservations --------
	GetReservation(ctx context.Context, tenantID uint, id uint) (*models.Reservation, error)

	GetReservationForUpdate(ctx context.Context, tenantID uint, id uint) (*models.Reservation, error)

	CreateReservation(ctx context.Context, res *models.Reservation) error

	SaveReservation(ctx context.Context, res *models.Reservation) error

	DeleteReservation(ctx context.Context, res *models.Reservation) error

	ListReservationsBySlotIDs(ctx context.Context, tenantID uint, slotIDs []string) ([]models.Reservation, error)

	ListGroupReservationsForUpdate(ctx context.Context, tenantID uint, groupID string) ([]models.Reservation, error)

	SlotIDsWithReservations(ctx context.Context, tenantID uint) (map[string]bool, error)

	// -------- Clinics --------
	GetClinic(ctx context.Context, tenantID uint, id uint) (*models.Clinic, error)

	ListClinicsByDate(ctx context.Context, tenantID uint, date string) ([]models.Clinic, error)
}
