package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// forUpdate adds a row lock on engines that support it. The sqlite driver
// used in tests has no FOR UPDATE; its writes serialize on the file lock.
func (r *ScheduleGormRepository) forUpdate(q *gorm.DB) *gorm.DB {
	if r.db.Dialector.Name() == "sqlite" {
		return q
	}
	return q.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *ScheduleGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewScheduleGormRepository(tx))
	})
}

// --------------------------------------------------
// Tenant
// --------------------------------------------------

func (r *ScheduleGormRepository) GetTenantBySlug(
	ctx context.Context,
	slug string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND active = ?", slug, true).
		First(&tenant).Error; err != nil {
		return nil, translate(err)
	}
	return &tenant, nil
}

// --------------------------------------------------
// Courts
// --------------------------------------------------

func (r *ScheduleGormRepository) ListCourts(
	ctx context.Context,
	tenantID uint,
) ([]models.Court, error) {

	var courts []models.Court
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id ASC").
		Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *ScheduleGormRepository) GetCourt(
	ctx context.Context,
	tenantID uint,
	courtID uint,
) (*models.Court, error) {

	var court models.Court
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", courtID, tenantID).
		First(&court).Error; err != nil {
		return nil, translate(err)
	}
	return &court, nil
}

func (r *ScheduleGormRepository) GetCourtByCode(
	ctx context.Context,
	tenantID uint,
	code string,
) (*models.Court, error) {

	var court models.Court
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&court).Error; err != nil {
		return nil, translate(err)
	}
	return &court, nil
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSettings(
	ctx context.Context,
	tenantID uint,
) (*models.Settings, error) {

	var s models.Settings
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *ScheduleGormRepository) CreateSettings(
	ctx context.Context,
	s *models.Settings,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleGormRepository) SaveSettings(
	ctx context.Context,
	s *models.Settings,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// --------------------------------------------------
// Time slots
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSlot(
	ctx context.Context,
	tenantID uint,
	slotID string,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("slot_id = ? AND tenant_id = ?", slotID, tenantID).
		First(&slot).Error; err != nil {
		return nil, translate(err)
	}
	return &slot, nil
}

func (r *ScheduleGormRepository) GetSlotForUpdate(
	ctx context.Context,
	tenantID uint,
	slotID string,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.forUpdate(r.db.WithContext(ctx)).
		Where("slot_id = ? AND tenant_id = ?", slotID, tenantID).
		First(&slot).Error; err != nil {
		return nil, translate(err)
	}
	return &slot, nil
}

func (r *ScheduleGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *ScheduleGormRepository) SaveSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *ScheduleGormRepository) DeleteSlot(
	ctx context.Context,
	tenantID uint,
	slotID string,
) error {
	return r.db.WithContext(ctx).
		Where("slot_id = ? AND tenant_id = ?", slotID, tenantID).
		Delete(&models.TimeSlot{}).Error
}

func (r *ScheduleGormRepository) ListSlots(
	ctx context.Context,
	tenantID uint,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) ListSlotsByDate(
	ctx context.Context,
	tenantID uint,
	date string,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND date = ?", tenantID, date).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) SetSlotAvailable(
	ctx context.Context,
	tenantID uint,
	slotID string,
	available bool,
) error {
	return r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("slot_id = ? AND tenant_id = ?", slotID, tenantID).
		Update("available", available).Error
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ScheduleGormRepository) GetReservation(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&res).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ScheduleGormRepository) GetReservationForUpdate(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.forUpdate(r.db.WithContext(ctx)).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&res).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ScheduleGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ScheduleGormRepository) SaveReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ScheduleGormRepository) DeleteReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", res.ID, res.TenantID).
		Delete(&models.Reservation{}).Error
}

func (r *ScheduleGormRepository) ListReservationsBySlotIDs(
	ctx context.Context,
	tenantID uint,
	slotIDs []string,
) ([]models.Reservation, error) {

	if len(slotIDs) == 0 {
		return []models.Reservation{}, nil
	}

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND time_slot_id IN ?", tenantID, slotIDs).
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *ScheduleGormRepository) ListGroupReservationsForUpdate(
	ctx context.Context,
	tenantID uint,
	groupID string,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.forUpdate(r.db.WithContext(ctx)).
		Where("tenant_id = ? AND open_play_group_id = ?", tenantID, groupID).
		Order("id ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *ScheduleGormRepository) SlotIDsWithReservations(
	ctx context.Context,
	tenantID uint,
) (map[string]bool, error) {

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("tenant_id = ?", tenantID).
		Distinct().
		Pluck("time_slot_id", &ids).Error; err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// --------------------------------------------------
// Clinics
// --------------------------------------------------

func (r *ScheduleGormRepository) GetClinic(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.Clinic, error) {

	var clinic models.Clinic
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&clinic).Error; err != nil {
		return nil, translate(err)
	}
	return &clinic, nil
}

func (r *ScheduleGormRepository) ListClinicsByDate(
	ctx context.Context,
	tenantID uint,
	date string,
) ([]models.Clinic, error) {

	var clinics []models.Clinic
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND date = ?", tenantID, date).
		Find(&clinics).Error; err != nil {
		return nil, err
	}
	return clinics, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
