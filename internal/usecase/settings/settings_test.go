package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/courtdesk/court-scheduler/internal/audit"
	dbpkg "github.com/courtdesk/court-scheduler/internal/db"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	infraRepo "github.com/courtdesk/court-scheduler/internal/infra/repository"
	"github.com/courtdesk/court-scheduler/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	return gdb
}

func seedTenant(t *testing.T, gdb *gorm.DB) uint {
	t.Helper()

	tenant := models.Tenant{Name: "Riverside Racquet", Slug: "riverside", Active: true}
	require.NoError(t, gdb.Create(&tenant).Error)
	return tenant.ID
}

// slotRow inserts an override row for the tenant on date (a Monday unless
// the test says otherwise).
func slotRow(t *testing.T, gdb *gorm.DB, tenantID uint, slotID, date string, mutate func(*models.TimeSlot)) {
	t.Helper()

	slot := models.TimeSlot{
		SlotID:    slotID,
		TenantID:  tenantID,
		CourtID:   1,
		Date:      date,
		StartTime: "14:00",
		EndTime:   "15:00",
		Available: true,
	}
	if mutate != nil {
		mutate(&slot)
	}
	require.NoError(t, gdb.Create(&slot).Error)
}

func hoursWith(mutate func(models.DaySettingList) models.DaySettingList) models.DaySettingList {
	hours := models.DefaultOperatingHours()
	if mutate != nil {
		hours = mutate(hours)
	}
	return hours
}

func closeWeekday(weekday int) func(models.DaySettingList) models.DaySettingList {
	return func(hours models.DaySettingList) models.DaySettingList {
		for i := range hours {
			if hours[i].DayOfWeek == weekday {
				hours[i].IsOpen = false
			}
		}
		return hours
	}
}

func TestEnsure_ProvisionsDefaults(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	s, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)

	assert.Equal(t, tenantID, s.TenantID)
	assert.Equal(t, 168, s.AdvanceBookingLimitHours)
	assert.Equal(t, 24, s.CancellationDeadlineHours)
	assert.Equal(t, 1, s.MinPlayersPerSlot)
	assert.Equal(t, 4, s.MaxPlayersPerSlot)
	assert.Equal(t, 30, s.VisibilityPeriodDays)
	assert.Len(t, s.OperatingHours, 7)

	// Second call returns the same row, not a second one.
	again, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)

	var count int64
	require.NoError(t, gdb.Model(&models.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdate_PatchesFields(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	_, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)

	uc := NewUpdate(repo, audit.NewDispatcher(audit.New(gdb)))

	deadline := 48
	walkIns := false
	s, err := uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		CancellationDeadlineHours: &deadline,
		AllowWalkIns:              &walkIns,
	})
	require.NoError(t, err)

	assert.Equal(t, 48, s.CancellationDeadlineHours)
	assert.False(t, s.AllowWalkIns)
	// Untouched fields keep their defaults.
	assert.Equal(t, 168, s.AdvanceBookingLimitHours)
}

func TestUpdate_Validation(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	uc := NewUpdate(repo, audit.NewDispatcher(audit.New(gdb)))

	bad := hoursWith(func(hours models.DaySettingList) models.DaySettingList {
		hours[1].StartTime = "20:00"
		hours[1].EndTime = "08:00"
		return hours
	})

	_, err := uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		OperatingHours: &bad,
	})
	require.Error(t, err)

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_settings", ve.Code)

	min := 5
	max := 2
	_, err = uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		MinPlayersPerSlot: &min,
		MaxPlayersPerSlot: &max,
	})
	require.Error(t, err)

	ve, ok = httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "minPlayersPerSlot must not exceed maxPlayersPerSlot")
}

// 2026-02-16 is a Monday.

func TestUpdate_CascadeDeletesOrphanedRows(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	_, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)

	// A plain override row on a Monday being closed down.
	slotRow(t, gdb, tenantID, "court-1-2026-02-16-14:00", "2026-02-16", nil)

	uc := NewUpdate(repo, audit.NewDispatcher(audit.New(gdb)))

	closed := hoursWith(closeWeekday(1))
	_, err = uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		OperatingHours: &closed,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.TimeSlot{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdate_CascadeDeletesStaleRowsOnOpenDays(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	_, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)

	// Nothing distinguishes this row from a generated candidate anymore.
	slotRow(t, gdb, tenantID, "court-1-2026-02-16-14:00", "2026-02-16", nil)

	uc := NewUpdate(repo, audit.NewDispatcher(audit.New(gdb)))

	open := hoursWith(nil)
	_, err = uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		OperatingHours: &open,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.TimeSlot{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdate_CascadeSparesReservedRows(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	_, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)

	slotID := "court-1-2026-02-16-14:00"
	slotRow(t, gdb, tenantID, slotID, "2026-02-16", func(s *models.TimeSlot) {
		s.Available = false
	})
	require.NoError(t, gdb.Create(&models.Reservation{
		TenantID:    tenantID,
		TimeSlotID:  slotID,
		CourtID:     1,
		PlayerName:  "Dana",
		PlayerEmail: "dana@example.com",
		PlayerPhone: "555-0101",
		Players:     2,
	}).Error)

	uc := NewUpdate(repo, audit.NewDispatcher(audit.New(gdb)))

	closed := hoursWith(closeWeekday(1))
	_, err = uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		OperatingHours: &closed,
	})
	require.NoError(t, err)

	// The reserved row outlives the closure.
	var slot models.TimeSlot
	require.NoError(t, gdb.First(&slot, "slot_id = ?", slotID).Error)
	assert.False(t, slot.Available)
}

func TestUpdate_CascadeSparesClinicRows(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	_, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)

	clinicID := uint(3)
	slotID := "court-1-2026-02-16-14:00"
	slotRow(t, gdb, tenantID, slotID, "2026-02-16", func(s *models.TimeSlot) {
		s.Available = false
		s.Type = models.SlotTypeClinic
		s.ClinicID = &clinicID
	})

	uc := NewUpdate(repo, audit.NewDispatcher(audit.New(gdb)))

	closed := hoursWith(closeWeekday(1))
	_, err = uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		OperatingHours: &closed,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.TimeSlot{}).Where("slot_id = ?", slotID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdate_CascadeUnblocksOnReopenedDay(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	_, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)

	slotID := "court-1-2026-02-16-14:00"
	slotRow(t, gdb, tenantID, slotID, "2026-02-16", func(s *models.TimeSlot) {
		s.Available = false
		s.Blocked = true
	})

	uc := NewUpdate(repo, audit.NewDispatcher(audit.New(gdb)))

	// Monday stays open; the blocked row resets to a live slot.
	open := hoursWith(nil)
	_, err = uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		OperatingHours: &open,
	})
	require.NoError(t, err)

	var slot models.TimeSlot
	require.NoError(t, gdb.First(&slot, "slot_id = ?", slotID).Error)
	assert.False(t, slot.Blocked)
	assert.True(t, slot.Available)
}

func TestUpdate_CascadeSkipsUnparseableDates(t *testing.T) {
	gdb := newTestDB(t)
	tenantID := seedTenant(t, gdb)
	repo := infraRepo.NewScheduleGormRepository(gdb)

	_, err := Ensure(context.Background(), repo, tenantID)
	require.NoError(t, err)

	slotRow(t, gdb, tenantID, "court-1-bogus-14:00", "not-a-date", nil)

	uc := NewUpdate(repo, audit.NewDispatcher(audit.New(gdb)))

	closed := hoursWith(closeWeekday(1))
	_, err = uc.Execute(context.Background(), tenantID, nil, UpdateInput{
		OperatingHours: &closed,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.TimeSlot{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
