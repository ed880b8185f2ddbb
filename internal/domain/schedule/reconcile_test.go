package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtdesk/court-scheduler/internal/models"
)

func candidate(past bool) Candidate {
	return Candidate{
		SlotID:       "court-1-2026-02-16-14:00",
		LegacySlotID: "court-1-2026-02-16-14",
		CourtID:      1,
		CourtCode:    "court-1",
		CourtName:    "Court 1",
		Date:         "2026-02-16",
		StartTime:    "14:00",
		EndTime:      "15:00",
		Past:         past,
	}
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name                            string
		past, blocked, clinic, reserved bool
		want                            SlotStatus
	}{
		{"open future slot", false, false, false, false, StatusAvailable},
		{"reserved", false, false, false, true, StatusReserved},
		{"clinic", false, false, true, false, StatusClinic},
		{"clinic beats reserved", false, false, true, true, StatusClinic},
		{"blocked", false, true, false, false, StatusBlocked},
		{"blocked beats clinic", false, true, true, false, StatusBlocked},
		{"blocked beats reserved", false, true, false, true, StatusBlocked},
		{"blocked beats both", false, true, true, true, StatusBlocked},
		{"past empty", true, false, false, false, StatusUnavailable},
		{"past blocked", true, true, false, false, StatusUnavailable},
		{"past reserved stays reserved", true, false, false, true, StatusReserved},
		{"past clinic stays clinic", true, false, true, false, StatusClinic},
		{"past clinic and reserved", true, false, true, true, StatusClinic},
		{"past blocked reserved", true, true, false, true, StatusBlocked},
		{"past blocked clinic", true, true, true, false, StatusBlocked},
		{"past everything", true, true, true, true, StatusBlocked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStatus(tc.past, tc.blocked, tc.clinic, tc.reserved)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReconcile_VirtualSlot(t *testing.T) {
	views := Reconcile([]Candidate{candidate(false)}, nil, nil, nil)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "court-1-2026-02-16-14:00", v.ID)
	assert.True(t, v.Available)
	assert.True(t, v.IsAvailable)
	assert.False(t, v.IsReserved)
	assert.False(t, v.IsBlocked)
	assert.False(t, v.IsClinic)
	assert.False(t, v.IsPast)
	assert.Equal(t, StatusAvailable, v.Status)
	assert.NotNil(t, v.Comments)
}

func TestReconcile_PastVirtualSlot(t *testing.T) {
	views := Reconcile([]Candidate{candidate(true)}, nil, nil, nil)
	require.Len(t, views, 1)

	v := views[0]
	assert.False(t, v.Available)
	assert.False(t, v.IsAvailable)
	assert.True(t, v.IsPast)
	assert.Equal(t, StatusUnavailable, v.Status)
}

func TestReconcile_BlockedRow(t *testing.T) {
	rows := []models.TimeSlot{{
		SlotID:    "court-1-2026-02-16-14:00",
		Available: false,
		Blocked:   true,
		Comments:  models.StringList{"maintenance"},
	}}

	views := Reconcile([]Candidate{candidate(false)}, rows, nil, nil)
	require.Len(t, views, 1)

	v := views[0]
	assert.True(t, v.Blocked)
	assert.True(t, v.IsBlocked)
	assert.False(t, v.IsAvailable)
	assert.Equal(t, StatusBlocked, v.Status)
	assert.Equal(t, models.StringList{"maintenance"}, v.Comments)
}

func TestReconcile_PastBlockedIsUnavailable(t *testing.T) {
	rows := []models.TimeSlot{{
		SlotID:  "court-1-2026-02-16-14:00",
		Blocked: true,
	}}

	views := Reconcile([]Candidate{candidate(true)}, rows, nil, nil)
	require.Len(t, views, 1)
	assert.Equal(t, StatusUnavailable, views[0].Status)
}

func TestReconcile_AvailableRowForcedOffWhenPast(t *testing.T) {
	rows := []models.TimeSlot{{
		SlotID:    "court-1-2026-02-16-14:00",
		Available: true,
	}}

	views := Reconcile([]Candidate{candidate(true)}, rows, nil, nil)
	require.Len(t, views, 1)
	assert.False(t, views[0].Available)
}

func TestReconcile_Reservation(t *testing.T) {
	res := []models.Reservation{{
		ID:         7,
		TimeSlotID: "court-1-2026-02-16-14:00",
		PlayerName: "Dana",
	}}

	views := Reconcile([]Candidate{candidate(false)}, nil, res, nil)
	require.Len(t, views, 1)

	v := views[0]
	assert.True(t, v.IsReserved)
	assert.False(t, v.IsAvailable)
	require.NotNil(t, v.Reservation)
	assert.Equal(t, uint(7), v.Reservation.ID)
	assert.Equal(t, StatusReserved, v.Status)
}

func TestReconcile_PastReservationStaysReserved(t *testing.T) {
	res := []models.Reservation{{
		ID:         7,
		TimeSlotID: "court-1-2026-02-16-14:00",
	}}

	views := Reconcile([]Candidate{candidate(true)}, nil, res, nil)
	require.Len(t, views, 1)
	assert.Equal(t, StatusReserved, views[0].Status)
	assert.True(t, views[0].IsReserved)
}

func TestReconcile_Clinic(t *testing.T) {
	clinicID := uint(3)
	slotID := "court-1-2026-02-16-14:00"

	rows := []models.TimeSlot{{
		SlotID:    slotID,
		Available: false,
		Type:      models.SlotTypeClinic,
		ClinicID:  &clinicID,
	}}
	clinics := []models.Clinic{{
		ID:         3,
		Title:      "Junior Drills",
		TimeSlotID: &slotID,
	}}

	views := Reconcile([]Candidate{candidate(false)}, rows, nil, clinics)
	require.Len(t, views, 1)

	v := views[0]
	assert.True(t, v.IsClinic)
	assert.False(t, v.IsAvailable)
	require.NotNil(t, v.Clinic)
	assert.Equal(t, "Junior Drills", v.Clinic.Title)
	assert.Equal(t, StatusClinic, v.Status)
}

func TestReconcile_ClinicSuppressesReservedFlag(t *testing.T) {
	slotID := "court-1-2026-02-16-14:00"

	clinics := []models.Clinic{{ID: 3, TimeSlotID: &slotID}}
	res := []models.Reservation{{ID: 9, TimeSlotID: slotID}}

	views := Reconcile([]Candidate{candidate(false)}, nil, res, clinics)
	require.Len(t, views, 1)

	v := views[0]
	assert.True(t, v.IsClinic)
	assert.False(t, v.IsReserved)
	assert.Equal(t, StatusClinic, v.Status)
}

func TestReconcile_LegacyRowMatched(t *testing.T) {
	rows := []models.TimeSlot{{
		SlotID:  "court-1-2026-02-16-14",
		Blocked: true,
	}}

	views := Reconcile([]Candidate{candidate(false)}, rows, nil, nil)
	require.Len(t, views, 1)

	// The view reports the canonical ID even when the row is legacy-keyed.
	assert.Equal(t, "court-1-2026-02-16-14:00", views[0].ID)
	assert.Equal(t, StatusBlocked, views[0].Status)
}

func TestReconcile_LegacyReservationMatched(t *testing.T) {
	res := []models.Reservation{{
		ID:         4,
		TimeSlotID: "court-1-2026-02-16-14",
	}}

	views := Reconcile([]Candidate{candidate(false)}, nil, res, nil)
	require.Len(t, views, 1)
	assert.True(t, views[0].IsReserved)
	assert.Equal(t, StatusReserved, views[0].Status)
}

func TestReconcile_CanonicalRowWinsOverLegacy(t *testing.T) {
	rows := []models.TimeSlot{
		{SlotID: "court-1-2026-02-16-14:00", Blocked: true},
		{SlotID: "court-1-2026-02-16-14", Available: true},
	}

	views := Reconcile([]Candidate{candidate(false)}, rows, nil, nil)
	require.Len(t, views, 1)
	assert.Equal(t, StatusBlocked, views[0].Status)
}
