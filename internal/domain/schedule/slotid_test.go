package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotIDFor(t *testing.T) {
	assert.Equal(t, "court-1-2026-02-15-14:00", SlotIDFor("court-1", "2026-02-15", "14:00"))
	assert.Equal(t, "center-2025-03-02-09:30", SlotIDFor("center", "2025-03-02", "09:30"))
}

func TestLegacySlotIDFor(t *testing.T) {
	assert.Equal(t, "court-1-2026-02-15-14", LegacySlotIDFor("court-1", "2026-02-15", 14))
	assert.Equal(t, "center-2025-03-02-9", LegacySlotIDFor("center", "2025-03-02", 9))
}

func TestParseSlotID_Canonical(t *testing.T) {
	p, err := ParseSlotID("court-1-2026-02-15-14:00")
	require.NoError(t, err)

	assert.Equal(t, "court-1", p.CourtCode)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, 2, p.Month)
	assert.Equal(t, 15, p.Day)
	assert.Equal(t, 14, p.Hour)
	assert.Equal(t, 0, p.Minute)

	assert.Equal(t, "2026-02-15", p.Date())
	assert.Equal(t, "14:00", p.StartTime())
	assert.Equal(t, "court-1-2026-02-15-14:00", p.Canonical())
	assert.Equal(t, "court-1-2026-02-15-14", p.Legacy())
}

func TestParseSlotID_HyphenatedCourtCode(t *testing.T) {
	p, err := ParseSlotID("center-court-a-2025-11-03-09:30")
	require.NoError(t, err)

	assert.Equal(t, "center-court-a", p.CourtCode)
	assert.Equal(t, "2025-11-03", p.Date())
	assert.Equal(t, "09:30", p.StartTime())
}

func TestParseSlotID_LegacyBareHour(t *testing.T) {
	p, err := ParseSlotID("court-2-2025-03-02-14")
	require.NoError(t, err)

	assert.Equal(t, "court-2", p.CourtCode)
	assert.Equal(t, 14, p.Hour)
	assert.Equal(t, 0, p.Minute)
	assert.Equal(t, "court-2-2025-03-02-14:00", p.Canonical())
	assert.Equal(t, "court-2-2025-03-02-14", p.Legacy())
}

func TestParseSlotID_Invalid(t *testing.T) {
	cases := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"too few segments", "court-2026-02-15"},
		{"two digit year", "court-1-26-02-15-14:00"},
		{"non numeric year", "court-1-yyyy-02-15-14:00"},
		{"month zero", "court-1-2026-00-15-14:00"},
		{"month thirteen", "court-1-2026-13-15-14:00"},
		{"day zero", "court-1-2026-02-00-14:00"},
		{"day out of range", "court-1-2026-02-32-14:00"},
		{"hour out of range", "court-1-2026-02-15-24:00"},
		{"legacy hour out of range", "court-1-2026-02-15-24"},
		{"minute out of range", "court-1-2026-02-15-14:60"},
		{"non numeric hour", "court-1-2026-02-15-xx:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSlotID(tc.id)
			require.Error(t, err)
			assert.True(t, IsInvalidSlotID(err))

			var ie *InvalidSlotIDError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.id, ie.ID)
		})
	}
}

func TestIsInvalidSlotID_OtherErrors(t *testing.T) {
	assert.False(t, IsInvalidSlotID(errors.New("boom")))
	assert.False(t, IsInvalidSlotID(nil))
	assert.False(t, IsInvalidSlotID(ErrNotFound))
}
