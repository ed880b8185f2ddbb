package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtdesk/court-scheduler/internal/models"
)

func testCourts() []models.Court {
	return []models.Court{
		{ID: 1, Code: "court-1", Name: "Court 1"},
		{ID: 2, Code: "court-2", Name: "Court 2"},
	}
}

func day(weekday int, start, end string, duration, brk int) models.DaySetting {
	return models.DaySetting{
		DayOfWeek:           weekday,
		IsOpen:              true,
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: duration,
		BreakMinutes:        brk,
	}
}

// 2026-02-16 is a Monday.
var monday = time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

func TestGenerateDay_DefaultHours(t *testing.T) {
	hours := models.DefaultOperatingHours()
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	out := GenerateDay(hours, testCourts(), monday, now)

	// 08:00-20:00, 60-minute slots, 15-minute breaks: nine windows per court.
	require.Len(t, out, 18)

	starts := []string{
		"08:00", "09:15", "10:30", "11:45", "13:00",
		"14:15", "15:30", "16:45", "18:00",
	}
	for i, want := range starts {
		assert.Equal(t, want, out[i].StartTime)
		assert.Equal(t, uint(1), out[i].CourtID)
	}
	assert.Equal(t, "19:00", out[8].EndTime)

	// Second court follows with the same windows.
	assert.Equal(t, "08:00", out[9].StartTime)
	assert.Equal(t, uint(2), out[9].CourtID)

	assert.Equal(t, "court-1-2026-02-16-08:00", out[0].SlotID)
	assert.Equal(t, "court-1-2026-02-16-8", out[0].LegacySlotID)
	assert.Equal(t, "court-2-2026-02-16-08:00", out[9].SlotID)
}

func TestGenerateDay_ClosedDay(t *testing.T) {
	hours := models.DaySettingList{
		{DayOfWeek: 1, IsOpen: false, StartTime: "08:00", EndTime: "20:00", SlotDurationMinutes: 60},
	}

	out := GenerateDay(hours, testCourts(), monday, monday)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestGenerateDay_UnconfiguredWeekday(t *testing.T) {
	hours := models.DaySettingList{day(3, "08:00", "20:00", 60, 0)}

	out := GenerateDay(hours, testCourts(), monday, monday)
	assert.Empty(t, out)
}

func TestGenerateDay_NoCourts(t *testing.T) {
	hours := models.DaySettingList{day(1, "08:00", "20:00", 60, 0)}

	out := GenerateDay(hours, nil, monday, monday)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestGenerateDay_BackToBack(t *testing.T) {
	hours := models.DaySettingList{day(1, "08:00", "11:00", 60, 0)}

	out := GenerateDay(hours, testCourts()[:1], monday, monday)
	require.Len(t, out, 3)

	assert.Equal(t, "08:00", out[0].StartTime)
	assert.Equal(t, "09:00", out[0].EndTime)
	assert.Equal(t, "09:00", out[1].StartTime)
	assert.Equal(t, "10:00", out[2].StartTime)
}

func TestGenerateDay_TrailingRemainderDropped(t *testing.T) {
	// 08:00-09:30 fits one 60-minute slot; the trailing half hour is dead.
	hours := models.DaySettingList{day(1, "08:00", "09:30", 60, 0)}

	out := GenerateDay(hours, testCourts()[:1], monday, monday)
	require.Len(t, out, 1)
	assert.Equal(t, "08:00", out[0].StartTime)
	assert.Equal(t, "09:00", out[0].EndTime)
}

func TestGenerateDay_NegativeBreakClamped(t *testing.T) {
	hours := models.DaySettingList{day(1, "08:00", "10:00", 60, -30)}

	out := GenerateDay(hours, testCourts()[:1], monday, monday)
	require.Len(t, out, 2)
	assert.Equal(t, "09:00", out[1].StartTime)
}

func TestGenerateDay_ZeroDuration(t *testing.T) {
	hours := models.DaySettingList{day(1, "08:00", "10:00", 0, 0)}

	out := GenerateDay(hours, testCourts(), monday, monday)
	assert.Empty(t, out)
}

func TestGenerateDay_MalformedHours(t *testing.T) {
	hours := models.DaySettingList{day(1, "eight", "10:00", 60, 0)}

	out := GenerateDay(hours, testCourts(), monday, monday)
	assert.Empty(t, out)
}

func TestGenerateDay_PastFlag(t *testing.T) {
	hours := models.DaySettingList{day(1, "08:00", "12:00", 60, 0)}
	now := time.Date(2026, 2, 16, 10, 0, 0, 0, time.UTC)

	out := GenerateDay(hours, testCourts()[:1], monday, now)
	require.Len(t, out, 4)

	assert.True(t, out[0].Past)  // 08:00
	assert.True(t, out[1].Past)  // 09:00
	assert.False(t, out[2].Past) // 10:00 is not before 10:00
	assert.False(t, out[3].Past) // 11:00
}

func TestGenerateDay_Deterministic(t *testing.T) {
	hours := models.DefaultOperatingHours()
	now := time.Date(2026, 2, 16, 10, 30, 0, 0, time.UTC)

	first := GenerateDay(hours, testCourts(), monday, now)
	second := GenerateDay(hours, testCourts(), monday, now)

	assert.Equal(t, first, second)
}
