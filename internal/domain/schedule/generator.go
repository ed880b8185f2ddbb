package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/courtdesk/court-scheduler/internal/models"
)

// Candidate is one generated slot window for one court, before any persisted
// state is merged in.
type Candidate struct {
	SlotID       string
	LegacySlotID string

	CourtID   uint
	CourtCode string
	CourtName string

	Date      string
	StartTime string
	EndTime   string

	Past bool
}

// GenerateDay expands the operating-hours configuration into every candidate
// window for date, for every court. A closed or unconfigured weekday yields
// no candidates for any court. Deterministic for fixed inputs; now decides
// only the Past flag.
func GenerateDay(
	hours models.DaySettingList,
	courts []models.Court,
	date time.Time,
	now time.Time,
) []Candidate {

	day, ok := hours.ByWeekday(int(date.Weekday()))
	if !ok || !day.IsOpen {
		return []Candidate{}
	}

	dayStart, err := clockToMinutes(day.StartTime)
	if err != nil {
		return []Candidate{}
	}
	dayEnd, err := clockToMinutes(day.EndTime)
	if err != nil {
		return []Candidate{}
	}

	duration := day.SlotDurationMinutes
	if duration <= 0 {
		return []Candidate{}
	}

	// Zero or negative break means back-to-back slots; step never shrinks
	// below the slot itself.
	step := duration + day.BreakMinutes
	if step < duration {
		step = duration
	}

	dateStr := date.Format("2006-01-02")
	var out []Candidate

	for _, court := range courts {
		for mins := dayStart; mins+duration <= dayEnd; mins += step {
			startAt := time.Date(
				date.Year(), date.Month(), date.Day(),
				mins/60, mins%60, 0, 0,
				date.Location(),
			)

			start := minutesToClock(mins)
			out = append(out, Candidate{
				SlotID:       SlotIDFor(court.Code, dateStr, start),
				LegacySlotID: LegacySlotIDFor(court.Code, dateStr, mins/60),
				CourtID:      court.ID,
				CourtCode:    court.Code,
				CourtName:    court.Name,
				Date:         dateStr,
				StartTime:    start,
				EndTime:      minutesToClock(mins + duration),
				Past:         startAt.Before(now),
			})
		}
	}

	if out == nil {
		out = []Candidate{}
	}
	return out
}

func clockToMinutes(hm string) (int, error) {
	h, m, ok := strings.Cut(hm, ":")
	if !ok {
		return 0, fmt.Errorf("malformed clock time %q", hm)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q", hm)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q", hm)
	}
	return hour*60 + minute, nil
}

func minutesToClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
