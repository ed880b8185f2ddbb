package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Slot IDs correlate generated candidate slots with persisted override rows,
// replacing a join table: "{courtCode}-{YYYY}-{MM}-{DD}-{HH:MM}". Rows
// written before minutes were part of the key end in a bare hour
// ("center-1-2025-03-02-14"); lookups keep recognizing that form, new rows
// are always written under the canonical one.

type ParsedSlotID struct {
	CourtCode string
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
}

type InvalidSlotIDError struct {
	ID     string
	Reason string
}

func (e *InvalidSlotIDError) Error() string {
	return fmt.Sprintf("invalid slot id %q: %s", e.ID, e.Reason)
}

func IsInvalidSlotID(err error) bool {
	var ie *InvalidSlotIDError
	return errors.As(err, &ie)
}

// SlotIDFor renders the canonical ID. date is "2006-01-02", startTime "15:04".
func SlotIDFor(courtCode, date, startTime string) string {
	return courtCode + "-" + date + "-" + startTime
}

// LegacySlotIDFor renders the old bare-hour ID for fallback lookups.
func LegacySlotIDFor(courtCode, date string, hour int) string {
	return courtCode + "-" + date + "-" + strconv.Itoa(hour)
}

// ParseSlotID splits an ID back into its parts. The last hyphen-delimited
// segment is the start time (either "HH:MM" or a legacy bare hour), the three
// before it the date, and everything in front the court code, which may
// itself contain hyphens.
func ParseSlotID(id string) (ParsedSlotID, error) {
	fail := func(reason string) (ParsedSlotID, error) {
		return ParsedSlotID{}, &InvalidSlotIDError{ID: id, Reason: reason}
	}

	segs := strings.Split(id, "-")
	if len(segs) < 5 {
		return fail("expected at least 5 hyphen-delimited segments")
	}

	timePart := segs[len(segs)-1]
	yearPart := segs[len(segs)-4]
	monthPart := segs[len(segs)-3]
	dayPart := segs[len(segs)-2]
	courtCode := strings.Join(segs[:len(segs)-4], "-")

	if courtCode == "" {
		return fail("empty court segment")
	}

	if len(yearPart) != 4 {
		return fail("year segment must be 4 digits")
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return fail("year segment is not numeric")
	}

	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return fail("month segment out of range")
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil || day < 1 || day > 31 {
		return fail("day segment out of range")
	}

	hour := 0
	minute := 0
	if h, m, ok := strings.Cut(timePart, ":"); ok {
		hour, err = strconv.Atoi(h)
		if err != nil {
			return fail("hour segment is not numeric")
		}
		minute, err = strconv.Atoi(m)
		if err != nil || minute < 0 || minute > 59 {
			return fail("minute segment out of range")
		}
	} else {
		hour, err = strconv.Atoi(timePart)
		if err != nil {
			return fail("hour segment is not numeric")
		}
	}
	if hour < 0 || hour > 23 {
		return fail("hour segment out of range")
	}

	return ParsedSlotID{
		CourtCode: courtCode,
		Year:      year,
		Month:     month,
		Day:       day,
		Hour:      hour,
		Minute:    minute,
	}, nil
}

func (p ParsedSlotID) Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
}

func (p ParsedSlotID) StartTime() string {
	return fmt.Sprintf("%02d:%02d", p.Hour, p.Minute)
}

func (p ParsedSlotID) Canonical() string {
	return SlotIDFor(p.CourtCode, p.Date(), p.StartTime())
}

func (p ParsedSlotID) Legacy() string {
	return LegacySlotIDFor(p.CourtCode, p.Date(), p.Hour)
}
