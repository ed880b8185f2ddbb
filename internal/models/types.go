package models

import (
	"database/sql/driver"
	"encoding/json"
)

// scanJSON decodes a JSON column into dst. Rows written by the previous
// implementation sometimes hold the value double-encoded (a JSON string that
// itself contains the JSON array); both forms are accepted. Malformed input
// leaves dst untouched, so callers reset to empty before scanning.
func scanJSON(value any, dst any) {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return
	}

	if len(raw) == 0 {
		return
	}

	if err := json.Unmarshal(raw, dst); err == nil {
		return
	}

	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		_ = json.Unmarshal([]byte(nested), dst)
	}
}

func valueJSON(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// ======================================================
// StringList (comments, amenities)
// ======================================================

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return valueJSON(l)
}

func (l *StringList) Scan(value any) error {
	*l = StringList{}
	scanJSON(value, l)
	if *l == nil {
		*l = StringList{}
	}
	return nil
}

// ======================================================
// Participants (open play, clinics)
// ======================================================

type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ParticipantList []Participant

func (l ParticipantList) Value() (driver.Value, error) {
	if l == nil {
		l = ParticipantList{}
	}
	return valueJSON(l)
}

func (l *ParticipantList) Scan(value any) error {
	*l = ParticipantList{}
	scanJSON(value, l)
	if *l == nil {
		*l = ParticipantList{}
	}
	return nil
}

// ======================================================
// Operating hours (one entry per weekday, 0 = Sunday)
// ======================================================

type DaySetting struct {
	DayOfWeek           int    `json:"dayOfWeek"`
	IsOpen              bool   `json:"isOpen"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	BreakMinutes        int    `json:"breakMinutes"`
}

type DaySettingList []DaySetting

func (l DaySettingList) Value() (driver.Value, error) {
	if l == nil {
		l = DaySettingList{}
	}
	return valueJSON(l)
}

func (l *DaySettingList) Scan(value any) error {
	*l = DaySettingList{}
	scanJSON(value, l)
	if *l == nil {
		*l = DaySettingList{}
	}
	return nil
}

// ByWeekday returns the entry for weekday (0 = Sunday), or false when the
// configuration has no entry for that day.
func (l DaySettingList) ByWeekday(weekday int) (DaySetting, bool) {
	for _, d := range l {
		if d.DayOfWeek == weekday {
			return d, true
		}
	}
	return DaySetting{}, false
}
