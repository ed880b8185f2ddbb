package models

import "time"

// Settings holds the per-venue booking configuration. Exactly one row per
// tenant; provisioned with defaults at signup and lazily on first read.
type Settings struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"uniqueIndex" json:"tenantId"`

	OperatingHours DaySettingList `gorm:"type:jsonb" json:"operatingHours"`

	AdvanceBookingLimitHours  int `gorm:"default:168" json:"advanceBookingLimitHours"`
	CancellationDeadlineHours int `gorm:"default:24" json:"cancellationDeadlineHours"`

	MinPlayersPerSlot int `gorm:"default:1" json:"minPlayersPerSlot"`
	MaxPlayersPerSlot int `gorm:"default:4" json:"maxPlayersPerSlot"`

	AllowWalkIns         bool `gorm:"default:true" json:"allowWalkIns"`
	RequirePayment       bool `gorm:"default:false" json:"requirePayment"`
	VisibilityPeriodDays int  `gorm:"default:30" json:"visibilityPeriodDays"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultOperatingHours is the schedule a fresh tenant starts with:
// weekdays and Saturday 08:00-20:00, Sunday 10:00-18:00, 60-minute slots
// with a 15-minute break between them.
func DefaultOperatingHours() DaySettingList {
	hours := make(DaySettingList, 0, 7)
	for day := 0; day < 7; day++ {
		ds := DaySetting{
			DayOfWeek:           day,
			IsOpen:              true,
			StartTime:           "08:00",
			EndTime:             "20:00",
			SlotDurationMinutes: 60,
			BreakMinutes:        15,
		}
		if day == 0 {
			ds.StartTime = "10:00"
			ds.EndTime = "18:00"
		}
		hours = append(hours, ds)
	}
	return hours
}

func DefaultSettings(tenantID uint) *Settings {
	return &Settings{
		TenantID:                  tenantID,
		OperatingHours:            DefaultOperatingHours(),
		AdvanceBookingLimitHours:  168,
		CancellationDeadlineHours: 24,
		MinPlayersPerSlot:         1,
		MaxPlayersPerSlot:         4,
		AllowWalkIns:              true,
		RequirePayment:            false,
		VisibilityPeriodDays:      30,
	}
}
