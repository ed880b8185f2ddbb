package models

import "time"

const SlotTypeClinic = "clinic"

// TimeSlot is a persisted slot override. A row exists only when something
// distinguishes the slot from what the generator would produce: it has been
// booked, blocked, turned into a clinic, or annotated. Everything else stays
// virtual and is synthesized per request.
//
// SlotID is derived from (court code, date, start time), see
// internal/domain/schedule.
type TimeSlot struct {
	SlotID   string `gorm:"primaryKey;size:160" json:"id"`
	TenantID uint   `gorm:"index" json:"tenantId"`
	CourtID  uint   `json:"courtId"`

	Date      string `gorm:"size:10;index" json:"date"`
	StartTime string `gorm:"size:5" json:"startTime"`
	EndTime   string `gorm:"size:5" json:"endTime"`

	Available bool   `json:"available"`
	Blocked   bool   `json:"blocked"`
	Type      string `gorm:"size:20" json:"type,omitempty"`
	ClinicID  *uint  `json:"clinicId,omitempty"`

	Comments StringList `gorm:"type:jsonb" json:"comments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
