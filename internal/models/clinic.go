package models

import "time"

type Clinic struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index" json:"tenantId"`
	CoachID  uint `json:"coachId"`

	Title     string `gorm:"size:150;not null" json:"title"`
	Date      string `gorm:"size:10;index" json:"date"`
	StartTime string `gorm:"size:5" json:"startTime"`
	EndTime   string `gorm:"size:5" json:"endTime"`

	TimeSlotID *string `gorm:"size:160;index" json:"timeSlotId,omitempty"`

	MaxParticipants int             `gorm:"default:8" json:"maxParticipants"`
	Participants    ParticipantList `gorm:"type:jsonb" json:"participants"`
	Price           float64         `json:"price"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
