package models

import "time"

const DefaultMaxOpenPlayers = 8

type Reservation struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index" json:"tenantId"`

	TimeSlotID string `gorm:"size:160;index" json:"timeSlotId"`
	CourtID    uint   `json:"courtId"`

	PlayerName  string `gorm:"size:100;not null" json:"playerName"`
	PlayerEmail string `gorm:"size:100;not null" json:"playerEmail"`
	PlayerPhone string `gorm:"size:20;not null" json:"playerPhone"`

	Players      int             `gorm:"default:1" json:"players"`
	Participants ParticipantList `gorm:"type:jsonb" json:"participants"`

	IsOpenPlay      bool    `json:"isOpenPlay"`
	OpenPlaySlots   *int    `json:"openPlaySlots,omitempty"`
	MaxOpenPlayers  *int    `json:"maxOpenPlayers,omitempty"`
	OpenPlayGroupID *string `gorm:"size:64;index" json:"openPlayGroupId,omitempty"`

	PaymentStatus *string  `gorm:"size:20" json:"paymentStatus,omitempty"`
	AmountPaid    *float64 `json:"amountPaid,omitempty"`

	Comments    StringList `gorm:"type:jsonb" json:"comments"`
	CreatedByID *uint      `json:"createdById,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CapOpenPlayers resolves the group capacity, applying the default when the
// organizer never set one.
func (r *Reservation) CapOpenPlayers() int {
	if r.MaxOpenPlayers != nil && *r.MaxOpenPlayers > 0 {
		return *r.MaxOpenPlayers
	}
	return DefaultMaxOpenPlayers
}
