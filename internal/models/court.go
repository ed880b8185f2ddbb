package models

import "time"

// Court is a bookable surface. Code is the stable string that slot IDs embed
// ("court-3-2026-02-15-14:00"); it may itself contain hyphens.
type Court struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index" json:"tenantId"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	Code      string     `gorm:"size:100;index" json:"code"`
	Location  string     `gorm:"size:255" json:"location"`
	Amenities StringList `gorm:"type:jsonb" json:"amenities"`
	PhotoURL  string     `gorm:"size:512" json:"photoUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
