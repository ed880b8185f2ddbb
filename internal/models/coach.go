package models

import "time"

type Coach struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index" json:"tenantId"`

	Name       string  `gorm:"size:100;not null" json:"name"`
	Email      string  `gorm:"size:100" json:"email"`
	Phone      string  `gorm:"size:20" json:"phone"`
	Bio        string  `gorm:"size:1000" json:"bio"`
	HourlyRate float64 `json:"hourlyRate"`
	Active     bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
