package models

import "time"

type Booking struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `gorm:"index" json:"studio_id"`

	ClientID *uint  `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	SessionType string `gorm:"size:50" json:"session_type"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Price float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
	Notes string  `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
