package models

import "time"

type Lead struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `gorm:"index" json:"studio_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Message string `gorm:"type:text" json:"message"`
	Source  string `gorm:"size:100" json:"source"`

	Status string `gorm:"size:20;default:'new'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
