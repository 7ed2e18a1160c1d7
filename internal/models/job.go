package models

import "time"

type Job struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `gorm:"index;uniqueIndex:idx_jobs_import_key" json:"studio_id"`

	// The (studio_id, client_email, name) triple backs the CSV import upsert.
	Name       string `gorm:"size:200;uniqueIndex:idx_jobs_import_key" json:"name"`
	Type       string `gorm:"size:50" json:"type"`
	LeadSource string `gorm:"size:100" json:"lead_source"`
	Location   string `gorm:"size:255" json:"location"`
	Notes      string `gorm:"type:text" json:"notes"`

	MainShootDate    *time.Time `json:"main_shoot_date"`
	MainShootEndDate *time.Time `json:"main_shoot_end_date"`

	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientEmail string `gorm:"size:100;index;uniqueIndex:idx_jobs_import_key" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientID    *uint  `json:"client_id"`

	// No transition guard: any status may be written over any other.
	Status string `gorm:"size:20;default:'active'" json:"status"`

	TotalAmount   float64 `gorm:"type:decimal(10,2);default:0" json:"total_amount"`
	PaidAmount    float64 `gorm:"type:decimal(10,2);default:0" json:"paid_amount"`
	PaymentStatus string  `gorm:"size:20;default:'unpaid'" json:"payment_status"`

	Documents    []JobDocument    `gorm:"constraint:OnDelete:CASCADE;" json:"documents,omitempty"`
	CustomFields []JobCustomField `gorm:"constraint:OnDelete:CASCADE;" json:"custom_fields,omitempty"`

	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
