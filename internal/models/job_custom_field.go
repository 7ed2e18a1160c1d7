package models

import "time"

// JobCustomField keeps admin-added ad hoc columns off the Job row itself,
// so an extra column never needs a schema migration.
type JobCustomField struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	JobID uint `gorm:"uniqueIndex:idx_job_field_key" json:"job_id"`

	Key       string `gorm:"size:100;uniqueIndex:idx_job_field_key;not null" json:"key"`
	Value     string `gorm:"size:512" json:"value"`
	ValueType string `gorm:"size:20;default:'string'" json:"value_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
