package models

import "time"

// JobDocument is one uploaded file attached to a job, grouped by doc type
// (contracts, invoices, questionnaires, quotes, other_docs or a custom key).
type JobDocument struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	JobID uint   `gorm:"index" json:"job_id"`

	DocType  string `gorm:"size:50;index;not null" json:"doc_type"`
	Name     string `gorm:"size:255;not null" json:"name"`
	FileURL  string `gorm:"size:512;not null" json:"file_url"`
	FileType string `gorm:"size:100" json:"file_type"`
	Size     int64  `json:"size,omitempty"`

	StorageKey string `gorm:"size:512" json:"-"`

	UploadedAt time.Time `json:"uploaded_at"`
}
