package models

import "time"

type Gallery struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `gorm:"index" json:"studio_id"`

	Title    string `gorm:"size:200;not null" json:"title"`
	Slug     string `gorm:"size:200;index;not null" json:"slug"`
	Category string `gorm:"size:50" json:"category"`
	CoverURL string `gorm:"size:512" json:"cover_url"`
	Public   bool   `gorm:"default:true" json:"public"`

	Media []GalleryMedia `gorm:"constraint:OnDelete:CASCADE;" json:"media,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GalleryMedia struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	GalleryID uint `gorm:"index" json:"gallery_id"`

	Name         string `gorm:"size:255" json:"name"`
	FileURL      string `gorm:"size:512;not null" json:"file_url"`
	ThumbnailURL string `gorm:"size:512" json:"thumbnail_url"`
	FileType     string `gorm:"size:100" json:"file_type"`
	Size         int64  `json:"size,omitempty"`

	StorageKey string `gorm:"size:512" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
