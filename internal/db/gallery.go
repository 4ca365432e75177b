package db

import "time"

// Artwork is a single piece shown at an exhibition. It lives in the gallery table.
type Artwork struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Title        string      `gorm:"size:255;not null" json:"title"`
	Artist       string      `gorm:"size:255;not null;index" json:"artist"`
	Description  *string     `gorm:"type:text" json:"description"`
	ImageURL     string      `gorm:"column:image_url;size:500;not null" json:"imageUrl"`
	ExhibitionID uint        `gorm:"column:exhibition_id;not null;index" json:"exhibitionId"`
	Exhibition   *Exhibition `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time   `json:"-"`
	UpdatedAt    time.Time   `json:"-"`
}

// TableName keeps the historical singular table name.
func (Artwork) TableName() string {
	return "gallery"
}
