package db

import "time"

// Category labels accepted for exhibitions. The order is the one returned to clients.
var Categories = []string{
	"Сучасне мистецтво",
	"Класичне мистецтво",
	"Фотографія",
	"Скульптура",
	"Живопис",
	"Графіка",
	"Інсталяція",
	"Мультимедіа",
	"Народне мистецтво",
	"Декоративне мистецтво",
}

// IsCategory reports whether value is one of Categories.
func IsCategory(value string) bool {
	for _, c := range Categories {
		if c == value {
			return true
		}
	}
	return false
}

// Exhibition is a time-bounded art show. It owns its gallery artworks.
type Exhibition struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	DetailDescription *string   `gorm:"column:detail_description;type:text" json:"detail_description"`
	Location          string    `gorm:"size:255;not null" json:"location"`
	StartDate         Date      `gorm:"not null;index" json:"startDate"`
	EndDate           Date      `gorm:"not null;index" json:"endDate"`
	Image             *string   `gorm:"size:500" json:"image"`
	Category          string    `gorm:"size:100;not null;index" json:"category"`
	Organizer         string    `gorm:"size:255;not null;index" json:"organizer"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// TableName pins the table name used by the API contract.
func (Exhibition) TableName() string {
	return "exhibitions"
}
