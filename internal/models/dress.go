package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Dress struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	DressNumber string `gorm:"size:50;uniqueIndex;not null" json:"dress_number"`

	ModelName   string                      `gorm:"size:100" json:"model_name"`
	Category    string                      `gorm:"size:50;index" json:"category"`
	Color       string                      `gorm:"size:100" json:"color"`
	FabricTypes datatypes.JSONSlice[string] `json:"fabric_types"`
	Size        string                      `gorm:"size:10" json:"size"`
	Details     string                      `gorm:"type:text" json:"details"`

	RentalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"rental_price"`

	ImageData     []byte  `json:"-"`
	ImageFilename *string `gorm:"size:255" json:"image_filename"`
	ImageKey      string  `gorm:"size:255" json:"-"`

	IsAvailable bool `gorm:"not null" json:"is_available"`

	BookingCount    int        `gorm:"not null;default:0" json:"booking_count"`
	LastBookingDate *time.Time `gorm:"type:date" json:"last_booking_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Dress) HasImage() bool {
	return len(d.ImageData) > 0 || d.ImageKey != ""
}
