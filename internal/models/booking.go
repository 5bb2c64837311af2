package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	CustomerName  string `gorm:"size:150;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	BookingDate time.Time  `gorm:"type:date;not null;index" json:"booking_date"`
	ReturnDate  *time.Time `gorm:"type:date" json:"return_date"`

	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total_price"`
	DepositPaid decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"deposit_paid"`
	// Snapshot of TotalPrice - DepositPaid at booking time; never recomputed.
	RemainingBalance decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"remaining_balance"`

	Notes  string `gorm:"type:text" json:"notes"`
	Status string `gorm:"size:20;default:'active';index" json:"status"`

	DressID     *uint  `gorm:"index" json:"dress_id"`
	Dress       *Dress `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"dress,omitempty"`
	DressNumber string `gorm:"size:50" json:"dress_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
