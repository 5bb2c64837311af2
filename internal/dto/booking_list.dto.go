package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type BookingListDTO struct {
	ID               uint            `json:"id"`
	Reference        string          `json:"reference"`
	DressID          *uint           `json:"dress_id"`
	DressNumber      string          `json:"dress_number"`
	ModelName        string          `json:"model_name"`
	CustomerName     string          `json:"customer_name"`
	CustomerPhone    string          `json:"customer_phone"`
	BookingDate      time.Time       `json:"booking_date"`
	ReturnDate       *time.Time      `json:"return_date"`
	Status           string          `json:"status"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func NewBookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		item := BookingListDTO{
			ID:               b.ID,
			Reference:        b.Reference,
			DressID:          b.DressID,
			DressNumber:      b.DressNumber,
			CustomerName:     b.CustomerName,
			CustomerPhone:    b.CustomerPhone,
			BookingDate:      b.BookingDate,
			ReturnDate:       b.ReturnDate,
			Status:           b.Status,
			RemainingBalance: b.RemainingBalance,
		}
		if b.Dress != nil {
			item.ModelName = b.Dress.ModelName
		}
		out = append(out, item)
	}
	return out
}
