package booking

import "github.com/BruksfildServices01/bridal-rental/internal/httperr"

var (
	ErrDressNotFound        = httperr.ErrBusiness("dress_not_found")
	ErrBookingNotFound      = httperr.ErrBusiness("booking_not_found")
	ErrInvalidDate          = httperr.ErrBusiness("invalid_date")
	ErrInvalidDateRange     = httperr.ErrBusiness("invalid_date_range")
	ErrConflict             = httperr.ErrBusiness("booking_conflict")
	ErrNotActive            = httperr.ErrBusiness("not_active")
	ErrCustomerNameRequired = httperr.ErrBusiness("customer_name_required")
	ErrInvalidAmount        = httperr.ErrBusiness("invalid_amount")
	ErrInvalidEmail         = httperr.ErrBusiness("invalid_email")
)
